package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reorder-service/internal/config"
	"reorder-service/internal/storage"
	serverhttp "reorder-service/server/http"
)

func main() {
	cfg := config.Load()
	logger := config.SetupLogger(cfg, false)

	var archive *storage.Archive
	if cfg.ArchiveDB != "" {
		a, err := storage.Open(cfg.ArchiveDB)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.ArchiveDB).Msg("open archive")
		}
		defer a.Close()
		archive = a
	}

	r := serverhttp.NewRouter(cfg, logger, archive)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r, ReadHeaderTimeout: 10 * time.Second}
	logger.Info().Str("addr", cfg.Addr()).Bool("archive", archive != nil).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
