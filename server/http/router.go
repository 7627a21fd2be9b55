package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"reorder-service/internal/config"
	"reorder-service/internal/middleware"
	orderHnd "reorder-service/internal/order/handler"
	"reorder-service/internal/storage"
	"reorder-service/server/http/handlers"
)

// NewRouter; archive может быть nil (архив выключен).
func NewRouter(cfg config.Config, logger zerolog.Logger, archive *storage.Archive) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	// health-check
	r.Get("/health", handlers.Health)

	// основной эндпоинт
	r.Post("/orders", orderHnd.Orders(cfg, logger, archive))

	return r
}
