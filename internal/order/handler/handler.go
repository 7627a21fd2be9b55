package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"reorder-service/internal/config"
	"reorder-service/internal/fileio"
	"reorder-service/internal/middleware"
	"reorder-service/internal/order/model"
	orderSvc "reorder-service/internal/order/service"
	"reorder-service/internal/storage"
)

const xlsxMime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Orders возвращает http.HandlerFunc для r.Post("/orders", ...).
// Вход: multipart с полем workbook (книга с листами 結果/常見量對照)
// либо двумя файлами source + catalog. archive может быть nil.
func Orders(cfg config.Config, logger zerolog.Logger, archive *storage.Archive) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := logger.With().Str("rid", middleware.GetRequestID(r)).Logger()

		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			writeError(w, fmt.Errorf("bad multipart form: %w", err))
			return
		}

		var (
			book            *fileio.Workbook
			bookName        string
			source, catalog [][]string
		)
		wb, name, ok, err := readUpload(r, "workbook")
		if err != nil {
			writeError(w, err)
			return
		}
		if ok {
			book, bookName = wb, name
			if source, err = wb.Lookup(cfg.SourceSheet); err != nil {
				writeError(w, err)
				return
			}
			if catalog, err = wb.Lookup(cfg.CatalogSheet); err != nil {
				writeError(w, err)
				return
			}
		} else {
			src, srcName, okS, err := readUpload(r, "source")
			if err != nil {
				writeError(w, err)
				return
			}
			cat, _, okC, err := readUpload(r, "catalog")
			if err != nil {
				writeError(w, err)
				return
			}
			if !okS || !okC {
				writeError(w, fmt.Errorf("missing file: send workbook, or source and catalog"))
				return
			}
			if source, err = src.SheetOrFirst(cfg.SourceSheet); err != nil {
				writeError(w, err)
				return
			}
			if catalog, err = cat.SheetOrFirst(cfg.CatalogSheet); err != nil {
				writeError(w, err)
				return
			}
			book, bookName = src, srcName
		}

		res, err := orderSvc.Generate(source, catalog, options(cfg, r), log)
		if err != nil {
			log.Warn().Err(err).Str("file", bookName).Msg("generate failed")
			writeError(w, err)
			return
		}
		table := orderSvc.OutputTable(res.Lines)

		if strings.EqualFold(r.FormValue("format"), "xlsx") {
			f, err := book.WithSheet(cfg.OutputSheet, table)
			if err != nil {
				log.Error().Err(err).Msg("build xlsx")
				http.Error(w, "failed to build xlsx", http.StatusInternalServerError)
				return
			}
			defer f.Close()
			archiveRun(r, log, archive, bookName, &res)
			if res.RunID != "" {
				w.Header().Set("X-Run-ID", res.RunID)
			}
			w.Header().Set("Content-Type", xlsxMime)
			w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(outputName(bookName)))
			if err := f.Write(w); err != nil {
				log.Error().Err(err).Msg("write xlsx")
			}
		} else {
			archiveRun(r, log, archive, bookName, &res)
			if err := writeJSON(w, http.StatusOK, res); err != nil {
				log.Error().Err(err).Msg("write json")
				return
			}
		}

		log.Info().
			Str("file", bookName).
			Int("lines", len(res.Lines)).
			Dur("elapsed", time.Since(start)).
			Msg("orders done")
	}
}

// archiveRun — ошибка архива не ломает ответ, только пишется в лог.
func archiveRun(r *http.Request, log zerolog.Logger, archive *storage.Archive, source string, res *model.Result) {
	if archive == nil {
		return
	}
	id, err := archive.SaveRun(r.Context(), source, *res)
	if err != nil {
		log.Error().Err(err).Msg("archive run")
		return
	}
	res.RunID = id
}

func outputName(in string) string {
	base := in
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	if base == "" {
		base = "orders"
	}
	return base + "-訂單文字.xlsx"
}
