package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"reorder-service/internal/config"
	"reorder-service/internal/fileio"
	"reorder-service/internal/order/model"
)

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeError: ошибка конфигурации (нет листа/колонки) -> 422,
// тело больше лимита -> 413, остальное -> 400.
func writeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		_ = writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{Error: err.Error(), Kind: "too_large"})
		return
	}
	if errors.Is(err, model.ErrConfig) {
		_ = writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: err.Error(), Kind: "config"})
		return
	}
	_ = writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error(), Kind: "input"})
}

// readUpload читает файл из multipart-поля; ok=false — поля нет.
func readUpload(r *http.Request, field string) (wb *fileio.Workbook, name string, ok bool, err error) {
	f, hdr, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, "", false, nil
	}
	if err != nil {
		return nil, "", false, fmt.Errorf("%s: %w", field, err)
	}
	defer f.Close()

	wb, err = fileio.ReadWorkbook(f, hdr.Filename)
	if err != nil {
		return nil, hdr.Filename, true, fmt.Errorf("failed to read %s: %w", field, err)
	}
	return wb, hdr.Filename, true, nil
}

// options: значения из конфига, поверх — поля формы (если заданы).
func options(cfg config.Config, r *http.Request) model.Options {
	opt := cfg.Options()
	opt.IncludeSpec = config.ToBool(r.FormValue("include_spec"), opt.IncludeSpec)
	if v := strings.TrimSpace(r.FormValue("default_unit")); v != "" {
		opt.DefaultUnit = v
	}
	if v := strings.TrimSpace(r.FormValue("unspecified_vendor")); v != "" {
		opt.UnspecifiedVendor = v
	}
	return opt
}
