package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"reorder-service/internal/order/model"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	MaxUploadMB  int
	LogFile      string

	// листы книги
	SourceSheet  string
	CatalogSheet string
	OutputSheet  string

	IncludeSpec       bool
	DefaultUnit       string
	UnspecifiedVendor string
	CollateLocale     string

	ArchiveDB string // пусто = архив выключен
}

// Load читает .env (если есть), затем переменные окружения.
func Load() Config {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getenv("PORT", "8083"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "64"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:         getenv("HOST", "127.0.0.1"),
		Port:         port,
		AllowOrigins: origins,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		MaxUploadMB:  mb,
		LogFile:      getenv("LOG_FILE", "logs/reorder-service.log"),

		SourceSheet:  getenv("SOURCE_SHEET", "結果"),
		CatalogSheet: getenv("CATALOG_SHEET", "常見量對照"),
		OutputSheet:  getenv("OUTPUT_SHEET", "訂單文字"),

		IncludeSpec:       ToBool(os.Getenv("INCLUDE_SPEC"), false),
		DefaultUnit:       getenv("DEFAULT_UNIT", "盒"),
		UnspecifiedVendor: getenv("UNSPECIFIED_VENDOR", "（未指定廠商）"),
		CollateLocale:     getenv("COLLATE_LOCALE", "zh-Hant"),

		ArchiveDB: os.Getenv("ARCHIVE_DB"),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

// Options — то, что уходит в конвейер.
func (c Config) Options() model.Options {
	return model.Options{
		IncludeSpec:       c.IncludeSpec,
		DefaultUnit:       c.DefaultUnit,
		UnspecifiedVendor: c.UnspecifiedVendor,
		Locale:            c.CollateLocale,
	}
}

// ToBool: 1/true/yes/y/on и 0/false/no/n/off, остальное -> def.
func ToBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
