package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reorder-service/internal/order/model"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HOST", "PORT", "SOURCE_SHEET", "CATALOG_SHEET", "OUTPUT_SHEET",
		"INCLUDE_SPEC", "DEFAULT_UNIT", "UNSPECIFIED_VENDOR", "COLLATE_LOCALE", "ARCHIVE_DB"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	assert.Equal(t, "127.0.0.1:8083", cfg.Addr())
	assert.Equal(t, "結果", cfg.SourceSheet)
	assert.Equal(t, "常見量對照", cfg.CatalogSheet)
	assert.Equal(t, "訂單文字", cfg.OutputSheet)
	assert.Empty(t, cfg.ArchiveDB)
	assert.Equal(t, model.Options{
		IncludeSpec:       false,
		DefaultUnit:       "盒",
		UnspecifiedVendor: "（未指定廠商）",
		Locale:            "zh-Hant",
	}, cfg.Options())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("INCLUDE_SPEC", "yes")
	t.Setenv("DEFAULT_UNIT", "粒")
	t.Setenv("OUTPUT_SHEET", "orders")
	t.Setenv("ALLOW_ORIGINS", "http://a,http://b")

	cfg := Load()
	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.IncludeSpec)
	assert.Equal(t, "粒", cfg.Options().DefaultUnit)
	assert.Equal(t, "orders", cfg.OutputSheet)
	assert.Equal(t, []string{"http://a", "http://b"}, cfg.AllowOrigins)
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool("ON", false))
	assert.False(t, ToBool(" no ", true))
	assert.True(t, ToBool("maybe", true))
	assert.False(t, ToBool("", false))
}
