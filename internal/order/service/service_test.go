package service

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reorder-service/internal/order/model"
)

var catalogHeader = []string{"商品", "規格", "常見叫藥數量", "廠商"}

func TestGenerateEndToEnd(t *testing.T) {
	source := [][]string{
		{"廠商", "藥品資訊"},
		{"美時", "Cimidona (安全庫存: 3) Mesyrel"},
	}
	catalog := [][]string{
		catalogHeader,
		{"Cimidona", "", "30", ""},
		{"Mesyrel", "", "10盒", "美時"},
	}
	res, err := Generate(source, catalog, model.Options{IncludeSpec: false, DefaultUnit: "盒"}, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"廠商", "訂單文字"},
		{"美時", "美時想訂Cimidona 30盒、Mesyrel 10盒"},
	}, OutputTable(res.Lines))
	assert.Equal(t, 1, res.SourceRows)
	assert.Equal(t, 2, res.CatalogEntries)
	assert.Equal(t, 1, res.Vendors)
}

func TestGenerateGroupsVendorsAndSorts(t *testing.T) {
	source := [][]string{
		{"廠商", "品名", "規格"},
		{"丙廠", "Panadol", "500mg"},
		{"甲廠", "Lipitor (兩倍安全庫存: 4)", ""},
		{"乙廠", "Mesyrel", ""},
		{"甲廠", "Panadol", ""},
		{"", "Cimidona", ""},
		{"丁廠", "Unknown", ""},
	}
	catalog := [][]string{
		catalogHeader,
		{"Panadol", "500mg", "2", ""},
		{"Lipitor", "", "1瓶", "甲廠"},
		{"Mesyrel", "", "10", ""},
		{"Cimidona", "", "30", ""},
	}
	res, err := Generate(source, catalog, model.Options{IncludeSpec: true}, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, res.Lines, 4)

	got := byVendor(res.Lines)
	assert.Equal(t, "甲廠想訂Panadol 500mg 2盒、Lipitor 1瓶", got["甲廠"].Text)
	assert.Equal(t, "乙廠想訂Mesyrel 10盒", got["乙廠"].Text)
	assert.Equal(t, "丙廠想訂Panadol 500mg 2盒", got["丙廠"].Text)
	assert.Equal(t, "（未指定廠商）想訂Cimidona 30盒", got["（未指定廠商）"].Text)
	assert.NotContains(t, got, "丁廠")
	assert.Equal(t, 5, res.Vendors)

	again, err := Generate(source, catalog, model.Options{IncludeSpec: true}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, res.Lines, again.Lines)
}

func TestGenerateCatalogError(t *testing.T) {
	_, err := Generate([][]string{{"廠商"}}, [][]string{{"商品"}}, model.Options{}, zerolog.Nop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrConfig))
}

func TestWithDefaults(t *testing.T) {
	opt := WithDefaults(model.Options{})
	assert.Equal(t, "盒", opt.DefaultUnit)
	assert.Equal(t, "（未指定廠商）", opt.UnspecifiedVendor)
	assert.Equal(t, "zh-Hant", opt.Locale)

	opt = WithDefaults(model.Options{DefaultUnit: "粒", Locale: "en"})
	assert.Equal(t, "粒", opt.DefaultUnit)
	assert.Equal(t, "en", opt.Locale)
}
