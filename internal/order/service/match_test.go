package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reorder-service/internal/order/model"
)

func entry(name, spec, qty, vendor string) model.CatalogEntry {
	return model.CatalogEntry{
		Name: name, NameKey: strings.ToLower(name),
		Spec: spec, SpecKey: strings.ToLower(spec),
		Qty:    qty,
		Vendor: vendor, VendorKey: strings.ToLower(vendor),
	}
}

func byVendor(lines []model.OrderLine) map[string]model.OrderLine {
	m := make(map[string]model.OrderLine, len(lines))
	for _, l := range lines {
		m[l.Vendor] = l
	}
	return m
}

func TestEnsureQtyUnit(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10", "10盒"},
		{"5盒", "5盒"},
		{"3瓶", "3瓶"},
		{"2條", "2條"},
		{"", ""},
		{"   ", ""},
		{"nan", ""},
		{"NaN", ""},
		{"None", ""},
		{"1.5", "1.5盒"},
		{"看情況", "看情況"},
		{"10 bottles", "10 bottles"},
		{"5盒2", "5盒2盒"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EnsureQtyUnit(tt.in, "盒"))
		})
	}
	assert.Equal(t, "7粒", EnsureQtyUnit("7", "粒"))
}

func TestBuildOrderLinesVendorScoped(t *testing.T) {
	blob := model.VendorBlob{
		"A": "panadol mesyrel",
		"B": "panadol mesyrel",
	}
	catalog := []model.CatalogEntry{
		entry("Mesyrel", "", "10", "A"),
		entry("Panadol", "", "2", ""),
	}
	lines := byVendor(BuildOrderLines(blob, catalog, model.Options{DefaultUnit: "盒"}))
	require.Len(t, lines, 2)
	assert.Equal(t, "A想訂Mesyrel 10盒、Panadol 2盒", lines["A"].Text)
	assert.Equal(t, "B想訂Panadol 2盒", lines["B"].Text)
	assert.NotContains(t, lines["B"].Text, "Mesyrel")
}

func TestBuildOrderLinesVendorKeyCaseInsensitive(t *testing.T) {
	blob := model.VendorBlob{"Pfizer": "lipitor"}
	catalog := []model.CatalogEntry{entry("Lipitor", "", "1", "PFIZER")}
	lines := BuildOrderLines(blob, catalog, model.Options{})
	require.Len(t, lines, 1)
	assert.Equal(t, "Pfizer想訂Lipitor 1盒", lines[0].Text)
}

func TestBuildOrderLinesDedup(t *testing.T) {
	blob := model.VendorBlob{"美時": "cimidona cimidona 30mg"}
	catalog := []model.CatalogEntry{
		entry("Cimidona", "30mg", "30", ""),
		entry("Cimidona", "60mg", "30", "美時"),
	}
	lines := BuildOrderLines(blob, catalog, model.Options{})
	require.Len(t, lines, 1)
	assert.Equal(t, []string{"Cimidona 30盒"}, lines[0].Fragments)
	assert.Equal(t, "美時想訂Cimidona 30盒", lines[0].Text)
}

func TestBuildOrderLinesIncludeSpec(t *testing.T) {
	blob := model.VendorBlob{"美時": "cimidona mesyrel"}
	catalog := []model.CatalogEntry{
		entry("Cimidona", "30mg", "30", ""),
		entry("Cimidona", "60mg", "30", ""),
		entry("Mesyrel", "", "10盒", ""),
	}
	lines := BuildOrderLines(blob, catalog, model.Options{IncludeSpec: true})
	require.Len(t, lines, 1)
	assert.Equal(t, "美時想訂Cimidona 30mg 30盒、Cimidona 60mg 30盒、Mesyrel 10盒", lines[0].Text)
}

func TestBuildOrderLinesDropsEmptyQty(t *testing.T) {
	blob := model.VendorBlob{"美時": "cimidona"}
	catalog := []model.CatalogEntry{entry("Cimidona", "", "nan", "")}
	assert.Empty(t, BuildOrderLines(blob, catalog, model.Options{}))
}

func TestBuildOrderLinesNoMatchVendor(t *testing.T) {
	blob := model.VendorBlob{"美時": "cimidona", "保瑞": "something else"}
	catalog := []model.CatalogEntry{entry("Cimidona", "", "30", "")}
	lines := BuildOrderLines(blob, catalog, model.Options{})
	require.Len(t, lines, 1)
	assert.Equal(t, "美時", lines[0].Vendor)
}

func TestBuildOrderLinesUnspecifiedVendor(t *testing.T) {
	blob := model.VendorBlob{"": "panadol"}
	catalog := []model.CatalogEntry{entry("Panadol", "", "2", "")}

	lines := BuildOrderLines(blob, catalog, model.Options{})
	require.Len(t, lines, 1)
	assert.Equal(t, DefaultUnspecifiedVendor, lines[0].Vendor)
	assert.Equal(t, DefaultUnspecifiedVendor+"想訂Panadol 2盒", lines[0].Text)

	lines = BuildOrderLines(blob, catalog, model.Options{UnspecifiedVendor: "其他"})
	require.Len(t, lines, 1)
	assert.Equal(t, "其他想訂Panadol 2盒", lines[0].Text)
}

func TestBuildOrderLinesSubstringPolicy(t *testing.T) {
	// без границ слов: «Panadol» находится и внутри «Panadol Extra»
	blob := model.VendorBlob{"A": "panadol extra(500mg)"}
	catalog := []model.CatalogEntry{
		entry("Panadol", "", "1", ""),
		entry("Panadol Extra", "", "2", ""),
	}
	lines := BuildOrderLines(blob, catalog, model.Options{})
	require.Len(t, lines, 1)
	assert.Equal(t, "A想訂Panadol 1盒、Panadol Extra 2盒", lines[0].Text)
}
