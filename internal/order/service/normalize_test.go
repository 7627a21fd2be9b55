package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "  Cimidona   30mg ", "Cimidona 30mg"},
		{"safe stock", "Cimidona (安全庫存: 3) Mesyrel", "Cimidona Mesyrel"},
		{"double safe stock", "Mesyrel (兩倍安全庫存: 10)", "Mesyrel"},
		{"full width", "Mesyrel（兩倍安全庫存：10）Panadol", "Mesyrel Panadol"},
		{"mixed brackets", "A (安全庫存：5） B", "A B"},
		{"newline list", "A (兩倍安全庫存: 2)\nB (兩倍安全庫存: 4)", "A B"},
		{"unrelated brackets stay", "Panadol (500mg)", "Panadol (500mg)"},
		{"annotation without colon stays", "A (安全庫存 5)", "A (安全庫存 5)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.in))
		})
	}
}

func TestNormalizeTextIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"Cimidona (安全庫存: 3) Mesyrel",
		"(安全(安全庫存:1)庫存:2)",
		"(安全庫存: a (安全庫存:1) b)",
		"(兩倍(安全庫存:1)安全庫存:2)",
		"A\t\tB　C",
		"（兩倍安全庫存：）",
	}
	for _, in := range inputs {
		once := NormalizeText(in)
		assert.Equal(t, once, NormalizeText(once), "input %q", in)
	}
}

func TestNormalizeTextRemovesAnnotations(t *testing.T) {
	for _, in := range []string{
		"藥A (安全庫存: 5) 藥B",
		"藥A (兩倍安全庫存: 10)",
		"(安全庫存: 5)(兩倍安全庫存: 10)",
	} {
		out := NormalizeText(in)
		assert.NotContains(t, out, "(安全庫存: 5)")
		assert.NotContains(t, out, "(兩倍安全庫存: 10)")
	}
}

func TestNormalizeCell(t *testing.T) {
	assert.Equal(t, "", NormalizeCell(nil))
	assert.Equal(t, "30", NormalizeCell(30))
	assert.Equal(t, "A B", NormalizeCell(" A  B "))
}
