package service

import (
	"fmt"
	"regexp"
	"strings"
)

// Пометки из шага сканирования: «(兩倍安全庫存: 10)», «（安全庫存：5）».
// Скобки и двоеточие — и полуширинные, и полноширинные.
var (
	reDoubleSafeStock = regexp.MustCompile(`\s*[（(]兩倍安全庫存[:：][^)）]*[)）]\s*`)
	reSafeStock       = regexp.MustCompile(`\s*[（(]安全庫存[:：][^)）]*[)）]\s*`)
)

// NormalizeText вырезает пометки «安全庫存» и схлопывает пробелы.
// Идемпотентна: NormalizeText(NormalizeText(s)) == NormalizeText(s).
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	out := reDoubleSafeStock.ReplaceAllString(s, " ")
	out = reSafeStock.ReplaceAllString(out, " ")
	return collapseSpaces(out)
}

// NormalizeCell — то же самое для произвольного значения ячейки (nil -> "").
func NormalizeCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return NormalizeText(x)
	case fmt.Stringer:
		return NormalizeText(x.String())
	default:
		return NormalizeText(fmt.Sprint(x))
	}
}

// Схлопывание пробелов
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
