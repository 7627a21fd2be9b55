package service

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"reorder-service/internal/order/model"
)

const DefaultLocale = "zh-Hant"

// OutputHeader — шапка листа «訂單文字».
var OutputHeader = []string{"廠商", "訂單文字"}

// newCollator — лингвистическая сортировка вместо побайтовой.
// Неизвестная локаль -> DefaultLocale.
func newCollator(locale string) *collate.Collator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return collate.New(tag)
}

// SortOrderLines сортирует по поставщику с учётом локали; при равенстве — побайтно,
// чтобы порядок не зависел от обхода map.
func SortOrderLines(lines []model.OrderLine, locale string) {
	c := newCollator(locale)
	sort.SliceStable(lines, func(i, j int) bool {
		if r := c.CompareString(lines[i].Vendor, lines[j].Vendor); r != 0 {
			return r < 0
		}
		return lines[i].Vendor < lines[j].Vendor
	})
}

// OutputTable — шапка + по строке на поставщика.
func OutputTable(lines []model.OrderLine) [][]string {
	out := make([][]string, 0, len(lines)+1)
	out = append(out, append([]string(nil), OutputHeader...))
	for _, l := range lines {
		out = append(out, []string{l.Vendor, l.Text})
	}
	return out
}
