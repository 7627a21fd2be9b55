package service

import (
	"strings"

	"reorder-service/internal/order/model"
)

const (
	DefaultUnit              = "盒"
	DefaultUnspecifiedVendor = "（未指定廠商）"
	orderVerb                = "想訂"
	fragmentSep              = "、"
)

// Единицы, после которых ничего не дописываем.
var qtyUnits = []string{"盒", "粒", "顆", "錠", "瓶", "支", "包", "條"}

// EnsureQtyUnit дописывает единицу к «голому» числу.
// "" / nan / none -> "" (строка справочника отбрасывается).
func EnsureQtyUnit(qty, defaultUnit string) string {
	x := strings.TrimSpace(qty)
	switch strings.ToLower(x) {
	case "", "nan", "none":
		return ""
	}
	for _, u := range qtyUnits {
		if strings.HasSuffix(x, u) {
			return x
		}
	}
	if last := x[len(x)-1]; last >= '0' && last <= '9' {
		return x + defaultUnit
	}
	return x
}

// BuildOrderLines — основной матчинг: для каждого поставщика ищем вхождения названий
// из справочника в его тексте. Порядок результата не определён, сортирует SortOrderLines.
func BuildOrderLines(blob model.VendorBlob, catalog []model.CatalogEntry, opt model.Options) []model.OrderLine {
	unit := opt.DefaultUnit
	if unit == "" {
		unit = DefaultUnit
	}
	placeholder := opt.UnspecifiedVendor
	if placeholder == "" {
		placeholder = DefaultUnspecifiedVendor
	}

	lines := make([]model.OrderLine, 0, len(blob))
	for vendor, text := range blob {
		vendorKey := strings.ToLower(vendor)
		seen := make(map[string]struct{})
		var items []string

		for _, e := range catalog {
			// строка с廠商 относится только к своему поставщику
			if e.VendorKey != "" && e.VendorKey != vendorKey {
				continue
			}
			// подстрока без границ слов: названия идут вперемешку с дозировкой/скобками
			if e.NameKey == "" || !strings.Contains(text, e.NameKey) {
				continue
			}
			qty := EnsureQtyUnit(e.Qty, unit)
			if qty == "" {
				continue
			}
			frag := fragment(e, qty, opt.IncludeSpec)
			if _, ok := seen[frag]; ok {
				continue
			}
			seen[frag] = struct{}{}
			items = append(items, frag)
		}

		if len(items) == 0 {
			continue
		}
		display := vendor
		if display == "" {
			display = placeholder
		}
		lines = append(lines, model.OrderLine{
			Vendor:    display,
			Text:      display + orderVerb + strings.Join(items, fragmentSep),
			Fragments: items,
		})
	}
	return lines
}

func fragment(e model.CatalogEntry, qty string, includeSpec bool) string {
	if includeSpec && e.Spec != "" {
		return e.Name + " " + e.Spec + " " + qty
	}
	return e.Name + " " + qty
}
