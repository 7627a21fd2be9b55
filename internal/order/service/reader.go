package service

import (
	"strings"

	"reorder-service/internal/order/model"
)

// Фиксированные колонки листа «常見量對照» (контракт с оператором, без fuzzy).
const (
	CatalogNameHeader   = "商品"
	CatalogQtyHeader    = "常見叫藥數量"
	CatalogSpecHeader   = "規格"
	CatalogVendorHeader = "廠商"
)

// ReadSource превращает лист-источник (первая строка — шапка) в []SourceRow.
// Все колонки опциональны; полностью пустые строки пропускаются.
func ReadSource(table [][]string) []model.SourceRow {
	if len(table) == 0 {
		return nil
	}
	cols := ResolveSourceColumns(trimAll(table[0]))

	rows := make([]model.SourceRow, 0, len(table)-1)
	for _, rec := range table[1:] {
		vendor := NormalizeText(cell(rec, cols.Vendor))
		parts := make([]string, 0, 3)
		for _, idx := range []int{cols.Name, cols.Spec, cols.Info} {
			if v := NormalizeText(cell(rec, idx)); v != "" {
				parts = append(parts, v)
			}
		}
		raw := strings.Join(parts, " ")
		if vendor == "" && raw == "" {
			continue
		}
		rows = append(rows, model.SourceRow{Vendor: vendor, RawText: raw})
	}
	return rows
}

// ReadCatalog читает справочник типичных количеств.
// Ошибка конфигурации: пустая таблица, нет 商品/常見叫藥數量, нет строк данных.
func ReadCatalog(table [][]string) ([]model.CatalogEntry, error) {
	if len(table) == 0 {
		return nil, model.ConfigErrorf("對照表是空的")
	}
	headers := trimAll(table[0])
	iName := indexOf(headers, CatalogNameHeader)
	iQty := indexOf(headers, CatalogQtyHeader)
	if iName < 0 {
		return nil, model.ConfigErrorf("對照表缺少欄位：%s", CatalogNameHeader)
	}
	if iQty < 0 {
		return nil, model.ConfigErrorf("對照表缺少欄位：%s", CatalogQtyHeader)
	}
	if len(table) < 2 {
		return nil, model.ConfigErrorf("對照表沒有資料列")
	}
	iSpec := indexOf(headers, CatalogSpecHeader)
	iVen := indexOf(headers, CatalogVendorHeader)

	out := make([]model.CatalogEntry, 0, len(table)-1)
	for _, rec := range table[1:] {
		name := NormalizeText(cell(rec, iName))
		if name == "" {
			continue // без названия типичное количество ни к чему не привязать
		}
		spec := NormalizeText(cell(rec, iSpec))
		vendor := NormalizeText(cell(rec, iVen))
		out = append(out, model.CatalogEntry{
			Name:      name,
			NameKey:   strings.ToLower(name),
			Spec:      spec,
			SpecKey:   strings.ToLower(spec),
			Qty:       NormalizeText(cell(rec, iQty)),
			Vendor:    vendor,
			VendorKey: strings.ToLower(vendor),
		})
	}
	return out, nil
}

// cell — безопасно: idx < 0 или короткая строка -> ""
func cell(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return rec[idx]
}

func indexOf(headers []string, want string) int {
	for i, h := range headers {
		if h == want {
			return i
		}
	}
	return -1
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
