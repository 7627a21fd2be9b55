package service

import (
	"strings"
	"unicode"
)

// Кандидаты заголовков листа-источника (порядок = приоритет).
var (
	VendorHeaders = []string{"廠商", "供應商", "製造商", "廠牌"}
	NameHeaders   = []string{"商品名", "商品名稱", "品名", "藥品名稱", "藥品名", "名稱", "品項"}
	SpecHeaders   = []string{"規格", "含量", "劑量", "規格含量", "包裝", "Strength"}
	InfoHeaders   = []string{"藥品資訊", "藥品資訊(商品+規格)", "資訊"}
)

// SourceColumns — индексы колонок источника, -1 = колонки нет.
type SourceColumns struct {
	Vendor int
	Name   int
	Spec   int
	Info   int
}

// нормализуем имя колонки: без пробелов вообще, нижний регистр
func normHeaderKey(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	return strings.ToLower(s)
}

// ResolveColumn ищет колонку по списку кандидатов.
// 1) точное совпадение после нормализации, кандидаты по приоритету;
// 2) иначе первый слева заголовок, который содержит любого кандидата.
func ResolveColumn(headers []string, candidates []string) int {
	if len(candidates) == 0 {
		return -1
	}
	norm := make([]string, len(headers))
	for i, h := range headers {
		norm[i] = normHeaderKey(h)
	}
	keys := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if k := normHeaderKey(c); k != "" {
			keys = append(keys, k)
		}
	}

	for _, k := range keys {
		for i, h := range norm {
			if h == k {
				return i
			}
		}
	}

	// составные заголовки: «藥品資訊(商品+規格)» содержит «藥品資訊»
	for i, h := range norm {
		for _, k := range keys {
			if strings.Contains(h, k) {
				return i
			}
		}
	}
	return -1
}

func ResolveSourceColumns(headers []string) SourceColumns {
	return SourceColumns{
		Vendor: ResolveColumn(headers, VendorHeaders),
		Name:   ResolveColumn(headers, NameHeaders),
		Spec:   ResolveColumn(headers, SpecHeaders),
		Info:   ResolveColumn(headers, InfoHeaders),
	}
}
