package service

import (
	"strings"

	"reorder-service/internal/order/model"
)

// AggregateVendorText склеивает весь текст каждого поставщика (廠商) в один «стог» для поиска.
// Порядок внутри группы = порядок строк на входе.
func AggregateVendorText(rows []model.SourceRow) model.VendorBlob {
	parts := make(map[string][]string)
	for _, r := range rows {
		parts[r.Vendor] = append(parts[r.Vendor], r.RawText)
	}
	blob := make(model.VendorBlob, len(parts))
	for vendor, texts := range parts {
		blob[vendor] = strings.ToLower(NormalizeText(strings.Join(texts, " ")))
	}
	return blob
}
