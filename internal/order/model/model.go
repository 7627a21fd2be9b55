package model

// SourceRow — одна запись листа «結果»:廠商 + весь текст строки (品名/規格/資訊).
type SourceRow struct {
	Vendor  string // может быть пустым («未指定廠商»)
	RawText string // нормализованный текст, склеенный через пробел
}

// CatalogEntry — строка листа «常見量對照».
// *Key поля — только для сравнения, в вывод не попадают.
type CatalogEntry struct {
	Name      string
	NameKey   string
	Spec      string
	SpecKey   string
	Qty       string // как в таблице, единица может отсутствовать
	Vendor    string
	VendorKey string
}

// VendorBlob — 廠商 -> вся нормализованная строка в нижнем регистре.
type VendorBlob map[string]string

type OrderLine struct {
	Vendor    string   `json:"vendor"`
	Text      string   `json:"text"`
	Fragments []string `json:"fragments"`
}

type Options struct {
	IncludeSpec       bool   `json:"includeSpec"`       // добавлять 規格 во фрагмент
	DefaultUnit       string `json:"defaultUnit"`       // единица для «голых» чисел
	UnspecifiedVendor string `json:"unspecifiedVendor"` // подпись для пустого 廠商
	Locale            string `json:"locale"`            // локаль сортировки
}

type Result struct {
	Lines          []OrderLine `json:"lines"`
	SourceRows     int         `json:"sourceRows"`
	CatalogEntries int         `json:"catalogEntries"`
	Vendors        int         `json:"vendors"`
	RunID          string      `json:"runId,omitempty"`
	Opts           Options     `json:"opts"`
}
