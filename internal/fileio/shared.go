package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"reorder-service/internal/order/model"
)

const (
	FormatXLSX = "xlsx"
	FormatXLS  = "xls"
	FormatCSV  = "csv"
)

// Table — лист как есть: AoA, первая строка — шапка.
type Table struct {
	Name string
	Rows [][]string
}

// Workbook — все листы файла в исходном порядке.
// Для .xlsx храним исходные байты, чтобы при записи сохранить оформление.
type Workbook struct {
	Format string
	Sheets []Table
	raw    []byte
}

// ReadWorkbook — выберет парсер по расширению.
// CSV превращается в книгу из одного листа с именем файла без расширения
// (приведённым к правилам Excel, см. sheetName).
func ReadWorkbook(r io.Reader, filename string) (*Workbook, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx", ".xlsm":
		return readXLSX(r)
	case ".xls":
		return readXLS(r)
	case ".csv":
		rows, err := readCSV(r)
		if err != nil {
			return nil, err
		}
		name := sheetName(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
		return &Workbook{Format: FormatCSV, Sheets: []Table{{Name: name, Rows: rows}}}, nil
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}

// Sheet ищет лист по имени (без учёта пробелов по краям).
func (w *Workbook) Sheet(name string) (Table, bool) {
	want := strings.TrimSpace(name)
	for _, s := range w.Sheets {
		if strings.TrimSpace(s.Name) == want {
			return s, true
		}
	}
	return Table{}, false
}

// Lookup — как Sheet, но отсутствие листа = ошибка конфигурации.
func (w *Workbook) Lookup(name string) ([][]string, error) {
	s, ok := w.Sheet(name)
	if !ok {
		return nil, model.ConfigErrorf("找不到分頁：%s", name)
	}
	return s.Rows, nil
}

// SheetOrFirst — для отдельных загрузок (source/catalog): лист по имени,
// иначе первый лист файла.
func (w *Workbook) SheetOrFirst(name string) ([][]string, error) {
	if s, ok := w.Sheet(name); ok {
		return s.Rows, nil
	}
	if len(w.Sheets) == 0 {
		return nil, model.ConfigErrorf("找不到分頁：%s", name)
	}
	return w.Sheets[0].Rows, nil
}

// Excel: не длиннее 31 символа и без :\/?*[]
const maxSheetName = 31

// sheetName делает из произвольной строки допустимое имя листа.
func sheetName(s string) string {
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return -1
		}
		return r
	}, s)
	if r := []rune(s); len(r) > maxSheetName {
		s = string(r[:maxSheetName])
	}
	// апостроф по краям Excel тоже не принимает
	s = strings.TrimSpace(strings.Trim(s, "'"))
	if s == "" {
		return "Sheet1"
	}
	return s
}

// ячейка: обрезаем края и NBSP/NNBSP
func normalizeCell(s string) string {
	s = strings.NewReplacer("\u00A0", " ", "\u202F", " ").Replace(s)
	return strings.TrimSpace(s)
}

// trimTrailingEmpty — отрезает полностью пустые строки в конце листа.
func trimTrailingEmpty(rows [][]string) [][]string {
	end := len(rows)
	for end > 0 && isBlankRow(rows[end-1]) {
		end--
	}
	return rows[:end]
}

func isBlankRow(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
