package fileio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	excelize "github.com/xuri/excelize/v2"
)

// ReplaceSheet полностью заменяет лист: старое содержимое не остаётся.
// Если лист уже есть, новый пишется под коротким временным именем и только
// потом занимает место старого. Иначе лист создаётся сразу под своим именем.
func ReplaceSheet(f *excelize.File, sheet string, table [][]string) error {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return fmt.Errorf("sheet index: %w", err)
	}
	target := sheet
	if idx >= 0 {
		target = tempSheetName(f)
	}
	if _, err := f.NewSheet(target); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	if err := writeRows(f, target, table); err != nil {
		return err
	}
	if target != sheet {
		if err := f.DeleteSheet(sheet); err != nil {
			return fmt.Errorf("delete sheet: %w", err)
		}
		if err := f.SetSheetName(target, sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}
	_ = f.SetColWidth(sheet, "A", "A", 18)
	_ = f.SetColWidth(sheet, "B", "B", 80)
	return nil
}

// временное имя не должно совпадать ни с одним листом книги
func tempSheetName(f *excelize.File) string {
	for n := 0; ; n++ {
		name := fmt.Sprintf("~tmp%d", n)
		if idx, _ := f.GetSheetIndex(name); idx < 0 {
			return name
		}
	}
}

func writeRows(f *excelize.File, sheet string, table [][]string) error {
	for r, row := range table {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		vals := make([]any, len(row))
		for i, v := range row {
			vals[i] = v
		}
		if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
			return fmt.Errorf("write row %d: %w", r+1, err)
		}
	}
	return nil
}

// SaveSheet пишет лист в .xlsx на диске (файл создаётся, если его нет).
func SaveSheet(path, sheet string, table [][]string) error {
	var f *excelize.File
	if _, err := os.Stat(path); err == nil {
		if f, err = excelize.OpenFile(path); err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
	} else {
		f = excelize.NewFile()
	}
	defer f.Close()

	if err := ReplaceSheet(f, sheet, table); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return f.SaveAs(path)
}

// WithSheet возвращает книгу с заменённым листом.
// Исходный .xlsx открывается из байтов (оформление сохраняется),
// для .xls/.csv книга собирается заново из прочитанных листов.
func (w *Workbook) WithSheet(sheet string, table [][]string) (*excelize.File, error) {
	var f *excelize.File
	if w.Format == FormatXLSX && len(w.raw) > 0 {
		var err error
		if f, err = excelize.OpenReader(bytes.NewReader(w.raw)); err != nil {
			return nil, fmt.Errorf("open xlsx: %w", err)
		}
	} else {
		f = excelize.NewFile()
		first := f.GetSheetName(0)
		for _, s := range w.Sheets {
			if s.Name == sheet {
				continue
			}
			if err := ReplaceSheet(f, s.Name, s.Rows); err != nil {
				_ = f.Close()
				return nil, err
			}
		}
		// пустой «Sheet1» по умолчанию не нужен
		if first != sheet && !w.has(first) {
			_ = f.DeleteSheet(first)
		}
	}
	if err := ReplaceSheet(f, sheet, table); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func (w *Workbook) has(name string) bool {
	_, ok := w.Sheet(name)
	return ok
}

// SaveTable — запись вывода в отдельный файл: .csv или .xlsx по расширению.
func SaveTable(path, sheet string, table [][]string) error {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		out, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := WriteCSV(out, table); err != nil {
			_ = out.Close()
			return err
		}
		return out.Close()
	}
	return SaveSheet(path, sheet, table)
}

// WriteCSV пишет UTF-8 с BOM (для Excel).
func WriteCSV(w io.Writer, table [][]string) error {
	if _, err := io.WriteString(w, "\ufeff"); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(table); err != nil {
		return err
	}
	return cw.Error()
}
