package fileio

import (
	"bytes"
	"fmt"
	"io"

	excelize "github.com/xuri/excelize/v2"
)

func readXLSX(r io.Reader) (*Workbook, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	wb := &Workbook{Format: FormatXLSX, raw: b}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		for i := range rows {
			for j := range rows[i] {
				rows[i][j] = normalizeCell(rows[i][j])
			}
		}
		wb.Sheets = append(wb.Sheets, Table{Name: name, Rows: trimTrailingEmpty(rows)})
	}
	return wb, nil
}
