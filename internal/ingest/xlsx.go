package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/davemendes/salespipe/internal/retail"
)

// ReadXLSX parses the first sheet of a spreadsheet sales export.
func ReadXLSX(r io.Reader) ([]retail.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	return fromWorkbook(f)
}

func ReadXLSXFile(path string) ([]retail.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	return fromWorkbook(f)
}

func fromWorkbook(f *excelize.File) ([]retail.RawRow, error) {
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	return fromRecords(records)
}
