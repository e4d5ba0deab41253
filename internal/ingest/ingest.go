// Package ingest reads raw sales exports (delimited text or spreadsheet)
// into typed rows. The column set is validated once here; downstream
// stages work on a fixed row schema and never re-check shape.
package ingest

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/davemendes/salespipe/internal/retail"
)

// Column names of the raw export header.
const (
	ColInvoice     = "InvoiceNo"
	ColStockCode   = "StockCode"
	ColDescription = "Description"
	ColQuantity    = "Quantity"
	ColUnitPrice   = "UnitPrice"
	ColInvoiceDate = "InvoiceDate"
	ColCustomerID  = "CustomerID"
	ColCountry     = "Country"
)

var requiredCols = []string{
	ColInvoice, ColStockCode, ColDescription, ColQuantity,
	ColUnitPrice, ColInvoiceDate, ColCustomerID, ColCountry,
}

// MissingColumnsError reports which required columns the input header
// lacks. Transformation never starts on a malformed input.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("input is missing required columns: %s", strings.Join(e.Columns, ", "))
}

// timestamp layouts seen across CSV and spreadsheet exports of the dataset.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"1/2/2006 15:04",
	"1/2/06 15:04",
	"2006-01-02",
}

// ReadFile loads a raw sales export, dispatching on the file extension.
func ReadFile(path string) ([]retail.RawRow, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSVFile(path)
	case ".xlsx", ".xls":
		return ReadXLSXFile(path)
	default:
		return nil, fmt.Errorf("unsupported data file format: %s", path)
	}
}

// colIndex maps column names to their position in the header row.
type colIndex map[string]int

// fromRecords converts tabular records to raw rows. The first non-empty
// record is the header; every required column must appear in it.
func fromRecords(records [][]string) ([]retail.RawRow, error) {
	headerIdx := -1

	cols := make(colIndex)

	for i, rec := range records {
		for j, cell := range rec {
			if name := strings.TrimSpace(cell); name != "" {
				cols[name] = j
			}
		}

		if len(cols) > 0 {
			headerIdx = i
			break
		}
	}

	var missing []string

	for _, name := range requiredCols {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	rows := make([]retail.RawRow, 0, len(records)-headerIdx-1)

	for _, rec := range records[headerIdx+1:] {
		if len(rec) == 0 {
			continue
		}

		rows = append(rows, retail.RawRow{
			Invoice:     cell(rec, cols[ColInvoice]),
			StockCode:   cell(rec, cols[ColStockCode]),
			Description: cell(rec, cols[ColDescription]),
			Quantity:    parseQuantity(cell(rec, cols[ColQuantity])),
			UnitPrice:   parsePrice(cell(rec, cols[ColUnitPrice])),
			Timestamp:   parseTimestamp(cell(rec, cols[ColInvoiceDate])),
			CustomerID:  cell(rec, cols[ColCustomerID]),
			Country:     cell(rec, cols[ColCountry]),
		})
	}

	return rows, nil
}

func cell(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}

	return strings.TrimSpace(rec[idx])
}

// parseQuantity returns 0 for unparseable values; the cleaner drops
// non-positive quantities, so a bad cell behaves like a missing one.
func parseQuantity(s string) int {
	if s == "" {
		return 0
	}

	// Spreadsheet cells may render integers as floats ("6.0").
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}

	return 0
}

// parsePrice returns zero for unparseable values, mirroring parseQuantity.
func parsePrice(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}

	return d
}

// parseTimestamp returns the zero time when no layout matches. Aggregation
// skips zero timestamps when computing purchase dates.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return time.Time{}
}
