package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	enc "github.com/davemendes/salespipe/internal/encoding"
	"github.com/davemendes/salespipe/internal/retail"
)

// ReadCSV parses a comma-delimited sales export of unknown encoding.
func ReadCSV(r io.Reader) ([]retail.RawRow, error) {
	utf8r, err := enc.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return fromRecords(records)
}

func ReadCSVFile(path string) ([]retail.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}
