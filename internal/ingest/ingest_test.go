package ingest_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/davemendes/salespipe/internal/ingest"
)

const sampleCSV = `InvoiceNo,StockCode,Description,Quantity,UnitPrice,InvoiceDate,CustomerID,Country
536365,85123A,WHITE HANGING HEART T-LIGHT HOLDER,6,2.55,2010-12-01 08:26:00,17850,United Kingdom
536365,71053,WHITE METAL LANTERN,6,3.39,2010-12-01 08:26:00,17850,United Kingdom
C536379,D,Discount,-1,27.50,2010-12-01 09:41:00,14527,United Kingdom
536370,22728,ALARM CLOCK BAKELIKE PINK,24,3.75,12/1/2010 8:45,12583,France
`

func TestReadCSV(t *testing.T) {
	rows, err := ingest.ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, rows, 4)

	first := rows[0]
	assert.Equal(t, "536365", first.Invoice)
	assert.Equal(t, "85123A", first.StockCode)
	assert.Equal(t, "WHITE HANGING HEART T-LIGHT HOLDER", first.Description)
	assert.Equal(t, 6, first.Quantity)
	assert.Equal(t, "2.55", first.UnitPrice.String())
	assert.Equal(t, time.Date(2010, 12, 1, 8, 26, 0, 0, time.UTC), first.Timestamp)
	assert.Equal(t, "17850", first.CustomerID)
	assert.Equal(t, "United Kingdom", first.Country)

	// Cancellations and negative quantities survive ingestion; the
	// cleaner decides what to drop.
	assert.Equal(t, "C536379", rows[2].Invoice)
	assert.Equal(t, -1, rows[2].Quantity)

	// US-style timestamps parse too.
	assert.Equal(t, time.Date(2010, 12, 1, 8, 45, 0, 0, time.UTC), rows[3].Timestamp)
}

func TestReadCSV_MissingColumns(t *testing.T) {
	csv := "InvoiceNo,StockCode,Quantity\n536365,85123A,6\n"

	_, err := ingest.ReadCSV(strings.NewReader(csv))
	require.Error(t, err)

	var missing *ingest.MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.ElementsMatch(t,
		[]string{"Description", "UnitPrice", "InvoiceDate", "CustomerID", "Country"},
		missing.Columns)
	assert.Contains(t, err.Error(), "UnitPrice")
}

func TestReadCSV_BadCellsBecomeZeroValues(t *testing.T) {
	csv := `InvoiceNo,StockCode,Description,Quantity,UnitPrice,InvoiceDate,CustomerID,Country
536365,85123A,,not-a-number,abc,garbage,,France
`

	rows, err := ingest.ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Zero(t, rows[0].Quantity)
	assert.True(t, rows[0].UnitPrice.IsZero())
	assert.True(t, rows[0].Timestamp.IsZero())
	assert.Empty(t, rows[0].CustomerID)
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := []any{"InvoiceNo", "StockCode", "Description", "Quantity", "UnitPrice", "InvoiceDate", "CustomerID", "Country"}
	row := []any{"536365", "85123A", "WHITE HANGING HEART T-LIGHT HOLDER", 6, 2.55, "2010-12-01 08:26:00", "17850", "United Kingdom"}

	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &row))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	rows, err := ingest.ReadXLSX(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "536365", rows[0].Invoice)
	assert.Equal(t, 6, rows[0].Quantity)
	assert.Equal(t, "2.55", rows[0].UnitPrice.String())
	assert.Equal(t, "United Kingdom", rows[0].Country)
}
