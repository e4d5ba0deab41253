package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davemendes/salespipe/internal/encoding"
)

func TestNewReader_UTF8Passthrough(t *testing.T) {
	input := "InvoiceNo,Description\n536365,CRÈME BRÛLÉE DISH\n"
	r, err := encoding.NewReader(bytes.NewReader([]byte(input)))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestNewReader_UTF8BOMStripped(t *testing.T) {
	bom := []byte{0xEF, 0xBB, 0xBF}
	content := []byte("InvoiceNo,Description\n")

	r, err := encoding.NewReader(bytes.NewReader(append(bom, content...)))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, string(content), string(got))
}

func TestNewReader_Latin1(t *testing.T) {
	// Windows-1252 "CRÈME" — È is 0xC8.
	latin1 := []byte{'C', 'R', 0xC8, 'M', 'E', '\n'}

	r, err := encoding.NewReader(bytes.NewReader(latin1))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "CRÈME\n", string(got))
}

func TestNewReader_UTF16LE(t *testing.T) {
	// "Hi" in UTF-16 LE with BOM.
	input := []byte{0xFF, 0xFE, 'H', 0x00, 'i', 0x00}

	r, err := encoding.NewReader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Hi", string(got))
}
