package csvimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCSVParser(t *testing.T) {
	t.Run("parses header and rows", func(t *testing.T) {
		parser, err := ParseFromBytes([]byte("name,rate\nWidget,100\nGadget,250\n"))
		require.NoError(t, err)

		assert.Equal(t, []string{"name", "rate"}, parser.Headers())

		rows, err := parser.ReadAllRows()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Widget", rows[0].Get("name"))
		assert.Equal(t, "250", rows[1].Get("rate"))
	})

	t.Run("strips UTF-8 BOM", func(t *testing.T) {
		data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("name\nWidget\n")...)
		parser, err := ParseFromBytes(data)
		require.NoError(t, err)
		assert.Equal(t, []string{"name"}, parser.Headers())
	})

	t.Run("rejects empty file", func(t *testing.T) {
		_, err := ParseFromBytes([]byte{})
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("rejects invalid encoding", func(t *testing.T) {
		_, err := ParseFromBytes([]byte{0xFF, 0xFE, 0x41, 0x00})
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("skips empty rows", func(t *testing.T) {
		parser, err := ParseFromBytes([]byte("name\nWidget\n\n,\nGadget\n"))
		require.NoError(t, err)
		rows, err := parser.ReadAllRows()
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "product_name", NormalizeHeader("Product Name"))
	assert.Equal(t, "hsn_code", NormalizeHeader(" HSN-Code "))
	assert.Equal(t, "default_rate", NormalizeHeader("default.rate"))
	assert.Equal(t, "stock_level", NormalizeHeader("Stock  Level"))
}

func TestResolveColumn(t *testing.T) {
	parser, err := ParseFromBytes([]byte("Product Name,Rate,GSTIN\nWidget,10,\n"))
	require.NoError(t, err)

	col, ok := parser.ResolveColumn("name", "product_name")
	assert.True(t, ok)
	assert.Equal(t, "product_name", col)

	_, ok = parser.ResolveColumn("sku", "code")
	assert.False(t, ok)
}

func TestRowHelpers(t *testing.T) {
	parser, err := ParseFromBytes([]byte("name,unit\nWidget,\n"))
	require.NoError(t, err)
	rows, err := parser.ReadAllRows()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "pcs", rows[0].GetOrDefault("unit", "pcs"))
	assert.False(t, rows[0].IsEmpty())
}
