package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestNewProduct(t *testing.T) {
	t.Run("creates product", func(t *testing.T) {
		p, err := NewProduct("Widget", "WID-1", "pcs", "8471", dec("99.50"), dec("18"), true)

		require.NoError(t, err)
		assert.Equal(t, "Widget", p.Name)
		assert.True(t, p.TrackInventory)
		assert.True(t, p.StockLevel.IsZero())
	})

	t.Run("requires name", func(t *testing.T) {
		_, err := NewProduct("", "", "", "", decimal.Zero, decimal.Zero, false)
		assert.Error(t, err)
	})

	t.Run("rejects negative rate", func(t *testing.T) {
		_, err := NewProduct("Widget", "", "", "", dec("-1"), decimal.Zero, false)
		assert.Error(t, err)
	})
}

func TestApplyStockDelta(t *testing.T) {
	t.Run("stock may go negative", func(t *testing.T) {
		p, err := NewProduct("Widget", "", "", "", decimal.Zero, decimal.Zero, true)
		require.NoError(t, err)
		p.StockLevel = dec("3")

		level := p.ApplyStockDelta(dec("-5"))

		assert.True(t, level.Equal(dec("-2")), "stock = %s", level)
		assert.True(t, p.StockLevel.Equal(dec("-2")))
	})

	t.Run("positive delta adds", func(t *testing.T) {
		p, err := NewProduct("Widget", "", "", "", decimal.Zero, decimal.Zero, true)
		require.NoError(t, err)

		level := p.ApplyStockDelta(dec("10"))

		assert.True(t, level.Equal(dec("10")))
	})
}

func TestIsLowStock(t *testing.T) {
	p, err := NewProduct("Widget", "", "", "", decimal.Zero, decimal.Zero, true)
	require.NoError(t, err)
	p.LowStockThreshold = dec("5")

	p.StockLevel = dec("6")
	assert.False(t, p.IsLowStock())

	p.StockLevel = dec("5")
	assert.True(t, p.IsLowStock())

	p.TrackInventory = false
	assert.False(t, p.IsLowStock(), "untracked products never report low stock")
}
