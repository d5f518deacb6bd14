package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/catalog"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, name, sku string, tracked bool) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, sku, "pcs", "",
		decimal.NewFromInt(100), decimal.NewFromInt(18), tracked)
	require.NoError(t, err)
	return product
}

func TestGormProductRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	t.Run("saves and finds by id and sku", func(t *testing.T) {
		product := newTestProduct(t, "Widget", "WID-1", true)
		require.NoError(t, repo.Save(ctx, product))

		byID, err := repo.FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "Widget", byID.Name)

		bySKU, err := repo.FindBySKU(ctx, "WID-1")
		require.NoError(t, err)
		assert.Equal(t, product.ID, bySKU.ID)
	})

	t.Run("returns not found for unknown product", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = repo.FindBySKU(ctx, "NOPE")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, newTestProduct(t, "Gadget Pro", "GAD-1", false)))

		filter := shared.DefaultFilter()
		filter.Search = "gadget"
		products, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Gadget Pro", products[0].Name)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		product := newTestProduct(t, "Ephemeral", "EPH-1", false)
		require.NoError(t, repo.Save(ctx, product))
		require.NoError(t, repo.Delete(ctx, product.ID))
		_, err := repo.FindByID(ctx, product.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProductRepository_FindLowStock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	low := newTestProduct(t, "Low", "LOW-1", true)
	low.StockLevel = decimal.NewFromInt(2)
	low.LowStockThreshold = decimal.NewFromInt(5)
	require.NoError(t, repo.Save(ctx, low))

	ok := newTestProduct(t, "Plenty", "OK-1", true)
	ok.StockLevel = decimal.NewFromInt(50)
	ok.LowStockThreshold = decimal.NewFromInt(5)
	require.NoError(t, repo.Save(ctx, ok))

	untracked := newTestProduct(t, "Untracked", "UN-1", false)
	untracked.StockLevel = decimal.Zero
	require.NoError(t, repo.Save(ctx, untracked))

	products, err := repo.FindLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Low", products[0].Name)
}
