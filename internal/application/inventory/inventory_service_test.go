package inventory_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	appinventory "github.com/invoicing/backend/internal/application/inventory"
	"github.com/invoicing/backend/internal/domain/catalog"
	"github.com/invoicing/backend/internal/domain/inventory"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/invoicing/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type inventoryFixture struct {
	db        *gorm.DB
	service   *appinventory.InventoryService
	products  *persistence.GormProductRepository
	movements *persistence.GormStockMovementRepository
}

func newInventoryFixture(t *testing.T) *inventoryFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&catalog.Product{}, &inventory.StockMovement{}))

	f := &inventoryFixture{
		db:        db,
		products:  persistence.NewGormProductRepository(db),
		movements: persistence.NewGormStockMovementRepository(db),
	}
	f.service = appinventory.NewInventoryService(
		persistence.NewGormInventoryScope(db),
		f.movements,
		nil,
	)
	return f
}

func (f *inventoryFixture) addProduct(t *testing.T, stock int64) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct("Widget", "WID-1", "pcs", "",
		decimal.NewFromInt(100), decimal.NewFromInt(18), true)
	require.NoError(t, err)
	product.StockLevel = decimal.NewFromInt(stock)
	require.NoError(t, f.products.Save(context.Background(), product))
	return product
}

func TestInventoryService_Adjust(t *testing.T) {
	ctx := context.Background()

	t.Run("IN adds and OUT subtracts", func(t *testing.T) {
		f := newInventoryFixture(t)
		product := f.addProduct(t, 10)

		resp, err := f.service.Adjust(ctx, appinventory.AdjustStockRequest{
			ProductID: product.ID,
			Type:      inventory.MovementIn,
			Quantity:  decimal.NewFromInt(5),
		})
		require.NoError(t, err)
		assert.True(t, resp.NewStockLevel.Equal(decimal.NewFromInt(15)))

		resp, err = f.service.Adjust(ctx, appinventory.AdjustStockRequest{
			ProductID: product.ID,
			Type:      inventory.MovementOut,
			Quantity:  decimal.NewFromInt(7),
		})
		require.NoError(t, err)
		assert.True(t, resp.NewStockLevel.Equal(decimal.NewFromInt(8)))
	})

	t.Run("stock may go negative", func(t *testing.T) {
		f := newInventoryFixture(t)
		product := f.addProduct(t, 3)

		resp, err := f.service.Adjust(ctx, appinventory.AdjustStockRequest{
			ProductID: product.ID,
			Type:      inventory.MovementOut,
			Quantity:  decimal.NewFromInt(5),
		})
		require.NoError(t, err)
		assert.True(t, resp.NewStockLevel.Equal(decimal.NewFromInt(-2)))
	})

	t.Run("every adjustment leaves a ledger entry", func(t *testing.T) {
		f := newInventoryFixture(t)
		product := f.addProduct(t, 10)

		resp, err := f.service.Adjust(ctx, appinventory.AdjustStockRequest{
			ProductID: product.ID,
			Type:      inventory.MovementAdjustment,
			Quantity:  decimal.NewFromInt(4),
			Note:      "cycle count",
		})
		require.NoError(t, err)

		movements, err := f.movements.FindByProduct(ctx, product.ID, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, movements, 1)
		assert.Equal(t, resp.MovementID, movements[0].ID)
		assert.Equal(t, inventory.MovementAdjustment, movements[0].MovementType)
		assert.Equal(t, "cycle count", movements[0].Note)
		assert.True(t, movements[0].Quantity.Equal(decimal.NewFromInt(4)))
	})

	t.Run("rejects bad input", func(t *testing.T) {
		f := newInventoryFixture(t)
		product := f.addProduct(t, 10)

		_, err := f.service.Adjust(ctx, appinventory.AdjustStockRequest{
			ProductID: product.ID,
			Type:      "TRANSFER",
			Quantity:  decimal.NewFromInt(1),
		})
		assert.Error(t, err)

		_, err = f.service.Adjust(ctx, appinventory.AdjustStockRequest{
			ProductID: product.ID,
			Type:      inventory.MovementIn,
			Quantity:  decimal.NewFromInt(-1),
		})
		assert.Error(t, err)
	})

	t.Run("unknown product fails cleanly", func(t *testing.T) {
		f := newInventoryFixture(t)
		_, err := f.service.Adjust(ctx, appinventory.AdjustStockRequest{
			ProductID: uuid.New(),
			Type:      inventory.MovementIn,
			Quantity:  decimal.NewFromInt(1),
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)

		var count int64
		require.NoError(t, f.db.Model(&inventory.StockMovement{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})
}

func TestInventoryService_ListMovements(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()
	product := f.addProduct(t, 10)

	for i := 0; i < 3; i++ {
		_, err := f.service.Adjust(ctx, appinventory.AdjustStockRequest{
			ProductID: product.ID,
			Type:      inventory.MovementIn,
			Quantity:  decimal.NewFromInt(1),
		})
		require.NoError(t, err)
	}

	movements, total, err := f.service.ListMovements(ctx, shared.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, movements, 3)

	byProduct, err := f.service.ListMovementsByProduct(ctx, product.ID, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Len(t, byProduct, 3)
}
