package importer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/invoicing/backend/internal/application/importer"
	"github.com/invoicing/backend/internal/domain/catalog"
	"github.com/invoicing/backend/internal/domain/partner"
	"github.com/invoicing/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupImportDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&catalog.Product{}, &partner.Client{}))
	return db
}

func TestProductImportService(t *testing.T) {
	ctx := context.Background()

	t.Run("imports rows with loose headers", func(t *testing.T) {
		db := setupImportDB(t)
		repo := persistence.NewGormProductRepository(db)
		service := importer.NewProductImportService(repo, nil)

		csv := "Product Name,SKU,Rate,Tax,Stock,Track Inventory\n" +
			"Widget,WID-1,100,18,25,yes\n" +
			"Gadget,GAD-1,49.50,12,0,no\n"

		summary, err := service.Import(ctx, strings.NewReader(csv), importer.ConflictSkip)
		require.NoError(t, err)
		assert.Equal(t, 2, summary.TotalRows)
		assert.Equal(t, 2, summary.Imported)
		assert.Equal(t, 0, summary.Failed)

		widget, err := repo.FindBySKU(ctx, "WID-1")
		require.NoError(t, err)
		assert.Equal(t, "Widget", widget.Name)
		assert.True(t, widget.TrackInventory)
		assert.True(t, widget.StockLevel.Equal(decimal.NewFromInt(25)))
		assert.True(t, widget.DefaultRate.Equal(decimal.NewFromInt(100)))
	})

	t.Run("rows without a name fail individually", func(t *testing.T) {
		db := setupImportDB(t)
		service := importer.NewProductImportService(persistence.NewGormProductRepository(db), nil)

		csv := "name,rate\nWidget,100\n,50\n"
		summary, err := service.Import(ctx, strings.NewReader(csv), importer.ConflictSkip)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Imported)
		assert.Equal(t, 1, summary.Failed)
		require.Len(t, summary.Errors, 1)
		assert.Equal(t, 3, summary.Errors[0].Row)
	})

	t.Run("skip mode leaves existing SKU untouched", func(t *testing.T) {
		db := setupImportDB(t)
		repo := persistence.NewGormProductRepository(db)
		service := importer.NewProductImportService(repo, nil)

		csv := "name,sku,rate\nWidget,WID-1,100\n"
		_, err := service.Import(ctx, strings.NewReader(csv), importer.ConflictSkip)
		require.NoError(t, err)

		csv = "name,sku,rate\nWidget v2,WID-1,200\n"
		summary, err := service.Import(ctx, strings.NewReader(csv), importer.ConflictSkip)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Skipped)

		existing, err := repo.FindBySKU(ctx, "WID-1")
		require.NoError(t, err)
		assert.Equal(t, "Widget", existing.Name)
	})

	t.Run("update mode overwrites existing SKU", func(t *testing.T) {
		db := setupImportDB(t)
		repo := persistence.NewGormProductRepository(db)
		service := importer.NewProductImportService(repo, nil)

		_, err := service.Import(ctx, strings.NewReader("name,sku,rate\nWidget,WID-1,100\n"), importer.ConflictSkip)
		require.NoError(t, err)

		summary, err := service.Import(ctx, strings.NewReader("name,sku,rate\nWidget v2,WID-1,200\n"), importer.ConflictUpdate)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Updated)

		existing, err := repo.FindBySKU(ctx, "WID-1")
		require.NoError(t, err)
		assert.Equal(t, "Widget v2", existing.Name)
		assert.True(t, existing.DefaultRate.Equal(decimal.NewFromInt(200)))
	})

	t.Run("fail mode aborts on collision", func(t *testing.T) {
		db := setupImportDB(t)
		service := importer.NewProductImportService(persistence.NewGormProductRepository(db), nil)

		_, err := service.Import(ctx, strings.NewReader("name,sku\nWidget,WID-1\n"), importer.ConflictSkip)
		require.NoError(t, err)

		_, err = service.Import(ctx, strings.NewReader("name,sku\nAgain,WID-1\n"), importer.ConflictFail)
		assert.Error(t, err)
	})

	t.Run("rejects CSV without a name column", func(t *testing.T) {
		db := setupImportDB(t)
		service := importer.NewProductImportService(persistence.NewGormProductRepository(db), nil)

		_, err := service.Import(ctx, strings.NewReader("sku,rate\nWID-1,100\n"), importer.ConflictSkip)
		assert.Error(t, err)
	})
}

func TestClientImportService(t *testing.T) {
	ctx := context.Background()

	t.Run("imports clients and validates GSTIN per row", func(t *testing.T) {
		db := setupImportDB(t)
		repo := persistence.NewGormClientRepository(db)
		service := importer.NewClientImportService(repo, nil)

		csv := "Customer Name,Email,GSTIN\n" +
			"Acme Traders,acme@example.com,27AAPFU0939F1ZV\n" +
			"Bad GST Co,bad@example.com,27AAPFU0939F1ZW\n" +
			"No GST Co,nogst@example.com,\n"

		summary, err := service.Import(ctx, strings.NewReader(csv), importer.ConflictSkip)
		require.NoError(t, err)
		assert.Equal(t, 3, summary.TotalRows)
		assert.Equal(t, 2, summary.Imported)
		assert.Equal(t, 1, summary.Failed)

		acme, err := repo.FindByName(ctx, "Acme Traders")
		require.NoError(t, err)
		assert.Equal(t, "27AAPFU0939F1ZV", acme.GSTIN)
	})

	t.Run("update mode refreshes existing client", func(t *testing.T) {
		db := setupImportDB(t)
		repo := persistence.NewGormClientRepository(db)
		service := importer.NewClientImportService(repo, nil)

		_, err := service.Import(ctx, strings.NewReader("name,phone\nAcme,111\n"), importer.ConflictSkip)
		require.NoError(t, err)

		summary, err := service.Import(ctx, strings.NewReader("name,phone\nAcme,222\n"), importer.ConflictUpdate)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Updated)

		acme, err := repo.FindByName(ctx, "Acme")
		require.NoError(t, err)
		assert.Equal(t, "222", acme.Phone)
	})
}
