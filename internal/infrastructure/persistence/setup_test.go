package persistence

import (
	"testing"

	"github.com/invoicing/backend/internal/domain/billing"
	"github.com/invoicing/backend/internal/domain/catalog"
	"github.com/invoicing/backend/internal/domain/finance"
	"github.com/invoicing/backend/internal/domain/inventory"
	"github.com/invoicing/backend/internal/domain/partner"
	"github.com/invoicing/backend/internal/domain/settings"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&billing.Document{},
		&billing.LineItem{},
		&billing.DocumentCounter{},
		&catalog.Product{},
		&inventory.StockMovement{},
		&partner.Client{},
		&finance.Expense{},
		&settings.BusinessProfile{},
	)
	require.NoError(t, err)

	return db
}
