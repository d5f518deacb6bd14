package persistence

import (
	"context"

	appbilling "github.com/invoicing/backend/internal/application/billing"
	appinventory "github.com/invoicing/backend/internal/application/inventory"
	"github.com/invoicing/backend/internal/domain/billing"
	"github.com/invoicing/backend/internal/domain/catalog"
	"github.com/invoicing/backend/internal/domain/inventory"
	"github.com/invoicing/backend/internal/domain/settings"
	"gorm.io/gorm"
)

// GormBillingScope runs document lifecycle operations inside one database
// transaction. Every repository handed to the callback is bound to the
// same *gorm.DB transaction handle.
type GormBillingScope struct {
	db *gorm.DB
}

// NewGormBillingScope creates a new GormBillingScope
func NewGormBillingScope(db *gorm.DB) *GormBillingScope {
	return &GormBillingScope{db: db}
}

// Execute runs fn inside a transaction
func (s *GormBillingScope) Execute(ctx context.Context, fn func(repos appbilling.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&billingTxRepos{tx: tx})
	})
}

type billingTxRepos struct {
	tx *gorm.DB
}

func (r *billingTxRepos) Documents() billing.DocumentRepository {
	return NewGormDocumentRepository(r.tx)
}

func (r *billingTxRepos) Counters() billing.DocumentCounterRepository {
	return NewGormDocumentCounterRepository(r.tx)
}

func (r *billingTxRepos) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *billingTxRepos) Movements() inventory.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

func (r *billingTxRepos) Profile() settings.BusinessProfileRepository {
	return NewGormBusinessProfileRepository(r.tx)
}

// GormInventoryScope runs stock adjustments inside one database transaction
type GormInventoryScope struct {
	db *gorm.DB
}

// NewGormInventoryScope creates a new GormInventoryScope
func NewGormInventoryScope(db *gorm.DB) *GormInventoryScope {
	return &GormInventoryScope{db: db}
}

// Execute runs fn inside a transaction
func (s *GormInventoryScope) Execute(ctx context.Context, fn func(repos appinventory.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&inventoryTxRepos{tx: tx})
	})
}

type inventoryTxRepos struct {
	tx *gorm.DB
}

func (r *inventoryTxRepos) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *inventoryTxRepos) Movements() inventory.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

// Interface checks
var (
	_ appbilling.TransactionScope   = (*GormBillingScope)(nil)
	_ appinventory.TransactionScope = (*GormInventoryScope)(nil)
)
