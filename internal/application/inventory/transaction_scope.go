package inventory

import (
	"context"

	"github.com/invoicing/backend/internal/domain/catalog"
	"github.com/invoicing/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to the repositories a
// stock adjustment touches. The stock write and the ledger append must
// commit or roll back together; a ledger row without its stock change
// (or the reverse) would make the movement log lie.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the inventory repositories
// within a transaction
type TransactionalRepositories interface {
	// Products returns the product repository scoped to the transaction
	Products() catalog.ProductRepository
	// Movements returns the stock movement repository scoped to the transaction
	Movements() inventory.StockMovementRepository
}
