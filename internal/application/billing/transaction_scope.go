package billing

import (
	"context"

	"github.com/invoicing/backend/internal/domain/billing"
	"github.com/invoicing/backend/internal/domain/catalog"
	"github.com/invoicing/backend/internal/domain/inventory"
	"github.com/invoicing/backend/internal/domain/settings"
)

// TransactionScope provides transactional access to the repositories a
// document write touches. Executing a function within the scope runs every
// repository operation inside one database transaction: the header, the
// item replacement, the counter commit and any stock deduction all commit
// or roll back together.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories within a
// transaction. All repositories returned share the same underlying
// database transaction.
type TransactionalRepositories interface {
	// Documents returns the document repository scoped to the transaction
	Documents() billing.DocumentRepository
	// Counters returns the numbering counter repository scoped to the transaction
	Counters() billing.DocumentCounterRepository
	// Products returns the product repository scoped to the transaction
	Products() catalog.ProductRepository
	// Movements returns the stock movement repository scoped to the transaction
	Movements() inventory.StockMovementRepository
	// Profile returns the business profile repository scoped to the transaction
	Profile() settings.BusinessProfileRepository
}
