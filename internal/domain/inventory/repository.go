package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/shared"
)

// StockMovementRepository defines persistence for the append-only movement
// ledger. There is deliberately no update or delete.
type StockMovementRepository interface {
	Append(ctx context.Context, movement *StockMovement) error
	FindAll(ctx context.Context, filter shared.Filter) ([]StockMovement, error)
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]StockMovement, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
