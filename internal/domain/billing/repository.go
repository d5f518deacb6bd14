package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/shared"
)

// DocumentRepository defines persistence operations for documents
type DocumentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Document, error)
	// FindAll returns documents of the given type ordered by date descending.
	// An empty docType returns documents of every type.
	FindAll(ctx context.Context, docType DocumentType, filter shared.Filter) ([]Document, error)
	Count(ctx context.Context, docType DocumentType, filter shared.Filter) (int64, error)
	// Save inserts or updates the header and replaces the full item set
	Save(ctx context.Context, doc *Document) error
	// Delete removes the header and cascades to items. It never touches
	// inventory or counters.
	Delete(ctx context.Context, id uuid.UUID) error
}

// DocumentCounterRepository defines persistence for the numbering sequence
type DocumentCounterRepository interface {
	// Current returns the last committed counter value for a type,
	// zero when no document of that type was ever numbered.
	Current(ctx context.Context, docType DocumentType) (int64, error)
	// Increment advances the counter by exactly one and returns the new
	// value. Implementations must lock the counter row so concurrent
	// creates never observe the same value.
	Increment(ctx context.Context, docType DocumentType) (int64, error)
}
