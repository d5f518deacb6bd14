package persistence

import (
	"context"
	"errors"

	"github.com/invoicing/backend/internal/domain/billing"
	"gorm.io/gorm"
)

// GormDocumentCounterRepository implements DocumentCounterRepository using GORM
type GormDocumentCounterRepository struct {
	db *gorm.DB
}

// NewGormDocumentCounterRepository creates a new GormDocumentCounterRepository
func NewGormDocumentCounterRepository(db *gorm.DB) *GormDocumentCounterRepository {
	return &GormDocumentCounterRepository{db: db}
}

// Current returns the last committed value for a type, zero when the
// counter row does not exist yet
func (r *GormDocumentCounterRepository) Current(ctx context.Context, docType billing.DocumentType) (int64, error) {
	var counter billing.DocumentCounter
	err := r.db.WithContext(ctx).
		First(&counter, "doc_type = ?", docType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return counter.CurrentValue, nil
}

// Increment advances the counter by one under a row lock and returns the
// new value. The first increment of a type creates the row. Callers are
// expected to run this inside the transaction that persists the document,
// so an aborted create rolls the counter back with it.
func (r *GormDocumentCounterRepository) Increment(ctx context.Context, docType billing.DocumentType) (int64, error) {
	var counter billing.DocumentCounter
	err := lockForUpdate(r.db.WithContext(ctx)).
		First(&counter, "doc_type = ?", docType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		counter = billing.DocumentCounter{DocType: docType, CurrentValue: 1}
		if err := r.db.WithContext(ctx).Create(&counter).Error; err != nil {
			return 0, err
		}
		return counter.CurrentValue, nil
	}
	if err != nil {
		return 0, err
	}

	counter.CurrentValue++
	if err := r.db.WithContext(ctx).Save(&counter).Error; err != nil {
		return 0, err
	}
	return counter.CurrentValue, nil
}

// Ensure GormDocumentCounterRepository implements DocumentCounterRepository
var _ billing.DocumentCounterRepository = (*GormDocumentCounterRepository)(nil)
