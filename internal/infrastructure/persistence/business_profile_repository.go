package persistence

import (
	"context"
	"errors"

	"github.com/invoicing/backend/internal/domain/settings"
	"gorm.io/gorm"
)

// GormBusinessProfileRepository implements BusinessProfileRepository using
// GORM. The table holds at most one row.
type GormBusinessProfileRepository struct {
	db *gorm.DB
}

// NewGormBusinessProfileRepository creates a new GormBusinessProfileRepository
func NewGormBusinessProfileRepository(db *gorm.DB) *GormBusinessProfileRepository {
	return &GormBusinessProfileRepository{db: db}
}

// Get returns the profile, or (nil, nil) when none has been saved yet
func (r *GormBusinessProfileRepository) Get(ctx context.Context) (*settings.BusinessProfile, error) {
	var profile settings.BusinessProfile
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Save creates or updates the profile
func (r *GormBusinessProfileRepository) Save(ctx context.Context, profile *settings.BusinessProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// Ensure GormBusinessProfileRepository implements BusinessProfileRepository
var _ settings.BusinessProfileRepository = (*GormBusinessProfileRepository)(nil)
