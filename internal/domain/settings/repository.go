package settings

import "context"

// BusinessProfileRepository defines persistence for the profile record
type BusinessProfileRepository interface {
	// Get returns the profile, or (nil, nil) when none has been saved yet
	Get(ctx context.Context) (*BusinessProfile, error)
	Save(ctx context.Context, profile *BusinessProfile) error
}
