package profile

import (
	"context"

	"github.com/osse101/Farmstead_Go/internal/domain"
)

// Repository defines the interface for profile storage
type Repository interface {
	// GetProfile returns the stored profile or domain.ErrProfileNotFound
	GetProfile(ctx context.Context, id string) (*domain.Profile, error)

	// UpsertProfile creates or replaces a profile and fills in its timestamps
	UpsertProfile(ctx context.Context, p *domain.Profile) error
}
