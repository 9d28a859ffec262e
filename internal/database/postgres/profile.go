package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Farmstead_Go/internal/database/generated"
	"github.com/osse101/Farmstead_Go/internal/domain"
	"github.com/osse101/Farmstead_Go/internal/profile"
)

// ProfileRepository stores player profiles in PostgreSQL
type ProfileRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

var _ profile.Repository = (*ProfileRepository)(nil)

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// GetProfile retrieves a profile by id
func (r *ProfileRepository) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	row, err := r.q.GetProfile(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", ErrMsgFailedToGetProfile, domain.ErrDatabaseError, err)
	}

	return &domain.Profile{
		ID:          row.ProfileID,
		DisplayName: row.DisplayName,
		District:    row.District,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}, nil
}

// UpsertProfile inserts or updates a profile and reads back its timestamps
func (r *ProfileRepository) UpsertProfile(ctx context.Context, p *domain.Profile) error {
	row, err := r.q.UpsertProfile(ctx, generated.UpsertProfileParams{
		ProfileID:   p.ID,
		DisplayName: p.DisplayName,
		District:    p.District,
	})
	if err != nil {
		return fmt.Errorf("%s: %w: %w", ErrMsgFailedToUpsertProfile, domain.ErrDatabaseError, err)
	}

	p.CreatedAt = row.CreatedAt.Time
	p.UpdatedAt = row.UpdatedAt.Time
	return nil
}
