package profile

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Farmstead_Go/internal/domain"
)

// MemoryRepository keeps profiles in process memory. Used when no database is configured.
type MemoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]domain.Profile
	now      func() time.Time
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		profiles: make(map[string]domain.Profile),
		now:      time.Now,
	}
}

// GetProfile returns a copy of the stored profile
func (r *MemoryRepository) GetProfile(_ context.Context, id string) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &p, nil
}

// UpsertProfile stores a copy of p
func (r *MemoryRepository) UpsertProfile(_ context.Context, p *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	if existing, ok := r.profiles[p.ID]; ok {
		p.CreatedAt = existing.CreatedAt
	} else {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	r.profiles[p.ID] = *p
	return nil
}
