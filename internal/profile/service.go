package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Farmstead_Go/internal/domain"
	"github.com/osse101/Farmstead_Go/internal/logger"
)

// Service handles the persisted player profile
type Service interface {
	// GetProfile returns the profile, or a blank unsaved one when none is stored
	GetProfile(ctx context.Context, id string) (*domain.Profile, error)

	// SetDisplayName validates and persists a new display name
	SetDisplayName(ctx context.Context, id, name string) (*domain.Profile, error)

	// SetDistrict remembers the player's preferred market district
	SetDistrict(ctx context.Context, id, district string) (*domain.Profile, error)
}

type service struct {
	repo  Repository
	cache *expirable.LRU[string, domain.Profile]
}

// NewService creates a profile service with a read-through cache in front of repo
func NewService(repo Repository, cacheSize int, ttl time.Duration) Service {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &service{
		repo:  repo,
		cache: expirable.NewLRU[string, domain.Profile](cacheSize, nil, ttl),
	}
}

func (s *service) GetProfile(ctx context.Context, id string) (*domain.Profile, error) {
	log := logger.FromContext(ctx)

	if p, ok := s.cache.Get(id); ok {
		log.Debug(LogMsgProfileCacheHit, "profile_id", id)
		return &p, nil
	}

	p, err := s.repo.GetProfile(ctx, id)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return &domain.Profile{ID: id}, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProfileFailed, id, err)
	}

	log.Debug(LogMsgProfileLoaded, "profile_id", id)
	s.cache.Add(id, *p)
	return p, nil
}

func (s *service) SetDisplayName(ctx context.Context, id, name string) (*domain.Profile, error) {
	name, err := NormalizeDisplayName(name)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, id, func(p *domain.Profile) { p.DisplayName = name })
}

func (s *service) SetDistrict(ctx context.Context, id, district string) (*domain.Profile, error) {
	return s.update(ctx, id, func(p *domain.Profile) { p.District = district })
}

func (s *service) update(ctx context.Context, id string, mutate func(p *domain.Profile)) (*domain.Profile, error) {
	log := logger.FromContext(ctx)

	p, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := *p
	mutate(&updated)

	if err := s.repo.UpsertProfile(ctx, &updated); err != nil {
		log.Error(LogMsgProfileSaveError, "profile_id", id, "error", err)
		s.cache.Remove(id)
		return nil, fmt.Errorf(ErrMsgSaveProfileFailed, id, err)
	}

	s.cache.Add(id, updated)
	log.Info(LogMsgProfileSaved, "profile_id", id, "display_name", updated.DisplayName)
	return &updated, nil
}

// NormalizeDisplayName trims surrounding space and rejects empty, overlong or
// control-character names
func NormalizeDisplayName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf(ErrMsgDisplayNameEmpty, domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > MaxDisplayNameLength {
		return "", fmt.Errorf(ErrMsgDisplayNameTooLong, domain.ErrInvalidInput, MaxDisplayNameLength)
	}
	if strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return "", fmt.Errorf(ErrMsgDisplayNameControls, domain.ErrInvalidInput)
	}
	return name, nil
}
