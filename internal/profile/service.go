// Package profile manages saved planner profiles: validation, persistence
// through a Repository and a read-through cache.
package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/osse101/SchalePlanner_Go/internal/domain"
	"github.com/osse101/SchalePlanner_Go/internal/logger"
	"github.com/osse101/SchalePlanner_Go/internal/metrics"
)

// Service defines planner profile operations
type Service interface {
	Create(ctx context.Context, p domain.Profile) (*domain.Profile, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, p domain.Profile) (*domain.Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]domain.Profile, error)
	CacheStats() CacheStats
}

type service struct {
	repo     Repository
	cache    *profileCache
	validate *validator.Validate
	now      func() time.Time
}

// NewService creates a new profile service
func NewService(repo Repository, cacheCfg CacheConfig) Service {
	return &service{
		repo:     repo,
		cache:    newProfileCache(cacheCfg),
		validate: validator.New(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create validates p, assigns it a new ID and timestamps, and stores it.
func (s *service) Create(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	p.Name = strings.TrimSpace(p.Name)
	if err := s.validateProfile(p); err != nil {
		return nil, err
	}

	p.ID = uuid.New()
	p.CreatedAt = s.now()
	p.UpdatedAt = p.CreatedAt

	err := s.repo.CreateProfile(ctx, &p)
	metrics.RecordProfileOperation(OpCreate, err)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.cache.Set(p)
	logger.FromContext(ctx).Info("Profile created", "profile_id", p.ID, "level", p.Level)
	return &p, nil
}

// Get returns a profile, from the cache when possible.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if p, ok := s.cache.Get(id); ok {
		return &p, nil
	}

	p, err := s.repo.GetProfile(ctx, id)
	metrics.RecordProfileOperation(OpGet, ignoreNotFound(err))
	if err != nil {
		return nil, fmt.Errorf("failed to get profile %s: %w", id, err)
	}

	s.cache.Set(*p)
	return p, nil
}

// Update replaces the stored fields of an existing profile. CreatedAt is
// preserved and UpdatedAt is refreshed.
func (s *service) Update(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	p.Name = strings.TrimSpace(p.Name)
	if err := s.validateProfile(p); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = s.now()

	err = s.repo.UpdateProfile(ctx, &p)
	metrics.RecordProfileOperation(OpUpdate, ignoreNotFound(err))
	if err != nil {
		s.cache.Invalidate(p.ID)
		return nil, fmt.Errorf("failed to update profile %s: %w", p.ID, err)
	}

	s.cache.Set(p)
	logger.FromContext(ctx).Info("Profile updated", "profile_id", p.ID)
	return &p, nil
}

// Delete removes a profile.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	s.cache.Invalidate(id)

	err := s.repo.DeleteProfile(ctx, id)
	metrics.RecordProfileOperation(OpDelete, ignoreNotFound(err))
	if err != nil {
		return fmt.Errorf("failed to delete profile %s: %w", id, err)
	}

	logger.FromContext(ctx).Info("Profile deleted", "profile_id", id)
	return nil
}

// List returns profiles, most recently updated first. limit is clamped to
// [1, MaxListLimit] with DefaultListLimit for non-positive values.
func (s *service) List(ctx context.Context, limit, offset int) ([]domain.Profile, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)
	offset = max(offset, 0)

	profiles, err := s.repo.ListProfiles(ctx, limit, offset)
	metrics.RecordProfileOperation(OpList, err)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// CacheStats reports profile cache activity.
func (s *service) CacheStats() CacheStats {
	return s.cache.GetStats()
}

func (s *service) validateProfile(p domain.Profile) error {
	if err := s.validate.Struct(p); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return fmt.Errorf("%w: %s failed on %s", domain.ErrInvalidInput, ve[0].Namespace(), ve[0].Tag())
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// ignoreNotFound keeps lookups of unknown IDs out of the error metrics.
func ignoreNotFound(err error) error {
	if errors.Is(err, domain.ErrProfileNotFound) {
		return nil
	}
	return err
}
