package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/SchalePlanner_Go/internal/domain"
)

// Repository defines the data access interface for planner profiles.
// Get, Update and Delete return domain.ErrProfileNotFound for unknown IDs.
type Repository interface {
	CreateProfile(ctx context.Context, p *domain.Profile) error
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, p *domain.Profile) error
	DeleteProfile(ctx context.Context, id uuid.UUID) error
	ListProfiles(ctx context.Context, limit, offset int) ([]domain.Profile, error)
}
