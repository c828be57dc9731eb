package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SchalePlanner_Go/internal/domain"
)

// ProfileRepository implements the planner profile repository for PostgreSQL
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `profile_id, name, level, current_exp, target_level, economy, created_at, updated_at`

// CreateProfile inserts a new profile. The ID and timestamps are set by the caller.
func (r *ProfileRepository) CreateProfile(ctx context.Context, p *domain.Profile) error {
	economy, err := json.Marshal(p.Economy)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalEconomy, err)
	}

	query := `
		INSERT INTO planner_profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.Exec(ctx, query,
		p.ID, p.Name, p.Level, p.Progress.String(), p.TargetLevel, economy, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertProfile, mapError(err))
	}
	return nil
}

// GetProfile returns a profile by ID
func (r *ProfileRepository) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM planner_profiles WHERE profile_id = $1`

	p, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProfile, mapError(err))
	}
	return p, nil
}

// UpdateProfile overwrites the editable fields of a profile
func (r *ProfileRepository) UpdateProfile(ctx context.Context, p *domain.Profile) error {
	economy, err := json.Marshal(p.Economy)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalEconomy, err)
	}

	query := `
		UPDATE planner_profiles
		SET name = $2, level = $3, current_exp = $4, target_level = $5, economy = $6, updated_at = $7
		WHERE profile_id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Level, p.Progress.String(), p.TargetLevel, economy, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateProfile, mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

// DeleteProfile removes a profile by ID
func (r *ProfileRepository) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM planner_profiles WHERE profile_id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteProfile, mapError(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

// ListProfiles returns a page of profiles, most recently updated first
func (r *ProfileRepository) ListProfiles(ctx context.Context, limit, offset int) ([]domain.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM planner_profiles
		ORDER BY updated_at DESC, profile_id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListProfiles, mapError(err))
	}
	defer rows.Close()

	profiles := make([]domain.Profile, 0, limit)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanProfile, err)
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListProfiles, err)
	}
	return profiles, nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var (
		p          domain.Profile
		currentExp string
		economy    []byte
		createdAt  time.Time
		updatedAt  time.Time
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Level, &currentExp, &p.TargetLevel, &economy, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	p.Progress = domain.ParseProgress(currentExp)
	if len(economy) > 0 {
		if err := json.Unmarshal(economy, &p.Economy); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalEconomy, err)
		}
	}
	p.CreatedAt = createdAt.UTC()
	p.UpdatedAt = updatedAt.UTC()
	return &p, nil
}

// mapError turns CHECK and UNIQUE violations into ErrInvalidInput and
// expired deadlines into ErrConnectionTimeout.
func mapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %w", domain.ErrConnectionTimeout, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case PgErrorCodeUniqueViolation, PgErrorCodeCheckViolation:
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, pgErr.ConstraintName)
		}
	}
	return err
}
