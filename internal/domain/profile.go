package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a saved planner state for one account.
type Profile struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name" validate:"required,min=1,max=64"`
	Level       int           `json:"level" validate:"min=1,max=90"`
	Progress    Progress      `json:"current_exp"`
	TargetLevel int           `json:"target_level" validate:"min=1,max=90"`
	Economy     EconomyConfig `json:"economy"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
