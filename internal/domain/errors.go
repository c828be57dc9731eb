package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgProfileNotFound      = "profile not found"
	ErrMsgInvalidInput         = "invalid input"
	ErrMsgUnreadableScreenshot = "could not read screenshot"
	ErrMsgDataIntegrity        = "game data integrity violation"
	ErrMsgConnectionTimeout    = "connection timeout"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrProfileNotFound      = errors.New(ErrMsgProfileNotFound)
	ErrInvalidInput         = errors.New(ErrMsgInvalidInput)
	ErrUnreadableScreenshot = errors.New(ErrMsgUnreadableScreenshot)
	ErrDataIntegrity        = errors.New(ErrMsgDataIntegrity)
	ErrConnectionTimeout    = errors.New(ErrMsgConnectionTimeout)
)
