package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeCheckViolation is the PostgreSQL error code for CHECK constraint violations
	PgErrorCodeCheckViolation = "23514"
)

// Error Messages - Profile Operations
const (
	ErrMsgFailedToInsertProfile    = "failed to insert profile"
	ErrMsgFailedToGetProfile       = "failed to get profile"
	ErrMsgFailedToUpdateProfile    = "failed to update profile"
	ErrMsgFailedToDeleteProfile    = "failed to delete profile"
	ErrMsgFailedToListProfiles     = "failed to list profiles"
	ErrMsgFailedToScanProfile      = "failed to scan profile"
	ErrMsgFailedToMarshalEconomy   = "failed to marshal economy config"
	ErrMsgFailedToUnmarshalEconomy = "failed to unmarshal economy config"
)
