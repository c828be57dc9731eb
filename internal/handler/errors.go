package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	ErrMsgInvalidProfileID = "Invalid profile ID"

	// Scan error messages
	ErrMsgScanDisabled    = "Screenshot scanning is not configured"
	ErrMsgMissingImage    = "Missing image upload"
	ErrMsgImageTooLarge   = "Image is too large"
	ErrMsgUnsupportedType = "Unsupported image type"
)

// Success messages for API responses
const (
	MsgProfileDeleted = "Profile deleted"
)

// Form and query parameter names
const (
	FormFieldImage   = "image"
	QueryParamLevel  = "level"
	QueryParamQuery  = "q"
	QueryParamLimit  = "limit"
	QueryParamOffset = "offset"
	URLParamID       = "id"
)
