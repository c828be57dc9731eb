package profile

import "time"

// Cache defaults
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 10 * time.Minute

	// CacheSchemaVersion invalidates cached entries when the Profile shape changes
	CacheSchemaVersion = "1.0"
)

// Listing bounds
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Operation names for logs and metrics
const (
	OpCreate = "create"
	OpGet    = "get"
	OpUpdate = "update"
	OpDelete = "delete"
	OpList   = "list"
)
