package profile

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SchalePlanner_Go/internal/domain"
	"github.com/osse101/SchalePlanner_Go/internal/metrics"
)

// CacheConfig sizes the profile cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the cache sizing used when none is configured
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats is a snapshot of cache activity
type CacheStats struct {
	Hits   int64
	Misses int64
	Size   int
}

// cachedProfileEntry wraps a profile with version metadata for cache invalidation
type cachedProfileEntry struct {
	Version  string
	Profile  domain.Profile
	CachedAt time.Time
}

// profileCache is an in-memory LRU of profiles keyed by ID with time-based
// expiry. Profiles are stored and returned by value.
type profileCache struct {
	lru    *expirable.LRU[uuid.UUID, *cachedProfileEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newProfileCache(cfg CacheConfig) *profileCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	return &profileCache{
		lru: expirable.NewLRU[uuid.UUID, *cachedProfileEntry](cfg.Size, nil, cfg.TTL),
	}
}

// Get returns a copy of the cached profile. Entries written under another
// schema version are dropped and reported as a miss.
func (c *profileCache) Get(id uuid.UUID) (domain.Profile, bool) {
	entry, found := c.lru.Get(id)
	if found && entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		found = false
	}

	metrics.RecordCacheLookup(found)
	if !found {
		c.misses.Add(1)
		return domain.Profile{}, false
	}
	c.hits.Add(1)
	return entry.Profile, true
}

// Set stores a copy of p.
func (c *profileCache) Set(p domain.Profile) {
	c.lru.Add(p.ID, &cachedProfileEntry{
		Version:  CacheSchemaVersion,
		Profile:  p,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a profile from the cache.
func (c *profileCache) Invalidate(id uuid.UUID) {
	c.lru.Remove(id)
}

// Clear removes all entries from the cache.
func (c *profileCache) Clear() {
	c.lru.Purge()
}

// GetStats returns hit and miss counts and the current size.
func (c *profileCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
