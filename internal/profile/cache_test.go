package profile

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/SchalePlanner_Go/internal/domain"
)

func TestCacheInvalidation(t *testing.T) {
	cache := newProfileCache(CacheConfig{Size: 10, TTL: time.Minute})
	p := domain.Profile{ID: uuid.New(), Name: "main", Level: 40}

	cache.Set(p)
	got, found := cache.Get(p.ID)
	assert.True(t, found)
	assert.Equal(t, p, got)

	cache.Invalidate(p.ID)
	_, found = cache.Get(p.ID)
	assert.False(t, found)
}

func TestCacheReturnsCopies(t *testing.T) {
	cache := newProfileCache(DefaultCacheConfig())
	p := domain.Profile{ID: uuid.New(), Name: "main", Level: 40}
	cache.Set(p)

	got, _ := cache.Get(p.ID)
	got.Level = 90

	again, _ := cache.Get(p.ID)
	assert.Equal(t, 40, again.Level)
}

func TestCacheStats(t *testing.T) {
	cache := newProfileCache(CacheConfig{Size: 10, TTL: time.Minute})

	stats := cache.GetStats()
	assert.Equal(t, int64(0), stats.Hits)
	assert.Equal(t, int64(0), stats.Misses)
	assert.Equal(t, 0, stats.Size)

	id := uuid.New()
	cache.Get(id)
	stats = cache.GetStats()
	assert.Equal(t, int64(1), stats.Misses)

	cache.Set(domain.Profile{ID: id})
	cache.Get(id)
	stats = cache.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)

	cache.Clear()
	assert.Equal(t, 0, cache.GetStats().Size)
}

func TestCacheStaleVersion(t *testing.T) {
	cache := newProfileCache(CacheConfig{Size: 10, TTL: time.Minute})
	id := uuid.New()
	cache.lru.Add(id, &cachedProfileEntry{Version: "0.9", Profile: domain.Profile{ID: id}})

	_, found := cache.Get(id)
	assert.False(t, found)
	assert.Equal(t, 0, cache.GetStats().Size)
}

func TestCacheConfig(t *testing.T) {
	cfg := DefaultCacheConfig()
	assert.Equal(t, 1024, cfg.Size)
	assert.Equal(t, 10*time.Minute, cfg.TTL)

	// Non-positive values fall back to defaults
	cache := newProfileCache(CacheConfig{})
	cache.Set(domain.Profile{ID: uuid.New()})
	assert.Equal(t, 1, cache.GetStats().Size)
}
