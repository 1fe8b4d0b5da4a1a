package storage

import (
	"context"
	"time"
)

// CacheEntry stores one web cache payload and freshness metadata.
//
// Cache data is always derived and can be discarded/rebuilt from upstream
// API reads.
type CacheEntry struct {
	CacheKey     string
	Scope        string
	PayloadBytes []byte
	RefreshedAt  time.Time
	ExpiresAt    time.Time
}

// Fresh reports whether the entry can still be served at now.
func (e CacheEntry) Fresh(now time.Time) bool {
	if e.ExpiresAt.IsZero() {
		return false
	}
	return now.Before(e.ExpiresAt)
}

// Store is the contract for web cache persistence.
type Store interface {
	Close() error
	GetCacheEntry(ctx context.Context, cacheKey string) (CacheEntry, bool, error)
	PutCacheEntry(ctx context.Context, entry CacheEntry) error
	DeleteCacheEntry(ctx context.Context, cacheKey string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
