package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	webstorage "github.com/vinylcourses/coursehub/internal/services/web/storage"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "web-cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), "  ")
	require.Error(t, err)
}

func TestOpenIsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "web-cache.db")
	first, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestCacheEntryRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	refreshed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	_, found, err := store.GetCacheEntry(ctx, "interests:catalog")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.PutCacheEntry(ctx, webstorage.CacheEntry{
		CacheKey:     "interests:catalog",
		Scope:        "interests.catalog",
		PayloadBytes: []byte(`[{"id":1}]`),
		RefreshedAt:  refreshed,
		ExpiresAt:    refreshed.Add(5 * time.Minute),
	}))

	entry, found, err := store.GetCacheEntry(ctx, " interests:catalog ")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "interests.catalog", entry.Scope)
	assert.Equal(t, []byte(`[{"id":1}]`), entry.PayloadBytes)
	assert.True(t, entry.RefreshedAt.Equal(refreshed))
	assert.True(t, entry.Fresh(refreshed.Add(time.Minute)))
	assert.False(t, entry.Fresh(refreshed.Add(5*time.Minute)))

	require.NoError(t, store.PutCacheEntry(ctx, webstorage.CacheEntry{
		CacheKey:     "interests:catalog",
		Scope:        "interests.catalog",
		PayloadBytes: []byte(`[]`),
		RefreshedAt:  refreshed.Add(time.Hour),
		ExpiresAt:    refreshed.Add(2 * time.Hour),
	}))
	entry, _, err = store.GetCacheEntry(ctx, "interests:catalog")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), entry.PayloadBytes)

	require.NoError(t, store.DeleteCacheEntry(ctx, "interests:catalog"))
	_, found, err = store.GetCacheEntry(ctx, "interests:catalog")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPutCacheEntryValidates(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	for name, entry := range map[string]webstorage.CacheEntry{
		"missing key":     {Scope: "s", PayloadBytes: []byte("x")},
		"missing scope":   {CacheKey: "k", PayloadBytes: []byte("x")},
		"missing payload": {CacheKey: "k", Scope: "s"},
	} {
		assert.Error(t, store.PutCacheEntry(ctx, entry), name)
	}
}

func TestDeleteExpired(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.PutCacheEntry(ctx, webstorage.CacheEntry{
		CacheKey: "old", Scope: "s", PayloadBytes: []byte("1"), ExpiresAt: now.Add(-time.Minute),
	}))
	require.NoError(t, store.PutCacheEntry(ctx, webstorage.CacheEntry{
		CacheKey: "new", Scope: "s", PayloadBytes: []byte("2"), ExpiresAt: now.Add(time.Minute),
	}))

	removed, err := store.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, found, err := store.GetCacheEntry(ctx, "new")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestNilStore(t *testing.T) {
	t.Parallel()

	var store *Store
	assert.NoError(t, store.Close())
	_, _, err := store.GetCacheEntry(context.Background(), "k")
	assert.Error(t, err)
}
