package profile

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	webstorage "github.com/vinylcourses/coursehub/internal/services/web/storage"
	"github.com/vinylcourses/coursehub/internal/services/web/storage/sqlite"
)

func openCacheStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestCachingGatewayServesFreshCatalog(t *testing.T) {
	t.Parallel()

	stub := &gatewayStub{interests: []Interest{{ID: 1, Name: "Jazz", Category: "music"}}}
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	gateway := NewCachingGateway(stub, openCacheStore(t), time.Minute, nil).(cachingGateway)
	gateway.now = func() time.Time { return now }
	ctx := context.Background()

	first, err := gateway.ListInterests(ctx)
	require.NoError(t, err)
	second, err := gateway.ListInterests(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, stub.listCalls)

	now = now.Add(2 * time.Minute)
	_, err = gateway.ListInterests(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stub.listCalls)
}

func TestCachingGatewayDoesNotCacheFailures(t *testing.T) {
	t.Parallel()

	stub := &gatewayStub{listErr: errors.New("down")}
	gateway := NewCachingGateway(stub, openCacheStore(t), time.Minute, nil)

	_, err := gateway.ListInterests(context.Background())
	require.Error(t, err)
	_, err = gateway.ListInterests(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, stub.listCalls)
}

func TestCachingGatewayPassesUserCallsThrough(t *testing.T) {
	t.Parallel()

	stub := &gatewayStub{userIDs: []int64{4}, saveResp: SaveResult{Success: true}}
	gateway := NewCachingGateway(stub, openCacheStore(t), time.Minute, nil)

	ids, err := gateway.ListUserInterestIDs(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, ids)
	result, err := gateway.SaveUserInterests(context.Background(), 7, []int64{4})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, []int64{7}, stub.userFetches())
}

type brokenCacheStore struct{}

func (brokenCacheStore) GetCacheEntry(context.Context, string) (webstorage.CacheEntry, bool, error) {
	return webstorage.CacheEntry{}, false, errors.New("disk gone")
}

func (brokenCacheStore) PutCacheEntry(context.Context, webstorage.CacheEntry) error {
	return errors.New("disk gone")
}

func TestCachingGatewayFallsThroughOnStoreErrors(t *testing.T) {
	t.Parallel()

	stub := &gatewayStub{interests: []Interest{{ID: 2, Name: "Chess", Category: "games"}}}
	gateway := NewCachingGateway(stub, brokenCacheStore{}, time.Minute, nil)

	interests, err := gateway.ListInterests(context.Background())
	require.NoError(t, err)
	assert.Len(t, interests, 1)
}

func TestNewCachingGatewayWithoutStoreReturnsNext(t *testing.T) {
	t.Parallel()

	stub := &gatewayStub{}
	assert.Same(t, stub, NewCachingGateway(stub, nil, time.Minute, nil))
	_, isUnavailable := NewCachingGateway(nil, nil, 0, nil).(unavailableGateway)
	assert.True(t, isUnavailable)
}
