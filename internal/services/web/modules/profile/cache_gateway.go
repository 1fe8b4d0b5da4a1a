package profile

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vinylcourses/coursehub/internal/platform/logging"
	webstorage "github.com/vinylcourses/coursehub/internal/services/web/storage"
)

const (
	catalogCacheKey   = "interests:catalog"
	catalogCacheScope = "interests.catalog"
)

// CatalogCacheStore is the cache persistence used for the interest catalog.
type CatalogCacheStore interface {
	GetCacheEntry(ctx context.Context, cacheKey string) (webstorage.CacheEntry, bool, error)
	PutCacheEntry(ctx context.Context, entry webstorage.CacheEntry) error
}

// NewCachingGateway serves ListInterests from store while the cached catalog
// is fresh. User reads and saves always go to next. Cache failures are logged
// and fall through to next.
func NewCachingGateway(next InterestsGateway, store CatalogCacheStore, ttl time.Duration, logger logrus.FieldLogger) InterestsGateway {
	if next == nil {
		next = unavailableGateway{}
	}
	if store == nil || ttl <= 0 {
		return next
	}
	return cachingGateway{
		InterestsGateway: next,
		store:            store,
		ttl:              ttl,
		logger:           logging.OrDiscard(logger),
		now:              time.Now,
	}
}

type cachingGateway struct {
	InterestsGateway
	store  CatalogCacheStore
	ttl    time.Duration
	logger logrus.FieldLogger
	now    func() time.Time
}

type cachedInterest struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (g cachingGateway) ListInterests(ctx context.Context) ([]Interest, error) {
	now := g.now().UTC()
	if interests, ok := g.readCatalog(ctx, now); ok {
		return interests, nil
	}
	interests, err := g.InterestsGateway.ListInterests(ctx)
	if err != nil {
		return nil, err
	}
	g.writeCatalog(ctx, interests, now)
	return interests, nil
}

func (g cachingGateway) readCatalog(ctx context.Context, now time.Time) ([]Interest, bool) {
	entry, found, err := g.store.GetCacheEntry(ctx, catalogCacheKey)
	if err != nil {
		g.logger.WithError(err).WithField("cache_key", catalogCacheKey).Warn("read catalog cache")
		return nil, false
	}
	if !found || !entry.Fresh(now) {
		return nil, false
	}
	var cached []cachedInterest
	if err := json.Unmarshal(entry.PayloadBytes, &cached); err != nil {
		g.logger.WithError(err).WithField("cache_key", catalogCacheKey).Warn("decode catalog cache")
		return nil, false
	}
	interests := make([]Interest, 0, len(cached))
	for _, item := range cached {
		interests = append(interests, Interest{ID: item.ID, Name: item.Name, Category: item.Category})
	}
	return interests, true
}

func (g cachingGateway) writeCatalog(ctx context.Context, interests []Interest, now time.Time) {
	cached := make([]cachedInterest, 0, len(interests))
	for _, interest := range interests {
		cached = append(cached, cachedInterest{ID: interest.ID, Name: interest.Name, Category: interest.Category})
	}
	payload, err := json.Marshal(cached)
	if err != nil {
		g.logger.WithError(err).Warn("encode catalog cache")
		return
	}
	if err := g.store.PutCacheEntry(ctx, webstorage.CacheEntry{
		CacheKey:     catalogCacheKey,
		Scope:        catalogCacheScope,
		PayloadBytes: payload,
		RefreshedAt:  now,
		ExpiresAt:    now.Add(g.ttl),
	}); err != nil {
		g.logger.WithError(err).WithField("cache_key", catalogCacheKey).Warn("write catalog cache")
	}
}
