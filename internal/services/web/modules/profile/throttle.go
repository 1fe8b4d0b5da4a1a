package profile

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultSaveRate  = rate.Limit(1)
	defaultSaveBurst = 3
	throttleIdleTTL  = 10 * time.Minute
	throttlePruneAt  = 1024
)

// SaveThrottle limits interest saves per user.
type SaveThrottle struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	now      func() time.Time
	limiters map[int64]*userLimiter
}

type userLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewSaveThrottle allows burst saves per user, refilling at limit per second.
func NewSaveThrottle(limit rate.Limit, burst int) *SaveThrottle {
	if limit <= 0 {
		limit = defaultSaveRate
	}
	if burst <= 0 {
		burst = defaultSaveBurst
	}
	return &SaveThrottle{
		limit:    limit,
		burst:    burst,
		now:      time.Now,
		limiters: make(map[int64]*userLimiter),
	}
}

// NewDefaultSaveThrottle allows three quick saves and one per second after.
func NewDefaultSaveThrottle() *SaveThrottle {
	return NewSaveThrottle(defaultSaveRate, defaultSaveBurst)
}

// Allow reports whether userID may save now. A nil throttle allows everything.
func (t *SaveThrottle) Allow(userID int64) bool {
	if t == nil {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	entry, ok := t.limiters[userID]
	if !ok {
		if len(t.limiters) >= throttlePruneAt {
			t.pruneLocked(now)
		}
		entry = &userLimiter{limiter: rate.NewLimiter(t.limit, t.burst)}
		t.limiters[userID] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

func (t *SaveThrottle) pruneLocked(now time.Time) {
	for userID, entry := range t.limiters {
		if now.Sub(entry.lastSeen) > throttleIdleTTL {
			delete(t.limiters, userID)
		}
	}
}
