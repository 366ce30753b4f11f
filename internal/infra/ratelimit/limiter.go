// Package ratelimit implements per-key token buckets for self-service ledger mutations.
package ratelimit

import (
	"sync"
	"time"

	"loyalty/config"
	"loyalty/internal/domain/service"

	"golang.org/x/time/rate"
)

// sweepEvery bounds how often idle buckets are dropped.
const sweepEvery = 256

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// keyedLimiter holds one token bucket per key.
type keyedLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	clock    service.Clock
	requests int
}

// New returns a limiter refilling one token per interval up to burst tokens.
// A disabled configuration yields a limiter that always allows.
func New(cfg *config.Config, clock service.Clock) service.RateLimiter {
	if !cfg.RateLimit.Enabled {
		return allowAll{}
	}

	return NewKeyed(cfg.RateLimit.Interval, cfg.RateLimit.Burst, clock)
}

// NewKeyed builds a per-key limiter directly.
func NewKeyed(interval time.Duration, burst int, clock service.Clock) service.RateLimiter {
	return &keyedLimiter{
		buckets: make(map[string]*bucket),
		limit:   rate.Every(interval),
		burst:   burst,
		idleTTL: interval * time.Duration(burst),
		clock:   clock,
	}
}

func (l *keyedLimiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.requests++
	if l.requests%sweepEvery == 0 {
		l.sweep(now)
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	return b.limiter.AllowN(now, 1)
}

// sweep drops buckets that have refilled completely; recreating them is equivalent.
func (l *keyedLimiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) > l.idleTTL {
			delete(l.buckets, key)
		}
	}
}

type allowAll struct{}

func (allowAll) Allow(string) bool { return true }
