package ratelimit

import (
	"testing"
	"time"

	"loyalty/config"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestKeyedLimiter_OnePerInterval(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	limiter := NewKeyed(time.Minute, 1, clock)

	assert.True(t, limiter.Allow("alice001"))
	assert.False(t, limiter.Allow("alice001"))
	assert.True(t, limiter.Allow("bob00001"), "keys are independent")

	clock.Advance(30 * time.Second)
	assert.False(t, limiter.Allow("alice001"))

	clock.Advance(31 * time.Second)
	assert.True(t, limiter.Allow("alice001"))
}

func TestKeyedLimiter_Burst(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	limiter := NewKeyed(time.Second, 3, clock)

	for range 3 {
		assert.True(t, limiter.Allow("alice001"))
	}
	assert.False(t, limiter.Allow("alice001"))
}

func TestKeyedLimiter_SweepsIdleBuckets(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	limiter := NewKeyed(time.Second, 1, clock).(*keyedLimiter)

	limiter.Allow("idle")
	clock.Advance(time.Minute)
	for range sweepEvery {
		limiter.Allow("busy")
	}

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.NotContains(t, limiter.buckets, "idle")
	assert.Contains(t, limiter.buckets, "busy")
}

func TestNew_Disabled(t *testing.T) {
	limiter := New(&config.Config{}, &fakeClock{})

	for range 5 {
		assert.True(t, limiter.Allow("alice001"))
	}
}
