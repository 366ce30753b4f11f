package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T) (*miniredis.Miniredis, *redisBalanceCache) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return server, NewRedisBalanceCache(client, time.Minute).(*redisBalanceCache)
}

func TestRedisBalanceCache_SetGetInvalidate(t *testing.T) {
	server, cache := newTestRedisCache(t)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, 7)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, 7, 360))
	require.NoError(t, cache.Set(ctx, 8, -5))

	points, ok, err := cache.Get(ctx, 7)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(360), points)
	assert.Equal(t, time.Minute, server.TTL("loyalty:balance:7"))

	require.NoError(t, cache.Invalidate(ctx, 7, 8))

	_, ok, err = cache.Get(ctx, 8)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisBalanceCache_Expires(t *testing.T) {
	server, cache := newTestRedisCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 1, 10))
	server.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisBalanceCache_ReportsConnectionErrors(t *testing.T) {
	server, cache := newTestRedisCache(t)
	server.Close()

	_, _, err := cache.Get(context.Background(), 1)
	assert.Error(t, err)
}

func TestNoopBalanceCache(t *testing.T) {
	cache := NewNoopBalanceCache()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 1, 10))
	_, ok, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, cache.Invalidate(ctx, 1))
}
