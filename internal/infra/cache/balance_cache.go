// Package cache provides the Redis-backed balance cache.
package cache

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"loyalty/config"
	"loyalty/internal/domain/lifecycle"
	"loyalty/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const balanceKeyPrefix = "loyalty:balance:"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBalanceCache returns the Redis cache, or a no-op cache when Redis is not configured.
func NewBalanceCache(params Params) service.BalanceCache {
	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		params.Logger.Info("Redis not configured, balance cache disabled")

		return NewNoopBalanceCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:        params.Config.Redis.Addr,
		Username:    params.Config.Redis.Username,
		Password:    params.Config.Redis.Password,
		DB:          params.Config.Redis.DB,
		MaxRetries:  3,
		DialTimeout: 5 * time.Second,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The ledger works without the cache, so an unreachable Redis is only logged.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisBalanceCache(client, params.Config.Redis.BalanceTTL)
}

type redisBalanceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisBalanceCache wraps an existing client.
func NewRedisBalanceCache(client *redis.Client, ttl time.Duration) service.BalanceCache {
	return &redisBalanceCache{client: client, ttl: ttl}
}

func balanceKey(userID int64) string {
	return balanceKeyPrefix + strconv.FormatInt(userID, 10)
}

func (c *redisBalanceCache) Get(ctx context.Context, userID int64) (int64, bool, error) {
	points, err := c.client.Get(ctx, balanceKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "failed to read cached balance")
	}

	return points, true, nil
}

func (c *redisBalanceCache) Set(ctx context.Context, userID int64, points int64) error {
	if err := c.client.Set(ctx, balanceKey(userID), points, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to cache balance")
	}

	return nil
}

func (c *redisBalanceCache) Invalidate(ctx context.Context, userIDs ...int64) error {
	if len(userIDs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, balanceKey(id))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate cached balances")
	}

	return nil
}

type noopBalanceCache struct{}

// NewNoopBalanceCache returns a cache that never holds anything.
func NewNoopBalanceCache() service.BalanceCache {
	return noopBalanceCache{}
}

func (noopBalanceCache) Get(context.Context, int64) (int64, bool, error) { return 0, false, nil }

func (noopBalanceCache) Set(context.Context, int64, int64) error { return nil }

func (noopBalanceCache) Invalidate(context.Context, ...int64) error { return nil }
