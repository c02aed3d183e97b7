// Package ratelimit counts failed authentication attempts.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dtroode/garden-server/internal/model"
)

const keyPrefix = "garden:attempts:"

// redisAPI is the subset of Redis used by the limiter.
type redisAPI interface {
	Get(ctx context.Context, key string) (string, error)
	IncrWithExpire(ctx context.Context, key string, expiration time.Duration) (int64, error)
	Del(ctx context.Context, key string) error
}

type redisClientWrapper struct{ c *redis.Client }

func (w redisClientWrapper) Get(ctx context.Context, key string) (string, error) {
	return w.c.Get(ctx, key).Result()
}

// IncrWithExpire increments a key and refreshes its expiration.
func (w redisClientWrapper) IncrWithExpire(ctx context.Context, key string, expiration time.Duration) (int64, error) {
	pipe := w.c.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, expiration)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (w redisClientWrapper) Del(ctx context.Context, key string) error {
	return w.c.Del(ctx, key).Err()
}

var _ model.AttemptLimiter = (*Redis)(nil)

// Redis is a fixed-window failure counter stored in Redis.
type Redis struct {
	api         redisAPI
	maxAttempts int64
	window      time.Duration
}

// NewRedis connects to Redis and verifies the connection.
func NewRedis(ctx context.Context, opts *redis.Options, maxAttempts int64, window time.Duration) (*Redis, error) {
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisWithAPI(redisClientWrapper{c: client}, maxAttempts, window), nil
}

// NewRedisWithAPI allows injecting a mockable API (used in tests).
func NewRedisWithAPI(api redisAPI, maxAttempts int64, window time.Duration) *Redis {
	return &Redis{api: api, maxAttempts: maxAttempts, window: window}
}

// Allow reports whether fewer than maxAttempts failures were recorded in the window.
func (r *Redis) Allow(ctx context.Context, key string) (bool, error) {
	val, err := r.api.Get(ctx, keyPrefix+key)
	if errors.Is(err, redis.Nil) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read attempts: %w", err)
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, fmt.Errorf("failed to parse attempts: %w", err)
	}
	return count < r.maxAttempts, nil
}

// Fail records a failure and restarts the window.
func (r *Redis) Fail(ctx context.Context, key string) error {
	if _, err := r.api.IncrWithExpire(ctx, keyPrefix+key, r.window); err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}
	return nil
}

// Reset forgets the failures under key.
func (r *Redis) Reset(ctx context.Context, key string) error {
	if err := r.api.Del(ctx, keyPrefix+key); err != nil {
		return fmt.Errorf("failed to reset attempts: %w", err)
	}
	return nil
}

// Noop never limits.
type Noop struct{}

var _ model.AttemptLimiter = Noop{}

func (Noop) Allow(context.Context, string) (bool, error) { return true, nil }
func (Noop) Fail(context.Context, string) error          { return nil }
func (Noop) Reset(context.Context, string) error         { return nil }
