package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Backend is the byte-level key/value store behind TemplateCache
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// RedisBackend implements Backend and the rate limiter counter on a redis client
type RedisBackend struct {
	client *redis.Client
	log    *zap.Logger
}

// NewRedisClient parses a redis:// URL and verifies the connection
func NewRedisClient(ctx context.Context, url string, log *zap.Logger) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		log.Error("Failed to ping Redis", zap.Error(err))
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	log.Info("Redis connection established successfully", zap.String("addr", opt.Addr))
	return client, nil
}

// NewRedisBackend wraps an existing redis client
func NewRedisBackend(client *redis.Client, log *zap.Logger) *RedisBackend {
	return &RedisBackend{client: client, log: log}
}

func (b *RedisBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := b.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, true, nil
}

func (b *RedisBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := b.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (b *RedisBackend) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := b.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Hit increments the fixed-window counter for key and returns the new count and when the window resets.
// The first hit of a window sets the expiry.
func (b *RedisBackend) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	count, err := b.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis incr %s: %w", key, err)
	}

	if count == 1 {
		if err := b.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, time.Time{}, fmt.Errorf("redis expire %s: %w", key, err)
		}
		return count, time.Now().Add(window), nil
	}

	ttl, err := b.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis ttl %s: %w", key, err)
	}
	if ttl < 0 {
		// the expiry was lost between INCR and EXPIRE; start a new window
		if err := b.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, time.Time{}, fmt.Errorf("redis expire %s: %w", key, err)
		}
		ttl = window
	}
	return count, time.Now().Add(ttl), nil
}

// Ping checks the redis connection
func (b *RedisBackend) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}
