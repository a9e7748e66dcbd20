package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jonathan/opportunity-matcher/internal/config"
	"github.com/jonathan/opportunity-matcher/internal/types"
)

const cacheKeyPrefix = "recommendations:"

// RedisCache implements CacheStore on Redis. Entries are stored as JSON
// under one key per user, so the single-entry-per-user invariant holds by
// construction.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis-backed cache store and verifies the
// connection.
func NewRedisCache(ctx context.Context, cfg config.RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisCache{client: client}, nil
}

// NewRedisCacheFromClient wraps an existing client, used in tests.
func NewRedisCacheFromClient(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// GetEntry returns a user's cached recommendation set, or nil when absent.
func (c *RedisCache) GetEntry(ctx context.Context, userID uuid.UUID) (*types.CacheEntry, error) {
	raw, err := c.client.Get(ctx, cacheKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cache entry: %w", err)
	}

	var entry types.CacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode cache entry: %w", err)
	}
	return &entry, nil
}

// PutEntry overwrites a user's cache entry. Entries have no TTL; validity is
// the caller's concern.
func (c *RedisCache) PutEntry(ctx context.Context, entry *types.CacheEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(entry.UserID), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to put cache entry: %w", err)
	}
	return nil
}

// DeleteEntry removes a user's cache entry.
func (c *RedisCache) DeleteEntry(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, cacheKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

func cacheKey(userID uuid.UUID) string {
	return cacheKeyPrefix + userID.String()
}
