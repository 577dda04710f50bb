package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"nba-shotviz-service/internal/domain"
)

// keyPrefix namespaces shot-chart entries within a shared Redis instance.
const keyPrefix = "shotviz:"

// RedisCache stores shot charts as JSON values in Redis with a TTL. It is
// the shared-cache alternative to the in-process store when several
// replicas serve the same upstream quota.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis at addr and verifies the connection.
func NewRedisCache(ctx context.Context, addr string, db int, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: redis ping failed: %w", err)
	}
	return &RedisCache{client: client, ttl: ttl}, nil
}

// Get fetches and decodes the chart stored under key.
func (c *RedisCache) Get(ctx context.Context, key string) (domain.ShotChart, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ShotChart{}, false, nil
	}
	if err != nil {
		return domain.ShotChart{}, false, err
	}

	var chart domain.ShotChart
	if err := json.Unmarshal(raw, &chart); err != nil {
		return domain.ShotChart{}, false, fmt.Errorf("cache: decode %q: %w", key, err)
	}
	return chart, true, nil
}

// Set encodes and stores the chart under key with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, key string, chart domain.ShotChart) error {
	raw, err := json.Marshal(chart)
	if err != nil {
		return fmt.Errorf("cache: encode %q: %w", key, err)
	}
	return c.client.Set(ctx, keyPrefix+key, raw, c.ttl).Err()
}

// Invalidate removes one entry.
func (c *RedisCache) Invalidate(ctx context.Context, key string) error {
	return c.client.Del(ctx, keyPrefix+key).Err()
}

// InvalidateAll removes every shot-chart entry under the key prefix.
func (c *RedisCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Close releases the underlying connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
