// Package cache provides a Redis-backed TTL cache for tour search results.
// It is a response cache, not a store of record: every operation degrades to
// a cache miss when Redis is unavailable.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tour-search/tour-search-and-booking-system/internal/domain"
)

// Config holds the cache configuration options.
type Config struct {
	// URL is the Redis connection URL (e.g., "redis://localhost:6379/0")
	URL string

	// TTL is how long a cached result list stays valid
	TTL time.Duration
}

// ResultCache caches tour lists keyed by the query payload that produced
// them.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a ResultCache and verifies the connection.
func New(ctx context.Context, cfg Config) (*ResultCache, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &ResultCache{client: client, ttl: cfg.TTL}, nil
}

// Get returns the cached tour list for the payload, or (nil, false) on a
// miss. Redis errors and corrupt entries count as misses.
func (c *ResultCache) Get(ctx context.Context, payload domain.QueryPayload) ([]domain.Tour, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, payload.CacheKey()).Bytes()
	if err != nil {
		return nil, false
	}

	var tours []domain.Tour
	if err := json.Unmarshal(raw, &tours); err != nil {
		return nil, false
	}
	return tours, true
}

// Set stores the tour list for the payload with the configured TTL.
func (c *ResultCache) Set(ctx context.Context, payload domain.QueryPayload, tours []domain.Tour) error {
	if c == nil || c.client == nil {
		return errors.New("result cache not available")
	}

	data, err := json.Marshal(tours)
	if err != nil {
		return fmt.Errorf("marshal cached tours: %w", err)
	}
	return c.client.Set(ctx, payload.CacheKey(), data, c.ttl).Err()
}

// Invalidate drops the cached entry for the payload.
func (c *ResultCache) Invalidate(ctx context.Context, payload domain.QueryPayload) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, payload.CacheKey()).Err()
}

// Close releases the underlying Redis connection.
func (c *ResultCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
