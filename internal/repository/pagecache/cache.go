// Package pagecache caches serialized search responses in Redis for a short
// TTL. It sits entirely in the HTTP adapter: the search core stays pure, and
// every cache failure degrades to a live search.
package pagecache

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "omnisearch:page:"

// commands is the slice of the Redis API the cache uses.
type commands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// Cache is a read-through response cache.
type Cache struct {
	rdb    commands
	ttl    time.Duration
	logger *zap.Logger
}

// New parses redisURL, verifies connectivity, and returns a cache.
func New(ctx context.Context, redisURL string, ttl time.Duration, logger *zap.Logger) (*Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return NewWithClient(client, ttl, logger), nil
}

// NewWithClient wraps an existing Redis client.
func NewWithClient(rdb commands, ttl time.Duration, logger *zap.Logger) *Cache {
	return &Cache{rdb: rdb, ttl: ttl, logger: logger}
}

// Get returns the cached response body for key, if present.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	body, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("page cache get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return body, true
}

// Set stores the response body under key for the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, body []byte) {
	if err := c.rdb.Set(ctx, key, body, c.ttl).Err(); err != nil {
		c.logger.Warn("page cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Ping checks Redis connectivity for health reporting.
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Key builds a deterministic cache key from the request path and its query
// parameters. Parameters are flattened and sorted so equivalent requests
// share one entry. Values keep their casing: the cached body echoes the
// query and filter values verbatim, so differently cased requests must not
// share an entry even though matching itself is case-insensitive.
func Key(path string, params map[string][]string) string {
	parts := make([]string, 0, len(params))
	for name, values := range params {
		for _, v := range values {
			parts = append(parts, name+"="+v)
		}
	}
	sort.Strings(parts)
	return keyPrefix + path + "?" + strings.Join(parts, "&")
}
