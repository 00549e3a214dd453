package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultCatalogTTL bounds how stale a cached public listing can get; writes
// invalidate eagerly, the TTL is the backstop.
const DefaultCatalogTTL = 5 * time.Minute

const catalogKeyPrefix = "catalogo:"

// CatalogCache stores serialized public catalog listings in Redis.
// Key format: catalogo:<categoria_id>:<pagina>:<limite>
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	if ttl <= 0 {
		ttl = DefaultCatalogTTL
	}
	return &CatalogCache{client: client, ttl: ttl}
}

// Get returns the cached payload for key, or ok=false on a miss.
func (c *CatalogCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, catalogKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("catalog cache get: %w", err)
	}
	return payload, true, nil
}

// Set stores a listing payload under key (expires after the configured TTL).
func (c *CatalogCache) Set(ctx context.Context, key string, payload []byte) error {
	return c.client.Set(ctx, catalogKeyPrefix+key, payload, c.ttl).Err()
}

// Invalidate drops every cached listing. Uses SCAN rather than KEYS so a
// large keyspace does not block the server.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, catalogKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("catalog cache scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("catalog cache invalidate: %w", err)
	}
	return nil
}
