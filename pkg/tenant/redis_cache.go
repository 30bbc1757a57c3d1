package tenant

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisCache shares the tenant cache across process replicas. Entries
// expire server-side via the key TTL, which gives the same lazy-expiry
// semantics as the in-memory cache.
type redisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache creates a Redis-backed tenant cache. Keys are stored
// under "<prefix><slug>"; prefix defaults to "tenant:".
func NewRedisCache(client *redis.Client, prefix string) Cache {
	if prefix == "" {
		prefix = "tenant:"
	}
	return &redisCache{client: client, prefix: prefix}
}

func (c *redisCache) Get(ctx context.Context, slug string) (*Tenant, bool) {
	payload, err := c.client.Get(ctx, c.prefix+slug).Bytes()
	if err != nil {
		// Misses and transport failures both fall through to the
		// registry; the cache is an optimization, not a source of
		// truth.
		return nil, false
	}

	var t Tenant
	if err := json.Unmarshal(payload, &t); err != nil {
		// A corrupt entry must not poison resolution. Drop it.
		_ = c.client.Del(ctx, c.prefix+slug).Err()
		return nil, false
	}
	return &t, true
}

func (c *redisCache) Set(ctx context.Context, slug string, t *Tenant, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	payload, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.prefix+slug, payload, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, slug string) error {
	err := c.client.Del(ctx, c.prefix+slug).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}
