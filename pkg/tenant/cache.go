package tenant

import (
	"context"
	"sync"
	"time"
)

// DefaultCacheTTL bounds how stale a cached tenant record may be before
// the registry is consulted again.
const DefaultCacheTTL = 5 * time.Minute

// Cache stores validated tenant records keyed by canonical slug. The
// cache is process-wide shared mutable state: implementations must be
// safe for concurrent use and must never hold internal locks across
// I/O.
type Cache interface {
	// Get retrieves a tenant by slug. Expired entries are treated as
	// absent.
	Get(ctx context.Context, slug string) (*Tenant, bool)

	// Set stores a tenant with the given TTL.
	Set(ctx context.Context, slug string, t *Tenant, ttl time.Duration) error

	// Delete removes a tenant synchronously, so the next lookup
	// re-reads from the registry.
	Delete(ctx context.Context, slug string) error
}

type memoryEntry struct {
	tenant    *Tenant
	expiresAt time.Time
}

// memoryCache is the default in-process cache. Expired entries are
// evicted lazily on the next Get; there is no background sweeper. The
// lock covers only the in-memory table mutation.
type memoryCache struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
}

// NewMemoryCache creates an in-process tenant cache with lazy expiry.
func NewMemoryCache() Cache {
	return &memoryCache{items: make(map[string]memoryEntry)}
}

func (c *memoryCache) Get(ctx context.Context, slug string) (*Tenant, bool) {
	c.mu.RLock()
	entry, ok := c.items[slug]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have
		// refreshed the entry since we released the read lock.
		if cur, ok := c.items[slug]; ok && time.Now().After(cur.expiresAt) {
			delete(c.items, slug)
		}
		c.mu.Unlock()
		return nil, false
	}

	return entry.tenant, true
}

func (c *memoryCache) Set(ctx context.Context, slug string, t *Tenant, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	c.mu.Lock()
	c.items[slug] = memoryEntry{tenant: t, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, slug string) error {
	c.mu.Lock()
	delete(c.items, slug)
	c.mu.Unlock()
	return nil
}

// NoOpCache disables caching; every resolution hits the registry.
// Useful in tests and for deployments that front the registry with an
// external cache.
type NoOpCache struct{}

func (NoOpCache) Get(ctx context.Context, slug string) (*Tenant, bool) { return nil, false }

func (NoOpCache) Set(ctx context.Context, slug string, t *Tenant, ttl time.Duration) error {
	return nil
}

func (NoOpCache) Delete(ctx context.Context, slug string) error { return nil }
