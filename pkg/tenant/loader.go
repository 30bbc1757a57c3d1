package tenant

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

const (
	// DefaultLookupTimeout bounds a single registry read so one slow
	// lookup cannot stall unrelated requests indefinitely.
	DefaultLookupTimeout = 3 * time.Second

	// retryBackoff is the pause before the single internal retry of a
	// failed registry read.
	retryBackoff = 100 * time.Millisecond
)

// Loader resolves tenant slugs through a time-bound cache in front of
// the registry. It owns no locks of its own: all synchronization lives
// inside the Cache implementation, so registry I/O is never serialized
// behind a shared lock. Concurrent misses for the same slug may each
// hit the registry; the cache write is last-writer-wins.
type Loader struct {
	registry      Registry
	cache         Cache
	cacheTTL      time.Duration
	lookupTimeout time.Duration
	log           *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithCache replaces the default in-memory cache.
func WithCache(c Cache) LoaderOption {
	return func(l *Loader) {
		if c != nil {
			l.cache = c
		}
	}
}

// WithCacheTTL overrides how long resolved tenants stay cached.
func WithCacheTTL(ttl time.Duration) LoaderOption {
	return func(l *Loader) {
		if ttl > 0 {
			l.cacheTTL = ttl
		}
	}
}

// WithLookupTimeout overrides the per-attempt registry read deadline.
func WithLookupTimeout(d time.Duration) LoaderOption {
	return func(l *Loader) {
		if d > 0 {
			l.lookupTimeout = d
		}
	}
}

// WithLogger sets the logger used for cache write failures.
func WithLogger(log *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// NewLoader creates a Loader over the given registry. Construct one at
// process start and inject it into request handling; the cache it owns
// is the process-wide tenant table.
func NewLoader(registry Registry, opts ...LoaderOption) *Loader {
	l := &Loader{
		registry:      registry,
		cache:         NewMemoryCache(),
		cacheTTL:      DefaultCacheTTL,
		lookupTimeout: DefaultLookupTimeout,
		log:           slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Resolve returns the tenant record for a canonical slug, serving from
// cache when fresh and falling back to the registry otherwise. Negative
// results are never cached, so a newly provisioned tenant becomes
// usable immediately. Infrastructure failures are retried once and then
// surfaced as-is — never downgraded to ErrTenantNotFound.
func (l *Loader) Resolve(ctx context.Context, slug string) (*Tenant, error) {
	if t, ok := l.cache.Get(ctx, slug); ok {
		return t, nil
	}

	t, err := l.lookup(ctx, slug)
	if err != nil {
		if isInfraErr(err) {
			select {
			case <-ctx.Done():
				return nil, interruptionErr(ctx)
			case <-time.After(retryBackoff):
			}
			t, err = l.lookup(ctx, slug)
		}
		if err != nil {
			return nil, err
		}
	}

	if cacheErr := l.cache.Set(ctx, slug, t, l.cacheTTL); cacheErr != nil {
		// Resolution succeeded; a cache write failure only costs the
		// next request a registry read.
		l.log.WarnContext(ctx, "tenant cache write failed",
			slog.String("tenant_slug", slug), slog.Any("error", cacheErr))
	}
	return t, nil
}

// Invalidate synchronously removes a slug from the cache so the next
// request re-reads the registry. Admin flows call this after tenant
// status changes.
func (l *Loader) Invalidate(ctx context.Context, slug string) error {
	return l.cache.Delete(ctx, NormalizeSlug(slug))
}

// lookup performs one time-bound registry read. The deadline is the
// tighter of the caller's own deadline and the configured lookup
// timeout.
func (l *Loader) lookup(parent context.Context, slug string) (*Tenant, error) {
	ctx, cancel := context.WithTimeout(parent, l.lookupTimeout)
	defer cancel()

	t, err := l.registry.Lookup(ctx, slug)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			// A caller that walked away is not a slow registry; only
			// deadline pressure maps to the timeout error.
			if errors.Is(parent.Err(), context.Canceled) {
				return nil, parent.Err()
			}
			return nil, ErrLookupTimeout
		}
		return nil, err
	}
	return t, nil
}

// interruptionErr maps an interrupted wait to either the caller's own
// cancellation or the lookup timeout.
func interruptionErr(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return ctx.Err()
	}
	return ErrLookupTimeout
}

// isInfraErr reports whether err is an infrastructure failure worth a
// retry, as opposed to a definitive answer like ErrTenantNotFound.
func isInfraErr(err error) bool {
	return err != nil && !errors.Is(err, ErrTenantNotFound)
}
