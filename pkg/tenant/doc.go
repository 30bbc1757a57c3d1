// Package tenant resolves tenant slugs from request paths into
// validated tenant records, with a time-bound cache in front of the
// tenant registry.
//
// The package is built around three pieces:
//
//  1. Registry — the system of record, implemented against the
//     platform store (see the pgstore subpackage).
//  2. Loader — a process-wide cache over the registry. Entries live for
//     a TTL (default 5 minutes) and are evicted lazily on the next
//     lookup after expiry; there is no background sweeper. Negative
//     results are never cached, so a freshly provisioned tenant is
//     usable immediately. Invalidate removes an entry synchronously.
//  3. Resolver — extracts the slug from the /api/{slug}/... path shape,
//     normalizes it, and enforces that only active tenants resolve.
//
// Slug grammar: canonical slugs are lowercase, start with an
// alphanumeric, allow hyphens, max 63 chars. NormalizeSlug maps
// underscores to hyphens before every comparison and lookup; it is the
// single normalization rule for the whole system.
//
//	loader := tenant.NewLoader(pgstore.New(pool))
//	resolver := tenant.NewResolver(loader)
//
//	rec, err := resolver.Resolve(ctx, r.URL.Path)
package tenant
