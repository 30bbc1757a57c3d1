package tenant

import (
	"context"
	"strings"
)

// reservedSegments are first path segments under the API prefix that
// are never tenant slugs; requests for them bypass tenant resolution
// entirely.
var reservedSegments = map[string]struct{}{
	"health": {},
	"auth":   {},
	"docs":   {},
}

// Reserved reports whether a path segment is a reserved non-tenant
// route.
func Reserved(segment string) bool {
	_, ok := reservedSegments[segment]
	return ok
}

// DefaultRoutePrefix is the fixed first path segment of every API
// route; the tenant slug is the segment immediately after it.
const DefaultRoutePrefix = "api"

// SlugFromPath extracts the raw tenant slug from a request path of the
// shape /<prefix>/{slug}/... . It returns ErrSlugMissing when the path
// does not match that shape and ErrNotTenantRoute when the slug
// position holds a reserved segment.
func SlugFromPath(path, prefix string) (string, error) {
	if prefix == "" {
		prefix = DefaultRoutePrefix
	}

	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "", ErrSlugMissing
	}

	parts := strings.Split(trimmed, "/")
	if parts[0] != prefix || len(parts) < 2 || parts[1] == "" {
		return "", ErrSlugMissing
	}

	if Reserved(parts[1]) {
		return "", ErrNotTenantRoute
	}
	return parts[1], nil
}

// Resolver turns an inbound request path into a validated, active
// tenant record. It is a pure pipeline over the Loader: extract slug,
// normalize, resolve, enforce the active-only invariant.
type Resolver struct {
	loader *Loader
	prefix string
}

// NewResolver creates a Resolver over the given loader using the
// default /api/{slug}/... route shape.
func NewResolver(loader *Loader) *Resolver {
	return &Resolver{loader: loader, prefix: DefaultRoutePrefix}
}

// NewResolverWithPrefix creates a Resolver for a custom routing prefix.
func NewResolverWithPrefix(loader *Loader, prefix string) *Resolver {
	return &Resolver{loader: loader, prefix: prefix}
}

// Resolve extracts and validates the tenant addressed by a request
// path. Only tenants with active status are returned; any other status
// yields ErrTenantInactive even though the registry lookup succeeded.
func (r *Resolver) Resolve(ctx context.Context, path string) (*Tenant, error) {
	raw, err := SlugFromPath(path, r.prefix)
	if err != nil {
		return nil, err
	}

	slug := NormalizeSlug(raw)
	if !ValidSlug(slug) {
		return nil, ErrInvalidSlug
	}

	t, err := r.loader.Resolve(ctx, slug)
	if err != nil {
		return nil, err
	}

	if !t.Active() {
		return nil, ErrTenantInactive
	}
	return t, nil
}
