package tenant

import "errors"

var (
	// ErrTenantNotFound is returned when no registry record exists for
	// a slug.
	ErrTenantNotFound = errors.New("tenant: tenant not found")

	// ErrTenantInactive is returned when the resolved tenant's status
	// is anything other than active.
	ErrTenantInactive = errors.New("tenant: tenant is not active")

	// ErrSlugMissing is returned when the request path does not carry a
	// tenant slug in the expected position.
	ErrSlugMissing = errors.New("tenant: no tenant slug in request path")

	// ErrNotTenantRoute is returned when the path segment is a reserved
	// non-tenant route such as health or auth.
	ErrNotTenantRoute = errors.New("tenant: not a tenant route")

	// ErrInvalidSlug is returned when a slug does not match the
	// canonical slug grammar.
	ErrInvalidSlug = errors.New("tenant: invalid tenant slug")

	// ErrLookupTimeout is returned when the registry lookup exceeds its
	// deadline. It is an infrastructure failure and is never collapsed
	// into ErrTenantNotFound.
	ErrLookupTimeout = errors.New("tenant: registry lookup timed out")

	// ErrNoTenantInContext is returned when a handler requires a tenant
	// but none was stored in the request context.
	ErrNoTenantInContext = errors.New("tenant: no tenant in context")
)
