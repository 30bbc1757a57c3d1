package tenant

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Status describes the lifecycle state of a tenant. Only active
// tenants may ever be routed to.
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusInactive  Status = "inactive"
)

// Tenant is the registry record for an isolated customer organization.
// The slug is the globally unique identity key and appears as a URL
// path segment; StorageHandle names the tenant's logical database.
type Tenant struct {
	ID            uuid.UUID    `json:"id"`
	Slug          string       `json:"slug"`
	Name          string       `json:"name"`
	StorageHandle string       `json:"storage_handle"`
	Status        Status       `json:"status"`
	Subscription  Subscription `json:"subscription"`
	CreatedAt     time.Time    `json:"created_at"`
}

// Subscription carries the billing plan attached to a tenant. Read-only
// from this package's perspective; billing flows own mutation.
type Subscription struct {
	Plan      string     `json:"plan"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Active reports whether the tenant may be routed to.
func (t *Tenant) Active() bool {
	return t.Status == StatusActive
}

// Registry is the system of record for tenant existence and status.
// Implementations perform a single blocking read against the platform
// store and do no caching or status filtering: they return whatever
// exists, including suspended tenants. The active-only invariant is
// enforced by the Resolver.
type Registry interface {
	// Lookup retrieves a tenant by its canonical slug. Returns
	// ErrTenantNotFound if no record exists.
	Lookup(ctx context.Context, slug string) (*Tenant, error)
}

// RegistryFunc adapts a function to the Registry interface.
type RegistryFunc func(ctx context.Context, slug string) (*Tenant, error)

func (f RegistryFunc) Lookup(ctx context.Context, slug string) (*Tenant, error) {
	return f(ctx, slug)
}
