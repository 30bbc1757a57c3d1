package pgstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nordcrm/nordcrm/pkg/tenant"
)

// Store reads tenant records from the platform-level tenants table.
// It implements tenant.Registry with a single blocking query per
// lookup and performs no caching or status filtering of its own.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a registry store over the given connection pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

const lookupQuery = `
SELECT id, slug, name, storage_handle, status, plan, subscription_expires_at, created_at
FROM tenants
WHERE slug = $1`

// Lookup fetches the tenant record for a canonical slug. Returns
// tenant.ErrTenantNotFound when no row exists; any other failure is
// surfaced as-is so the caller can distinguish infrastructure errors.
func (s *Store) Lookup(ctx context.Context, slug string) (*tenant.Tenant, error) {
	var t tenant.Tenant
	err := s.pool.QueryRow(ctx, lookupQuery, slug).Scan(
		&t.ID,
		&t.Slug,
		&t.Name,
		&t.StorageHandle,
		&t.Status,
		&t.Subscription.Plan,
		&t.Subscription.ExpiresAt,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tenant.ErrTenantNotFound
		}
		return nil, err
	}
	return &t, nil
}
