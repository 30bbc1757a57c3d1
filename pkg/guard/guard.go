package guard

import (
	"net/http"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/nordcrm/nordcrm/pkg/storage"
	"github.com/nordcrm/nordcrm/pkg/tenant"
	"github.com/nordcrm/nordcrm/pkg/token"
)

// Authorized is the per-request context produced by a successful
// authorization: verified caller identity, the resolved tenant record,
// and the tenant's storage handle. It is built fresh for every request
// and discarded when handling ends.
type Authorized struct {
	Claims *token.Claims
	Tenant *tenant.Tenant
	DB     *mongo.Database
}

// Guard authorizes tenant-scoped requests. It verifies the caller's
// token, resolves the tenant addressed by the request path, and rejects
// any mismatch between the two before a storage handle is ever handed
// out.
type Guard struct {
	codec    *token.Service
	resolver *tenant.Resolver
	router   *storage.Router
}

// New creates a Guard. All three collaborators are required.
func New(codec *token.Service, resolver *tenant.Resolver, router *storage.Router) *Guard {
	return &Guard{codec: codec, resolver: resolver, router: router}
}

// Authorize runs the full authorization pipeline for a request. The
// pipeline is pure and idempotent: it ends in either an authorized
// context or exactly one error, and it is fail-closed — any ambiguity
// (missing claim, unparsable slug, lookup failure) denies access.
func (g *Guard) Authorize(r *http.Request) (*Authorized, error) {
	raw, err := token.BearerFromRequest(r)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	claims, err := g.codec.Verify(raw)
	if err != nil {
		return nil, err
	}

	// A well-signed token without a tenant binding is syntactically
	// valid but unusable for tenant-scoped routes.
	if claims.TenantSlug == "" {
		return nil, ErrMissingTenantClaim
	}

	rec, err := g.resolver.Resolve(r.Context(), r.URL.Path)
	if err != nil {
		return nil, err
	}

	// The isolation invariant: the token's tenant must be the resolved
	// tenant, compared in canonical slug form on both sides. This is
	// the sole check preventing cross-tenant data access.
	if tenant.NormalizeSlug(claims.TenantSlug) != tenant.NormalizeSlug(rec.Slug) {
		return nil, ErrTenantAccessDenied
	}

	db, err := g.router.HandleFor(rec)
	if err != nil {
		return nil, err
	}

	return &Authorized{Claims: claims, Tenant: rec, DB: db}, nil
}
