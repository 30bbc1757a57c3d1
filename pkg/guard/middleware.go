package guard

import (
	"errors"
	"net/http"

	"github.com/nordcrm/nordcrm/core"
	"github.com/nordcrm/nordcrm/pkg/tenant"
	"github.com/nordcrm/nordcrm/pkg/token"
)

// ErrorHandler renders an authorization failure to the client.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Middleware wraps tenant-scoped routes with the full authorization
// pipeline. On success the authorized context, tenant record, and
// verified claims are all placed in the request context; on failure the
// error handler renders the mapped HTTP error and the chain stops.
func Middleware(g *Guard, errorHandler ErrorHandler) func(http.Handler) http.Handler {
	if errorHandler == nil {
		errorHandler = DefaultErrorHandler
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorized, err := g.Authorize(r)
			if err != nil {
				errorHandler(w, r, err)
				return
			}

			ctx := WithAuthorized(r.Context(), authorized)
			ctx = tenant.WithTenant(ctx, authorized.Tenant)
			ctx = token.WithClaims(ctx, authorized.Claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DefaultErrorHandler writes the JSON error envelope for an
// authorization failure.
func DefaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	core.Error(w, HTTPError(err))
}

// HTTPError maps authorization pipeline errors to the stable wire
// taxonomy. Unknown errors map to service_unavailable: at this stage
// only infrastructure can fail, and infrastructure failures must never
// masquerade as tenant-not-found.
func HTTPError(err error) core.HTTPError {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return core.NewHTTPError(http.StatusUnauthorized, "unauthenticated").
			WithDetail("missing or malformed Authorization header")
	case errors.Is(err, token.ErrExpiredToken):
		return core.NewHTTPError(http.StatusUnauthorized, "token_expired").
			WithDetail("session token has expired")
	case errors.Is(err, token.ErrInvalidToken):
		return core.NewHTTPError(http.StatusUnauthorized, "token_invalid").
			WithDetail("session token is invalid")
	case errors.Is(err, ErrMissingTenantClaim):
		return core.NewHTTPError(http.StatusForbidden, "missing_tenant_claim").
			WithDetail("token is not bound to a tenant")
	case errors.Is(err, ErrTenantAccessDenied):
		return core.NewHTTPError(http.StatusForbidden, "tenant_access_denied").
			WithDetail("token is not authorized for this tenant")
	case errors.Is(err, tenant.ErrSlugMissing):
		return core.NewHTTPError(http.StatusBadRequest, "tenant_slug_missing").
			WithDetail("request path carries no tenant slug")
	case errors.Is(err, tenant.ErrNotTenantRoute):
		return core.NewHTTPError(http.StatusBadRequest, "not_a_tenant_route").
			WithDetail("requested path is not a tenant route")
	case errors.Is(err, tenant.ErrInvalidSlug):
		return core.NewHTTPError(http.StatusBadRequest, "invalid_tenant_slug").
			WithDetail("tenant slug does not match the expected format")
	case errors.Is(err, tenant.ErrTenantNotFound):
		return core.NewHTTPError(http.StatusNotFound, "tenant_not_found").
			WithDetail("no tenant exists for this slug")
	case errors.Is(err, tenant.ErrTenantInactive):
		return core.NewHTTPError(http.StatusForbidden, "tenant_inactive").
			WithDetail("tenant is suspended or inactive")
	case errors.Is(err, tenant.ErrLookupTimeout):
		return core.NewHTTPError(http.StatusGatewayTimeout, "tenant_lookup_timeout").
			WithDetail("tenant registry did not respond in time")
	default:
		return core.NewHTTPError(http.StatusServiceUnavailable, "tenant_lookup_failed").
			WithDetail("tenant could not be resolved")
	}
}
