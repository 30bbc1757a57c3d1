package tenant

import (
	"context"
	"log/slog"
)

// contextKey is a private type to prevent collisions with other
// packages' context values.
type contextKey struct{}

// WithTenant stores a validated tenant in the context.
func WithTenant(ctx context.Context, t *Tenant) context.Context {
	return context.WithValue(ctx, contextKey{}, t)
}

// FromContext retrieves the tenant from the context.
func FromContext(ctx context.Context) (*Tenant, bool) {
	t, ok := ctx.Value(contextKey{}).(*Tenant)
	return t, ok
}

// MustFromContext retrieves the tenant from the context and panics if
// none is present. Use only in handlers mounted behind the guard.
func MustFromContext(ctx context.Context) *Tenant {
	t, ok := FromContext(ctx)
	if !ok || t == nil {
		panic("tenant: no tenant in context")
	}
	return t
}

// LoggerExtractor feeds the tenant slug into log records for requests
// carrying a resolved tenant.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if t, ok := FromContext(ctx); ok && t != nil {
			return slog.String("tenant_slug", t.Slug), true
		}
		return slog.Attr{}, false
	}
}
