package guard

import "context"

type contextKey struct{}

// WithAuthorized stores the authorized context for downstream handlers.
func WithAuthorized(ctx context.Context, a *Authorized) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// FromContext retrieves the authorized context.
func FromContext(ctx context.Context) (*Authorized, bool) {
	a, ok := ctx.Value(contextKey{}).(*Authorized)
	return a, ok
}

// MustFromContext retrieves the authorized context and panics if absent.
// Use only in handlers mounted behind Middleware.
func MustFromContext(ctx context.Context) *Authorized {
	a, ok := FromContext(ctx)
	if !ok || a == nil {
		panic("guard: no authorized context in request")
	}
	return a
}
