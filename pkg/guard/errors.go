package guard

import "errors"

var (
	// ErrUnauthenticated is returned when a request carries no
	// well-formed bearer credentials.
	ErrUnauthenticated = errors.New("guard: missing or malformed credentials")

	// ErrMissingTenantClaim is returned when a verified token carries
	// no tenant binding and therefore cannot be used on tenant-scoped
	// routes.
	ErrMissingTenantClaim = errors.New("guard: token carries no tenant claim")

	// ErrTenantAccessDenied is returned when the token's tenant does
	// not match the tenant addressed by the request path.
	ErrTenantAccessDenied = errors.New("guard: token tenant does not match requested tenant")

	// ErrNoAuthorizedContext is returned when a handler expects an
	// authorized context but none is present.
	ErrNoAuthorizedContext = errors.New("guard: no authorized context in request")
)
