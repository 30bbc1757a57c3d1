package token

import "errors"

var (
	// ErrMissingSigningKey is returned when the service is created
	// without a signing key.
	ErrMissingSigningKey = errors.New("token: missing signing key")

	// ErrInvalidToken is returned when a token fails signature
	// verification or is structurally malformed.
	ErrInvalidToken = errors.New("token: invalid token")

	// ErrExpiredToken is returned when a token is past its expiry.
	ErrExpiredToken = errors.New("token: token is expired")

	// ErrNoBearerToken is returned when a request carries no
	// well-formed "Authorization: Bearer <token>" header.
	ErrNoBearerToken = errors.New("token: no bearer token in request")
)
