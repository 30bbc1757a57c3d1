package token

import (
	"net/http"
	"strings"
)

// BearerFromRequest extracts a token from the Authorization header.
// The header must be literally "Bearer <token>" per RFC 6750; anything
// else, including a missing header, yields ErrNoBearerToken.
func BearerFromRequest(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrNoBearerToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", ErrNoBearerToken
	}
	return parts[1], nil
}
