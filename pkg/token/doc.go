// Package token issues and verifies tenant-bound session tokens.
//
// Tokens are HS256-signed JWTs carrying the caller's identity, role,
// and tenant binding. They are stateless by design: verification is a
// pure local computation with no store lookups, which keeps the request
// hot path free of I/O. The flip side is that there is no server-side
// revocation; logout is client-side and a compromised token stays valid
// until its expiry. Keep TTLs short enough for your threat model.
//
//	svc, _ := token.New([]byte("at-least-32-bytes-of-secret......"))
//	tok, _ := svc.Issue(token.Claims{
//	    UserID:     userID,
//	    Email:      "owner@acme.test",
//	    TenantSlug: "acme",
//	    Role:       "admin",
//	}, 0) // 0 → default 7 days
//
//	claims, err := svc.Verify(tok)
package token
