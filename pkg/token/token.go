package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL is the token lifetime used when Issue is called with a
// zero TTL and no override is configured.
const DefaultTTL = 7 * 24 * time.Hour

// signingMethod is pinned to HS256. Verification rejects any other
// algorithm to prevent algorithm confusion attacks.
var signingMethod = jwt.SigningMethodHS256

// Claims is the payload of a tenant-bound session token. The token is
// self-contained: verification never consults a store, so a token stays
// valid until its natural expiry.
type Claims struct {
	UserID     uuid.UUID `json:"user_id"`
	Email      string    `json:"email"`
	TenantID   uuid.UUID `json:"tenant_id"`
	TenantSlug string    `json:"tenant_slug,omitempty"`
	Role       string    `json:"role"`
	jwt.RegisteredClaims
}

// Config holds token service settings loaded from the environment.
type Config struct {
	SigningKey string        `env:"JWT_SIGNING_KEY,required"` // SigningKey is the symmetric HMAC key; at least 32 bytes recommended.
	Issuer     string        `env:"JWT_ISSUER" envDefault:"nordcrm"`
	TTL        time.Duration `env:"JWT_TTL" envDefault:"168h"` // TTL is the default token lifetime (7 days).
}

// Service issues and verifies signed tenant-bound tokens.
type Service struct {
	signingKey []byte
	issuer     string
	ttl        time.Duration
}

// New creates a token service with the given symmetric signing key.
func New(signingKey []byte) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}
	return &Service{
		signingKey: signingKey,
		issuer:     "nordcrm",
		ttl:        DefaultTTL,
	}, nil
}

// NewFromConfig creates a token service from environment configuration.
func NewFromConfig(cfg Config) (*Service, error) {
	svc, err := New([]byte(cfg.SigningKey))
	if err != nil {
		return nil, err
	}
	if cfg.Issuer != "" {
		svc.issuer = cfg.Issuer
	}
	if cfg.TTL > 0 {
		svc.ttl = cfg.TTL
	}
	return svc, nil
}

// TTL reports the default token lifetime applied when Issue is called
// with a zero ttl.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue signs the claims with the configured key, stamping issued-at
// and expiry. A zero ttl falls back to the configured default; a
// negative ttl issues an already-expired token. The operation is pure
// computation with no side effects.
func (s *Service) Issue(claims Claims, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = s.ttl
	}

	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.UserID.String(),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString(s.signingKey)
	if err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}
	return signed, nil
}

// Verify checks the signature and temporal claims of a token and
// returns its payload. It is fully local: no I/O, no store lookups.
// Returns ErrExpiredToken when the token is past its expiry and
// ErrInvalidToken for any signature or structural problem.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, errors.Join(ErrInvalidToken, err)
	}
	return claims, nil
}
