package token_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordcrm/nordcrm/pkg/token"
)

const testKey = "test-signing-key-with-enough-bytes"

func testClaims() token.Claims {
	return token.Claims{
		UserID:     uuid.New(),
		Email:      "owner@acme.test",
		TenantID:   uuid.New(),
		TenantSlug: "acme",
		Role:       "admin",
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty key", func(t *testing.T) {
		t.Parallel()

		_, err := token.New(nil)
		assert.ErrorIs(t, err, token.ErrMissingSigningKey)
	})

	t.Run("rejects empty config key", func(t *testing.T) {
		t.Parallel()

		_, err := token.NewFromConfig(token.Config{})
		assert.ErrorIs(t, err, token.ErrMissingSigningKey)
	})
}

func TestIssueVerify(t *testing.T) {
	t.Parallel()

	svc, err := token.New([]byte(testKey))
	require.NoError(t, err)

	t.Run("round trip preserves claims", func(t *testing.T) {
		t.Parallel()

		issued := testClaims()
		tok, err := svc.Issue(issued, time.Hour)
		require.NoError(t, err)

		got, err := svc.Verify(tok)
		require.NoError(t, err)

		assert.Equal(t, issued.UserID, got.UserID)
		assert.Equal(t, issued.Email, got.Email)
		assert.Equal(t, issued.TenantID, got.TenantID)
		assert.Equal(t, issued.TenantSlug, got.TenantSlug)
		assert.Equal(t, issued.Role, got.Role)
		assert.NotNil(t, got.ExpiresAt)
		assert.NotNil(t, got.IssuedAt)
	})

	t.Run("zero ttl falls back to default", func(t *testing.T) {
		t.Parallel()

		tok, err := svc.Issue(testClaims(), 0)
		require.NoError(t, err)

		got, err := svc.Verify(tok)
		require.NoError(t, err)

		wantExp := time.Now().Add(token.DefaultTTL)
		assert.WithinDuration(t, wantExp, got.ExpiresAt.Time, time.Minute)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		tok, err := svc.Issue(testClaims(), -time.Minute)
		require.NoError(t, err)

		_, err = svc.Verify(tok)
		assert.ErrorIs(t, err, token.ErrExpiredToken)
	})

	t.Run("negative ttl stamps an expiry in the past", func(t *testing.T) {
		t.Parallel()

		tok, err := svc.Issue(testClaims(), -time.Minute)
		require.NoError(t, err)

		// Decode without temporal validation to inspect the stamped expiry:
		// a negative ttl must not fall back to the default lifetime.
		parsed, _, err := jwt.NewParser().ParseUnverified(tok, &token.Claims{})
		require.NoError(t, err)
		claims := parsed.Claims.(*token.Claims)
		require.NotNil(t, claims.ExpiresAt)
		assert.True(t, claims.ExpiresAt.Time.Before(time.Now()),
			"expiry %v should be in the past", claims.ExpiresAt.Time)
	})

	t.Run("rejects token signed with different key", func(t *testing.T) {
		t.Parallel()

		other, err := token.New([]byte("another-key-another-key-another!"))
		require.NoError(t, err)

		tok, err := other.Issue(testClaims(), time.Hour)
		require.NoError(t, err)

		_, err = svc.Verify(tok)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("rejects malformed token", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Verify("not.a.jwt")
		assert.ErrorIs(t, err, token.ErrInvalidToken)

		_, err = svc.Verify("")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("rejects tampered payload", func(t *testing.T) {
		t.Parallel()

		tok, err := svc.Issue(testClaims(), time.Hour)
		require.NoError(t, err)

		tampered := tok[:len(tok)-4] + "AAAA"
		_, err = svc.Verify(tampered)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("token without tenant slug verifies", func(t *testing.T) {
		t.Parallel()

		// Syntactically valid: rejecting tenant-less tokens on
		// tenant-scoped routes is the guard's job, not the codec's.
		claims := testClaims()
		claims.TenantSlug = ""

		tok, err := svc.Issue(claims, time.Hour)
		require.NoError(t, err)

		got, err := svc.Verify(tok)
		require.NoError(t, err)
		assert.Empty(t, got.TenantSlug)
	})
}

func TestBearerFromRequest(t *testing.T) {
	t.Parallel()

	newReq := func(header string) *http.Request {
		r, _ := http.NewRequest(http.MethodGet, "/api/acme/customers", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		return r
	}

	t.Run("extracts bearer token", func(t *testing.T) {
		t.Parallel()

		tok, err := token.BearerFromRequest(newReq("Bearer abc.def.ghi"))
		require.NoError(t, err)
		assert.Equal(t, "abc.def.ghi", tok)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()

		_, err := token.BearerFromRequest(newReq(""))
		assert.ErrorIs(t, err, token.ErrNoBearerToken)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		t.Parallel()

		_, err := token.BearerFromRequest(newReq("Basic dXNlcjpwYXNz"))
		assert.ErrorIs(t, err, token.ErrNoBearerToken)
	})

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()

		_, err := token.BearerFromRequest(newReq("Bearer "))
		assert.ErrorIs(t, err, token.ErrNoBearerToken)
	})

	t.Run("case sensitive scheme", func(t *testing.T) {
		t.Parallel()

		_, err := token.BearerFromRequest(newReq("bearer abc"))
		assert.ErrorIs(t, err, token.ErrNoBearerToken)
	})
}
