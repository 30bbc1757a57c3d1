package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordcrm/nordcrm/modules/auth"
	"github.com/nordcrm/nordcrm/pkg/token"
)

type fakeStorage struct {
	users map[string]*auth.User
	err   error
}

func (f *fakeStorage) GetUserByEmail(_ context.Context, email string) (*auth.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[email]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	return u, nil
}

func newTestService(t *testing.T) (*auth.Service, *token.Service, *auth.User) {
	t.Helper()

	codec, err := token.New([]byte("test-signing-key-0123456789abcdef"))
	require.NoError(t, err)

	hash, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)

	user := &auth.User{
		ID:           uuid.New(),
		Email:        "jane@acme-corp.test",
		Name:         "Jane",
		PasswordHash: hash,
		TenantID:     uuid.New(),
		TenantSlug:   "acme-corp",
		Role:         "admin",
		CreatedAt:    time.Now().UTC(),
	}

	store := &fakeStorage{users: map[string]*auth.User{user.Email: user}}
	svc := auth.NewService(store, codec, auth.WithTokenTTL(time.Hour))
	return svc, codec, user
}

func TestServiceLogin(t *testing.T) {
	t.Parallel()

	t.Run("issues tenant-bound token", func(t *testing.T) {
		t.Parallel()
		svc, codec, user := newTestService(t)

		session, err := svc.Login(context.Background(), user.Email, "s3cret-pass")
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "Bearer", session.TokenType)
		assert.Equal(t, user.ID, session.User.ID)
		assert.Equal(t, user.TenantID, session.Tenant.ID)
		assert.Equal(t, "acme-corp", session.Tenant.Slug)
		assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)

		claims, err := codec.Verify(session.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.TenantID, claims.TenantID)
		assert.Equal(t, "acme-corp", claims.TenantSlug)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("normalizes email", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)

		session, err := svc.Login(context.Background(), "  Jane@Acme-Corp.TEST ", "s3cret-pass")
		require.NoError(t, err)
		assert.Equal(t, "jane@acme-corp.test", session.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		svc, _, user := newTestService(t)

		_, err := svc.Login(context.Background(), user.Email, "wrong")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)

		_, err := svc.Login(context.Background(), "nobody@nowhere.test", "s3cret-pass")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("empty credentials", func(t *testing.T) {
		t.Parallel()
		svc, _, user := newTestService(t)

		_, err := svc.Login(context.Background(), "", "s3cret-pass")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
		_, err = svc.Login(context.Background(), user.Email, "")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("storage failure is not invalid credentials", func(t *testing.T) {
		t.Parallel()
		codec, err := token.New([]byte("test-signing-key-0123456789abcdef"))
		require.NoError(t, err)
		infraErr := errors.New("connection refused")
		svc := auth.NewService(&fakeStorage{err: infraErr}, codec)

		_, err = svc.Login(context.Background(), "jane@acme-corp.test", "s3cret-pass")
		require.ErrorIs(t, err, infraErr)
		require.NotErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()

	svc, _, user := newTestService(t)
	srv := httptest.NewServer(svc.Handle())
	t.Cleanup(srv.Close)

	post := func(t *testing.T, body string) *http.Response {
		t.Helper()
		resp, err := http.Post(srv.URL+"/login", "application/json", bytes.NewBufferString(body))
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	t.Run("success", func(t *testing.T) {
		body, err := json.Marshal(auth.LoginRequest{Email: user.Email, Password: "s3cret-pass"})
		require.NoError(t, err)
		resp := post(t, string(body))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var envelope struct {
			Data struct {
				AccessToken string `json:"access_token"`
				TokenType   string `json:"token_type"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		assert.NotEmpty(t, envelope.Data.AccessToken)
		assert.Equal(t, "Bearer", envelope.Data.TokenType)
	})

	t.Run("bad credentials", func(t *testing.T) {
		resp := post(t, `{"email":"jane@acme-corp.test","password":"wrong"}`)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))

		var envelope struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		assert.Equal(t, "invalid_credentials", envelope.Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp := post(t, `{"email":`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
