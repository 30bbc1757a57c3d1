package tenant_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordcrm/nordcrm/pkg/tenant"
)

func TestSlugFromPath(t *testing.T) {
	t.Parallel()

	t.Run("extracts slug after prefix", func(t *testing.T) {
		t.Parallel()

		slug, err := tenant.SlugFromPath("/api/acme/customers", "api")
		require.NoError(t, err)
		assert.Equal(t, "acme", slug)
	})

	t.Run("slug only path", func(t *testing.T) {
		t.Parallel()

		slug, err := tenant.SlugFromPath("/api/acme", "api")
		require.NoError(t, err)
		assert.Equal(t, "acme", slug)
	})

	t.Run("defaults prefix to api", func(t *testing.T) {
		t.Parallel()

		slug, err := tenant.SlugFromPath("/api/acme/invoices/42", "")
		require.NoError(t, err)
		assert.Equal(t, "acme", slug)
	})

	t.Run("missing slug", func(t *testing.T) {
		t.Parallel()

		for _, path := range []string{"/", "", "/api", "/api/", "/other/acme/customers"} {
			_, err := tenant.SlugFromPath(path, "api")
			assert.ErrorIs(t, err, tenant.ErrSlugMissing, "path %q", path)
		}
	})

	t.Run("reserved segments are not tenant routes", func(t *testing.T) {
		t.Parallel()

		for _, path := range []string{"/api/health", "/api/auth/login", "/api/docs"} {
			_, err := tenant.SlugFromPath(path, "api")
			assert.ErrorIs(t, err, tenant.ErrNotTenantRoute, "path %q", path)
		}
	})
}

func TestResolverResolve(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns active tenant", func(t *testing.T) {
		t.Parallel()

		acme := newTestTenant("acme", tenant.StatusActive)
		resolver := tenant.NewResolver(tenant.NewLoader(newFakeRegistry(acme)))

		got, err := resolver.Resolve(ctx, "/api/acme/customers")
		require.NoError(t, err)
		assert.Equal(t, acme, got)
	})

	t.Run("normalizes slug before lookup", func(t *testing.T) {
		t.Parallel()

		corp := newTestTenant("acme-corp", tenant.StatusActive)
		resolver := tenant.NewResolver(tenant.NewLoader(newFakeRegistry(corp)))

		// Underscore spelling in the URL resolves to the canonical
		// hyphenated tenant.
		got, err := resolver.Resolve(ctx, "/api/acme_corp/customers")
		require.NoError(t, err)
		assert.Equal(t, "acme-corp", got.Slug)
	})

	t.Run("unknown tenant", func(t *testing.T) {
		t.Parallel()

		resolver := tenant.NewResolver(tenant.NewLoader(newFakeRegistry()))

		_, err := resolver.Resolve(ctx, "/api/ghost/customers")
		assert.ErrorIs(t, err, tenant.ErrTenantNotFound)
	})

	t.Run("suspended tenant is rejected after successful lookup", func(t *testing.T) {
		t.Parallel()

		sus := newTestTenant("acme", tenant.StatusSuspended)
		resolver := tenant.NewResolver(tenant.NewLoader(newFakeRegistry(sus)))

		_, err := resolver.Resolve(ctx, "/api/acme/customers")
		assert.ErrorIs(t, err, tenant.ErrTenantInactive)
	})

	t.Run("inactive tenant is rejected", func(t *testing.T) {
		t.Parallel()

		off := newTestTenant("acme", tenant.StatusInactive)
		resolver := tenant.NewResolver(tenant.NewLoader(newFakeRegistry(off)))

		_, err := resolver.Resolve(ctx, "/api/acme/customers")
		assert.ErrorIs(t, err, tenant.ErrTenantInactive)
	})

	t.Run("invalid slug shape", func(t *testing.T) {
		t.Parallel()

		reg := newFakeRegistry()
		resolver := tenant.NewResolver(tenant.NewLoader(reg))

		_, err := resolver.Resolve(ctx, "/api/-bad-/customers")
		assert.ErrorIs(t, err, tenant.ErrInvalidSlug)
		assert.Zero(t, reg.callCount(), "invalid slugs must not reach the registry")
	})

	t.Run("cold and warm cache return the same record", func(t *testing.T) {
		t.Parallel()

		acme := newTestTenant("acme", tenant.StatusActive)
		resolver := tenant.NewResolver(tenant.NewLoader(newFakeRegistry(acme)))

		cold, err := resolver.Resolve(ctx, "/api/acme/customers")
		require.NoError(t, err)
		warm, err := resolver.Resolve(ctx, "/api/acme/customers")
		require.NoError(t, err)
		assert.Equal(t, cold, warm)
	})

	t.Run("custom prefix", func(t *testing.T) {
		t.Parallel()

		acme := newTestTenant("acme", tenant.StatusActive)
		resolver := tenant.NewResolverWithPrefix(tenant.NewLoader(newFakeRegistry(acme)), "v2")

		got, err := resolver.Resolve(ctx, "/v2/acme/customers")
		require.NoError(t, err)
		assert.Equal(t, "acme", got.Slug)
	})
}
