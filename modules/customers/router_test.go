package customers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/nordcrm/nordcrm/core"
	"github.com/nordcrm/nordcrm/modules/customers"
	"github.com/nordcrm/nordcrm/pkg/guard"
)

func TestCustomerInputValidate(t *testing.T) {
	t.Parallel()

	t.Run("normalizes fields", func(t *testing.T) {
		t.Parallel()
		in := customers.CustomerInput{
			Name:    "  Ada Lovelace  ",
			Email:   " Ada@Example.COM ",
			Phone:   " +47 555 0100 ",
			Company: " Analytical Engines ",
		}
		require.NoError(t, in.Validate())
		assert.Equal(t, "Ada Lovelace", in.Name)
		assert.Equal(t, "ada@example.com", in.Email)
		assert.Equal(t, "+47 555 0100", in.Phone)
		assert.Equal(t, "Analytical Engines", in.Company)
	})

	t.Run("name required", func(t *testing.T) {
		t.Parallel()
		in := customers.CustomerInput{Name: "   "}
		var verr core.ValidationError
		require.ErrorAs(t, in.Validate(), &verr)
		assert.True(t, verr.Has("name"))
	})

	t.Run("bad email", func(t *testing.T) {
		t.Parallel()
		in := customers.CustomerInput{Name: "Ada", Email: "not-an-email"}
		var verr core.ValidationError
		require.ErrorAs(t, in.Validate(), &verr)
		assert.True(t, verr.Has("email"))
		assert.False(t, verr.Has("name"))
	})

	t.Run("email optional", func(t *testing.T) {
		t.Parallel()
		in := customers.CustomerInput{Name: "Ada"}
		require.NoError(t, in.Validate())
	})
}

// testDB builds a tenant database handle without dialing; the driver
// connects lazily, so name mapping and validation paths are testable
// offline.
func testDB(t *testing.T) *mongo.Database {
	t.Helper()
	client, err := mongo.Connect(options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client.Database("tenant_test")
}

func newTestHandler(t *testing.T) (http.Handler, *guard.Authorized) {
	t.Helper()
	h := customers.NewHandler(customers.NewService(), nil)
	return h.Handle(), &guard.Authorized{DB: testDB(t)}
}

func do(t *testing.T, h http.Handler, authorized *guard.Authorized, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if authorized != nil {
		req = req.WithContext(guard.WithAuthorized(req.Context(), authorized))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandlerRejections(t *testing.T) {
	t.Parallel()

	h, authorized := newTestHandler(t)

	t.Run("missing authorized context", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, nil, http.MethodGet, "/", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed create body", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, authorized, http.MethodPost, "/", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("create without name", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, authorized, http.MethodPost, "/", `{"email":"a@b.test"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("get with invalid id", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, authorized, http.MethodGet, "/not-a-uuid", "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("delete with invalid id", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, authorized, http.MethodDelete, "/not-a-uuid", "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("update with invalid id", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, authorized, http.MethodPut, "/not-a-uuid", `{"name":"Ada"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("negative list limit", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, authorized, http.MethodGet, "/?limit=-5", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
