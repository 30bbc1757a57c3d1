package core_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordcrm/nordcrm/core"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	core.JSON(rec, http.StatusCreated, map[string]string{"id": "42"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body core.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"id": "42"}, body.Data)
	assert.Nil(t, body.Error)
}

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("maps HTTPError to its status and key", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		core.Error(rec, core.ErrNotFound.WithDetail("tenant not found"))

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body core.JSONResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotNil(t, body.Error)
		assert.Equal(t, "not_found", body.Error.Code)
		assert.Equal(t, "tenant not found", body.Error.Message)
	})

	t.Run("unwraps wrapped HTTPError", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		core.Error(rec, fmt.Errorf("handling request: %w", core.ErrForbidden))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("hides internal errors behind 500", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		core.Error(rec, errors.New("pg: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var body core.JSONResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotNil(t, body.Error)
		assert.Equal(t, "internal_server_error", body.Error.Code)
		assert.NotContains(t, body.Error.Message, "connection refused")
	})

	t.Run("sets WWW-Authenticate on 401", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		core.Error(rec, core.ErrUnauthorized)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	})
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	err := core.NewHTTPError(http.StatusTeapot, "teapot")
	assert.Equal(t, "teapot", err.Error())
	assert.Equal(t, "teapot: short and stout", err.WithDetail("short and stout").Error())
}
