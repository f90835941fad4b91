package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthStatus(t *testing.T) {
	_, _, router, cleanup := setupTestRouter(t)
	defer cleanup()

	w := performRequest(router, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "test", health.Version)
	assert.Equal(t, "ok", health.Checks["database"])
	assert.NotEmpty(t, health.Time)
}

func TestCORSHeaders(t *testing.T) {
	_, _, router, cleanup := setupTestRouter(t)
	defer cleanup()

	w := performRequest(router, http.MethodOptions, "/api/books", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestCORSHeadersOnRegularRequests(t *testing.T) {
	_, _, router, cleanup := setupTestRouter(t)
	defer cleanup()

	w := performRequest(router, http.MethodGet, "/api/books", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
