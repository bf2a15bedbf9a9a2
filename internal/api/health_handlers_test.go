package api

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t, Options{})

	resp := ts.api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)

	got := decode[HealthResponse](t, resp.Body)
	assert.Equal(t, "healthy", got.Status)
	assert.Equal(t, "healthy", got.Components["database"].Status)
}

func TestHealthCheck_ClosedStore(t *testing.T) {
	ts := setupTestServer(t, Options{})
	require.NoError(t, ts.store.Close())

	resp := ts.api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)

	got := decode[HealthResponse](t, resp.Body)
	assert.Equal(t, "unhealthy", got.Status)
	assert.Equal(t, "database unreachable", got.Components["database"].Message)
}

func TestHealthCheck_NoStore(t *testing.T) {
	s := NewServer(nil, &Services{}, nil, Options{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	api := humatest.Wrap(t, s.api)

	resp := api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)

	got := decode[HealthResponse](t, resp.Body)
	assert.Equal(t, "degraded", got.Status)

	// No metrics registered without a registry.
	assert.Equal(t, http.StatusNotFound, api.Get("/metrics").Code)
}
