//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLivezEndpoint verifies the liveness check endpoint.
func TestLivezEndpoint(t *testing.T) {
	client := setupAuthContainer(t)

	health, err := client.Livez(t.Context())
	assertHealthy(t, health, err)
	require.NotEmpty(t, health.Version)

	t.Logf("Livez endpoint is healthy")
}

// TestReadyzEndpoint verifies the readiness check reports the database.
func TestReadyzEndpoint(t *testing.T) {
	client := setupAuthContainer(t)

	health, err := client.Readyz(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)

	t.Logf("Readyz endpoint is healthy")
}

// TestSwaggerServed verifies the API docs are mounted.
func TestSwaggerServed(t *testing.T) {
	client := setupAuthContainer(t)

	resp, err := client.HTTPClient.Get(client.BaseURL + "/swagger/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
