//go:build e2e

package auth_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/sessionauth/pkg/authsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for auth service end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName = "sessionauth-test:latest"

	adminEmail    = "admin@example.com"
	adminPassword = "Admin123!"
	userPassword  = "User123!"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Auth Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Auth Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/auth/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

func baseEnv() map[string]string {
	return map[string]string{
		"JWT_SIGNATURE_SECRET":   "e2e-signature-secret",
		"PASSWORD_HASH_SALT":     "e2e-salt",
		"DEFAULT_ADMIN_EMAIL":    adminEmail,
		"DEFAULT_ADMIN_PASSWORD": adminPassword,
		"DB_FILE":                "/data/auth.db",
		"ENV":                    "test",
		"LOG_LEVEL":              "info",
		"LOG_FORMAT":             "json",
	}
}

// setupAuthContainer starts the auth service with relaxed rate limits and
// returns a client for it.
func setupAuthContainer(t *testing.T) *authsdk.Client {
	t.Helper()

	env := baseEnv()
	// Tests make many rapid requests which would otherwise hit the strict production limits
	env["RATELIMIT_STRICT_REQUESTS"] = "1000"
	env["RATELIMIT_STRICT_WINDOW_SEC"] = "60"
	env["RATELIMIT_STRICT_BURST"] = "1000"
	env["RATELIMIT_MODERATE_REQUESTS"] = "1000"
	env["RATELIMIT_MODERATE_BURST"] = "1000"

	return startContainer(t, env)
}

// setupAuthContainerWithDefaultRateLimits starts the auth service with the
// production rate limits. Only the rate limit tests should use it.
func setupAuthContainerWithDefaultRateLimits(t *testing.T) *authsdk.Client {
	t.Helper()
	return startContainer(t, baseEnv())
}

func startContainer(t *testing.T, env map[string]string) *authsdk.Client {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/readyz").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return authsdk.NewClient(fmt.Sprintf("http://%s:%s", host, mappedPort.Port()))
}

// loginAdmin authorizes as the bootstrapped administrator.
func loginAdmin(t *testing.T, client *authsdk.Client) *authsdk.TokenPair {
	t.Helper()
	pair, err := client.Authorize(t.Context(), adminEmail, adminPassword)
	require.NoError(t, err, "admin login should succeed")
	assertTokenPair(t, pair)
	return pair
}

// createUser creates a non-administrator and returns its id.
func createUser(t *testing.T, client *authsdk.Client, adminToken, email string) string {
	t.Helper()
	resp, err := client.CreateUser(t.Context(), adminToken, authsdk.CreateUserRequest{
		Email:     email,
		Password:  userPassword,
		Firstname: "Test",
		Surname:   "User",
	})
	require.NoError(t, err)
	require.Equal(t, "User successfully created", resp.Status)
	require.NotEmpty(t, resp.UserID)
	return resp.UserID
}

// assertTokenPair verifies a token pair has both tokens.
func assertTokenPair(t *testing.T, pair *authsdk.TokenPair) {
	t.Helper()
	require.NotNil(t, pair)
	require.NotEmpty(t, pair.AccessToken, "Access token should not be empty")
	require.NotEmpty(t, pair.RefreshToken, "Refresh token should not be empty")
}

// assertAPIError verifies err is an APIError with the given status.
func assertAPIError(t *testing.T, err error, want *authsdk.APIError) {
	t.Helper()
	require.Error(t, err)

	var apiErr *authsdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected *authsdk.APIError, got %T: %v", err, err)
	require.Equal(t, want.StatusCode, apiErr.StatusCode, apiErr.Error())
	require.Equal(t, want.Status, apiErr.Status, apiErr.Error())
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *authsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
