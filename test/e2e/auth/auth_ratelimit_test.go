//go:build e2e

package auth_test

import (
	"errors"
	"testing"

	"github.com/aussiebroadwan/sessionauth/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitAuthorizeEndpoint verifies that failed /v1/authorize attempts
// are rate limited per IP and email. The strict limit is 5 req/min.
func TestRateLimitAuthorizeEndpoint(t *testing.T) {
	client := setupAuthContainerWithDefaultRateLimits(t)
	ctx := t.Context()

	for i := range 5 {
		_, err := client.Authorize(ctx, adminEmail, "wrong")
		assertAPIError(t, err, authsdk.ErrUnauthorized)
		t.Logf("request %d rejected with 401", i+1)
	}

	_, err := client.Authorize(ctx, adminEmail, "wrong")
	assertAPIError(t, err, authsdk.ErrRateLimitExceeded)

	// A different email has its own bucket.
	_, err = client.Authorize(ctx, "someone-else@example.com", "wrong")
	require.False(t, errors.Is(err, authsdk.ErrRateLimitExceeded), "other emails should not be limited: %v", err)
}

// TestRateLimitRefreshEndpoint verifies that failed /v1/refresh attempts are
// rate limited per IP.
func TestRateLimitRefreshEndpoint(t *testing.T) {
	client := setupAuthContainerWithDefaultRateLimits(t)
	ctx := t.Context()

	var lastErr error
	for range 6 {
		_, lastErr = client.Refresh(ctx, "not-a-token")
	}
	assertAPIError(t, lastErr, authsdk.ErrRateLimitExceeded)
}

// TestValidLoginsAreNotLimited verifies that successful logins do not use up
// the strict budget.
func TestValidLoginsAreNotLimited(t *testing.T) {
	client := setupAuthContainerWithDefaultRateLimits(t)

	for range 10 {
		loginAdmin(t, client)
	}
}
