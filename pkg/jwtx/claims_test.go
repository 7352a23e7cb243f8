package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/sessionauth/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestNewClaimsFormatsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	issued := time.Date(2024, 1, 2, 15, 4, 5, 6000, loc)

	c := jwtx.NewClaims("token-id", "user-id", issued, issued.Add(time.Hour))

	require.Equal(t, "token-id", c.ID)
	require.Equal(t, "user-id", c.UserID)
	require.Equal(t, "2024-01-02T12:04:05.000006+00:00", c.IssuedAt)
	require.Equal(t, "2024-01-02T13:04:05.000006+00:00", c.ExpiredAt)
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"padded micros", time.Date(2026, 10, 19, 12, 0, 0, 120_000_000, time.UTC), "2026-10-19T12:00:00.120000+00:00"},
		{"whole second", time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC), "2026-10-19T12:00:00+00:00"},
		{"nanos truncated", time.Date(2026, 10, 19, 12, 0, 0, 1_999, time.UTC), "2026-10-19T12:00:00.000001+00:00"},
		{"sub micro only", time.Date(2026, 10, 19, 12, 0, 0, 999, time.UTC), "2026-10-19T12:00:00+00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, jwtx.FormatTime(tt.in))
		})
	}
}

func TestParseTimeRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	parsed, err := jwtx.ParseTime(jwtx.FormatTime(now))
	require.NoError(t, err)
	require.True(t, now.Equal(parsed))

	parsed, err = jwtx.ParseTime("2026-10-19T12:00:00.12Z")
	require.NoError(t, err)
	require.Equal(t, "2026-10-19T12:00:00.120000+00:00", jwtx.FormatTime(parsed))
}

func TestParseTimeMalformed(t *testing.T) {
	_, err := jwtx.ParseTime("yesterday")
	require.ErrorIs(t, err, jwtx.ErrMalformed)
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid token", func(t *testing.T) {
		c := jwtx.NewClaims("id", "user", now, now.Add(time.Minute))
		require.NoError(t, c.ValidateExpiry(now))
	})

	t.Run("expired token", func(t *testing.T) {
		c := jwtx.NewClaims("id", "user", now.Add(-2*time.Minute), now.Add(-time.Minute))
		require.ErrorIs(t, c.ValidateExpiry(now), jwtx.ErrExpired)
	})

	t.Run("exactly at expiry is still valid", func(t *testing.T) {
		c := jwtx.NewClaims("id", "user", now.Add(-time.Minute), now)
		exp, err := c.ExpiresAt()
		require.NoError(t, err)
		require.NoError(t, c.ValidateExpiry(exp))
	})

	t.Run("unparseable expiry", func(t *testing.T) {
		c := jwtx.Claims{ID: "id", UserID: "user", ExpiredAt: "never"}
		require.ErrorIs(t, c.ValidateExpiry(now), jwtx.ErrMalformed)
	})
}
