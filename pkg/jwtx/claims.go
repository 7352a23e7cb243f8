package jwtx

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TimeFormat is the layout of the issued_at and expired_at claims: microsecond
// precision with a numeric offset, always +00:00. Whole seconds drop the
// fraction.
const TimeFormat = "2006-01-02T15:04:05.000000-07:00"

const wholeSecondFormat = "2006-01-02T15:04:05-07:00"

// Claims are the session token claims. Every field is carried as a JSON
// string; the id is the join key into the token tables.
type Claims struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	IssuedAt  string `json:"issued_at"`
	ExpiredAt string `json:"expired_at"`
}

// NewClaims builds claims for a token row.
func NewClaims(id, userID string, issuedAt, expiredAt time.Time) Claims {
	return Claims{
		ID:        id,
		UserID:    userID,
		IssuedAt:  FormatTime(issuedAt),
		ExpiredAt: FormatTime(expiredAt),
	}
}

// FormatTime renders t in the claim layout, truncated to microseconds.
func FormatTime(t time.Time) string {
	t = t.UTC().Truncate(time.Microsecond)
	if t.Nanosecond() == 0 {
		return t.Format(wholeSecondFormat)
	}
	return t.Format(TimeFormat)
}

// ParseTime parses a claim instant. Any RFC 3339 rendering is accepted.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return t.UTC(), nil
}

// ExpiresAt returns the parsed expired_at claim.
func (c Claims) ExpiresAt() (time.Time, error) {
	return ParseTime(c.ExpiredAt)
}

// ValidateExpiry returns ErrExpired once now is past expired_at, and
// ErrMalformed when the claim cannot be parsed.
func (c Claims) ValidateExpiry(now time.Time) error {
	exp, err := c.ExpiresAt()
	if err != nil {
		return err
	}
	if now.After(exp) {
		return ErrExpired
	}
	return nil
}

// The methods below satisfy jwt.Claims. Registered claims are not used, so
// the parser performs no time based validation of its own; expiry is checked
// by the caller after the signature.

func (c Claims) GetExpirationTime() (*jwt.NumericDate, error) { return nil, nil }
func (c Claims) GetIssuedAt() (*jwt.NumericDate, error)       { return nil, nil }
func (c Claims) GetNotBefore() (*jwt.NumericDate, error)      { return nil, nil }
func (c Claims) GetIssuer() (string, error)                   { return "", nil }
func (c Claims) GetSubject() (string, error)                  { return c.UserID, nil }
func (c Claims) GetAudience() (jwt.ClaimStrings, error)       { return nil, nil }
