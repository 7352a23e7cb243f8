package domain

import "time"

// TokenKind selects the access or refresh token table.
type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

// Paired returns the kind of the other half of a pair.
func (k TokenKind) Paired() TokenKind {
	if k == AccessToken {
		return RefreshToken
	}
	return AccessToken
}

func (k TokenKind) String() string { return string(k) }

// Token is a stored access or refresh token row. PairedTokenID points at the
// row of the other kind issued in the same pair.
type Token struct {
	ID            string
	Kind          TokenKind
	UserID        string
	PairedTokenID string
	IssuedAt      time.Time
	ExpiredAt     time.Time
	Revoked       bool
}

// TokenPair is what authorize and refresh return.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Identity is the result of a successful token validation.
type Identity struct {
	UserID string
	Token  Token
}
