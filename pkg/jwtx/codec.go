package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrInvalidSig = errors.New("jwtx: invalid signature")
	ErrExpired    = errors.New("jwtx: token expired")
	ErrEmptyKey   = errors.New("jwtx: empty signing secret")
)

// Codec signs and verifies HS256 session tokens with a single shared secret.
type Codec struct {
	secret []byte
	parser *jwt.Parser
}

// NewCodec returns a Codec for secret. An empty secret is rejected since it
// would make every token forgeable.
func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, ErrEmptyKey
	}
	return &Codec{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}, nil
}

// Encode signs claims into a compact three segment token.
func (c *Codec) Encode(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Decode parses and verifies token. Structural failures (segment count,
// base64, JSON shape) yield ErrMalformed; anything that parses but does not
// verify against the secret yields ErrInvalidSig. Expiry is not checked.
func (c *Codec) Decode(token string) (Claims, error) {
	var claims Claims
	parsed, err := c.parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return Claims{}, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidSig, err)
	}
	if !parsed.Valid {
		return Claims{}, ErrInvalidSig
	}

	return claims, nil
}
