package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/sessionauth/internal/auth/domain"
	"github.com/aussiebroadwan/sessionauth/internal/auth/store"
	"github.com/aussiebroadwan/sessionauth/pkg/jwtx"
)

// TokenValidator decides whether a presented token is usable.
type TokenValidator struct {
	Store store.Store
	Codec *jwtx.Codec
	Now   func() time.Time
}

// Validate runs the checks in a fixed order and returns the first failure:
// malformed, bad signature, expired, not found, revoked. kind selects the
// table the token id is looked up in, so an access token presented as a
// refresh token is not found.
func (v *TokenValidator) Validate(ctx context.Context, token string, kind domain.TokenKind) (domain.Identity, error) {
	claims, err := v.Codec.Decode(token)
	if err != nil {
		if errors.Is(err, jwtx.ErrMalformed) {
			return domain.Identity{}, ErrTokenMalformed
		}
		return domain.Identity{}, ErrTokenBadSignature
	}

	if err := claims.ValidateExpiry(v.now()); err != nil {
		if errors.Is(err, jwtx.ErrExpired) {
			return domain.Identity{}, ErrTokenExpired
		}
		return domain.Identity{}, ErrTokenMalformed
	}

	row, err := store.TokensOf(v.Store, kind).GetToken(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Identity{}, ErrTokenNotFound
		}
		return domain.Identity{}, fmt.Errorf("lookup %s token: %w", kind, err)
	}

	if row.Revoked {
		return domain.Identity{}, ErrTokenRevoked
	}

	return domain.Identity{UserID: row.UserID, Token: row}, nil
}

func (v *TokenValidator) now() time.Time {
	if v.Now != nil {
		return v.Now()
	}
	return time.Now()
}
