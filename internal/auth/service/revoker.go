package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/sessionauth/internal/auth/domain"
	"github.com/aussiebroadwan/sessionauth/internal/auth/store"
)

// SessionRevoker revokes a token together with the other half of its pair.
type SessionRevoker struct {
	Store store.Store
}

// Revoke is unconditional and idempotent: revoking an already revoked pair
// succeeds. A token id unknown to the kind table is ErrTokenNotFound.
func (r *SessionRevoker) Revoke(ctx context.Context, tokenID string, kind domain.TokenKind) error {
	return r.Store.WithTx(ctx, func(tx store.Tx) error {
		return revokePair(ctx, tx, tokenID, kind)
	})
}

func revokePair(ctx context.Context, tx store.Tx, tokenID string, kind domain.TokenKind) error {
	tokens := store.TokensOf(tx, kind)

	if err := tokens.RevokeToken(ctx, tokenID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTokenNotFound
		}
		return fmt.Errorf("revoke %s token: %w", kind, err)
	}

	row, err := tokens.GetToken(ctx, tokenID)
	if err != nil {
		return fmt.Errorf("read %s token: %w", kind, err)
	}

	return revokePaired(ctx, tx, row)
}

// revokePaired revokes the other half of row's pair. A pair partner that no
// longer exists has nothing left to revoke.
func revokePaired(ctx context.Context, tx store.Tx, row domain.Token) error {
	kind := row.Kind.Paired()
	err := store.TokensOf(tx, kind).RevokeToken(ctx, row.PairedTokenID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("revoke paired %s token: %w", kind, err)
	}
	return nil
}
