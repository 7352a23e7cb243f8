package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/sessionauth/internal/auth/domain"
	"github.com/aussiebroadwan/sessionauth/internal/auth/store"
	"github.com/aussiebroadwan/sessionauth/pkg/jwtx"
	"github.com/aussiebroadwan/sessionauth/pkg/slogx"
	"github.com/google/uuid"
)

// SessionService issues, rotates and ends token pairs.
type SessionService struct {
	Store       store.Store
	Codec       *jwtx.Codec
	Credentials *CredentialVerifier
	Validator   *TokenValidator
	Revoker     *SessionRevoker
	AccessTTL   time.Duration
	RefreshTTL  time.Duration
	Now         func() time.Time
}

// Issue authenticates email and password and returns a fresh pair. The
// credential check and the inserts share a transaction; a user deleted
// meanwhile is reported as ErrInvalidCredentials.
func (s *SessionService) Issue(ctx context.Context, email, password string) (domain.TokenPair, error) {
	var (
		userID string
		access domain.Token
		pair   domain.TokenPair
	)
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := s.Credentials.verify(ctx, tx, email, password)
		if err != nil {
			return err
		}

		a, r := s.newPair(user.ID)
		p, err := s.encode(a, r)
		if err != nil {
			return err
		}
		if err := insertPair(ctx, tx, a, r); err != nil {
			if errors.Is(err, store.ErrMissingReference) {
				return ErrInvalidCredentials
			}
			return err
		}

		userID, access, pair = user.ID, a, p
		return nil
	})
	if err != nil {
		return domain.TokenPair{}, err
	}

	slogx.FromContext(ctx).Info("session issued",
		slog.String("user_id", userID),
		slog.String("access_token_id", access.ID),
	)
	return pair, nil
}

// Rotate exchanges a valid refresh token for a new pair and revokes the old
// pair in the same transaction. Of two concurrent rotations of one token,
// exactly one succeeds; the other gets ErrTokenRevoked.
func (s *SessionService) Rotate(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	identity, err := s.Validator.Validate(ctx, refreshToken, domain.RefreshToken)
	if err != nil {
		return domain.TokenPair{}, err
	}
	old := identity.Token

	access, refresh := s.newPair(identity.UserID)
	pair, err := s.encode(access, refresh)
	if err != nil {
		return domain.TokenPair{}, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := insertPair(ctx, tx, access, refresh); err != nil {
			if errors.Is(err, store.ErrMissingReference) {
				return ErrTokenNotFound
			}
			return err
		}

		revoked, err := tx.RefreshTokens().RevokeTokenIfActive(ctx, old.ID)
		if err != nil {
			return fmt.Errorf("revoke refresh token: %w", err)
		}
		if !revoked {
			return ErrTokenRevoked
		}

		return revokePaired(ctx, tx, old)
	})
	if err != nil {
		return domain.TokenPair{}, err
	}

	slogx.FromContext(ctx).Info("session rotated",
		slog.String("user_id", identity.UserID),
		slog.String("old_refresh_token_id", old.ID),
		slog.String("refresh_token_id", refresh.ID),
	)
	return pair, nil
}

// Logout revokes the pair the access token belongs to.
func (s *SessionService) Logout(ctx context.Context, accessToken string) error {
	identity, err := s.Validator.Validate(ctx, accessToken, domain.AccessToken)
	if err != nil {
		return err
	}
	if err := s.Revoker.Revoke(ctx, identity.Token.ID, domain.AccessToken); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("session ended", slog.String("user_id", identity.UserID))
	return nil
}

// newPair builds the rows for a pair. Instants are truncated to microseconds
// so the claim strings equal what every driver stores.
func (s *SessionService) newPair(userID string) (access, refresh domain.Token) {
	now := s.now().UTC().Truncate(time.Microsecond)

	access = domain.Token{
		ID:        uuid.NewString(),
		Kind:      domain.AccessToken,
		UserID:    userID,
		IssuedAt:  now,
		ExpiredAt: now.Add(s.AccessTTL),
	}
	refresh = domain.Token{
		ID:        uuid.NewString(),
		Kind:      domain.RefreshToken,
		UserID:    userID,
		IssuedAt:  now,
		ExpiredAt: now.Add(s.RefreshTTL),
	}
	access.PairedTokenID = refresh.ID
	refresh.PairedTokenID = access.ID
	return access, refresh
}

func (s *SessionService) encode(access, refresh domain.Token) (domain.TokenPair, error) {
	a, err := s.Codec.Encode(claimsFor(access))
	if err != nil {
		return domain.TokenPair{}, err
	}
	r, err := s.Codec.Encode(claimsFor(refresh))
	if err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{AccessToken: a, RefreshToken: r}, nil
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func claimsFor(t domain.Token) jwtx.Claims {
	return jwtx.NewClaims(t.ID, t.UserID, t.IssuedAt, t.ExpiredAt)
}

func insertPair(ctx context.Context, tx store.Tx, access, refresh domain.Token) error {
	if err := tx.AccessTokens().CreateToken(ctx, access); err != nil {
		return fmt.Errorf("insert access token: %w", err)
	}
	if err := tx.RefreshTokens().CreateToken(ctx, refresh); err != nil {
		return fmt.Errorf("insert refresh token: %w", err)
	}
	return nil
}
