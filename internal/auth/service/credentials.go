package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/sessionauth/internal/auth/domain"
	"github.com/aussiebroadwan/sessionauth/internal/auth/store"
	"github.com/aussiebroadwan/sessionauth/pkg/cryptox"
	"github.com/aussiebroadwan/sessionauth/pkg/slogx"
)

// CredentialVerifier checks an email and password against the users table.
type CredentialVerifier struct {
	Store  store.Store
	Hasher cryptox.Hasher
}

// Verify returns the user owning email when password matches. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (v *CredentialVerifier) Verify(ctx context.Context, email, password string) (domain.User, error) {
	return v.verify(ctx, v.Store, email, password)
}

// verify reads the user through s so callers can check credentials inside
// their own transaction.
func (v *CredentialVerifier) verify(ctx context.Context, s store.Store, email, password string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("login for unknown email")
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("lookup user by email: %w", err)
	}

	if err := v.Hasher.Verify(password, user.PasswordHash); err != nil {
		l.Info("login with wrong password", slog.String("user_id", user.ID))
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}
