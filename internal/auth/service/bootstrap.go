package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/sessionauth/internal/auth/domain"
	"github.com/aussiebroadwan/sessionauth/internal/auth/store"
	"github.com/aussiebroadwan/sessionauth/pkg/cryptox"
	"github.com/aussiebroadwan/sessionauth/pkg/slogx"
	"github.com/google/uuid"
)

// BootstrapService seeds the first administrator into an empty database.
type BootstrapService struct {
	Store  store.Store
	Hasher cryptox.Hasher
}

// EnsureDefaultAdmin creates the administrator described by data when no
// user exists yet. It reports whether a user was created. Without a
// configured password one is generated and logged once at WARN.
func (s *BootstrapService) EnsureDefaultAdmin(ctx context.Context, data domain.BootstrapData) (bool, error) {
	l := slogx.FromContext(ctx)

	var created bool
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Only an empty system is seeded
		empty, err := tx.Users().IsEmpty(ctx)
		if err != nil {
			return fmt.Errorf("check users: %w", err)
		}
		if !empty {
			return nil
		}

		// 2. Password
		password := data.AdminPassword
		if password == "" {
			password, err = cryptox.GeneratePassword()
			if err != nil {
				return err
			}
			l.Warn("generated default administrator password, change it after first login",
				slog.String("email", data.AdminEmail),
				slog.String("password", password),
			)
		}

		// 3. Administrator
		now := time.Now().UTC()
		admin := domain.User{
			ID:           uuid.NewString(),
			Email:        data.AdminEmail,
			Firstname:    data.AdminFirstname,
			Surname:      data.AdminSurname,
			PasswordHash: s.Hasher.Hash(password),
			IsAdmin:      true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := tx.Users().CreateUser(ctx, admin); err != nil {
			return fmt.Errorf("create default administrator: %w", err)
		}

		l.Info("default administrator created",
			slog.String("user_id", admin.ID),
			slog.String("email", admin.Email),
		)
		created = true
		return nil
	})
	return created, err
}
