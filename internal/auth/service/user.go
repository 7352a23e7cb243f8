package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/sessionauth/internal/auth/domain"
	"github.com/aussiebroadwan/sessionauth/internal/auth/store"
	"github.com/aussiebroadwan/sessionauth/pkg/cryptox"
	"github.com/aussiebroadwan/sessionauth/pkg/slogx"
	"github.com/google/uuid"
)

// Me addresses the calling user in place of an id.
const Me = "me"

// UserService is the user administration surface.
type UserService struct {
	Store  store.Store
	Hasher cryptox.Hasher
}

// CreateUser registers a non-administrator account. Only administrators may
// call it; the permission check and the insert share a transaction.
func (s *UserService) CreateUser(ctx context.Context, actorID string, in domain.NewUser) (domain.User, error) {
	now := time.Now().UTC()
	u := domain.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		Firstname:    in.Firstname,
		Middlename:   normalizeMiddlename(in.Middlename),
		Surname:      in.Surname,
		PasswordHash: s.Hasher.Hash(in.Password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := requireAdmin(ctx, tx, actorID, ErrCreateForbidden); err != nil {
			return err
		}
		if err := tx.Users().CreateUser(ctx, u); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrEmailTaken
			}
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user created",
		slog.String("actor_id", actorID),
		slog.String("created_user_id", u.ID),
	)
	return u, nil
}

// GetUser returns the user behind id, or the actor for Me. Non
// administrators may only read themselves.
func (s *UserService) GetUser(ctx context.Context, actorID, id string) (domain.User, error) {
	if id == Me || id == actorID {
		return getUser(ctx, s.Store, actorID)
	}
	if err := requireAdmin(ctx, s.Store, actorID, ErrReadForbidden); err != nil {
		return domain.User{}, err
	}
	return getUser(ctx, s.Store, id)
}

// DeleteUser removes a non-administrator account and, through the schema,
// all of its tokens.
func (s *UserService) DeleteUser(ctx context.Context, actorID, id string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := requireAdmin(ctx, tx, actorID, ErrDeleteForbidden); err != nil {
			return err
		}

		target, err := getUser(ctx, tx, id)
		if err != nil {
			return err
		}
		if target.IsAdmin {
			return ErrDeleteAdministrator
		}

		if err := tx.Users().DeleteUser(ctx, target.ID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("user deleted",
		slog.String("actor_id", actorID),
		slog.String("deleted_user_id", id),
	)
	return nil
}

func validUserID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func normalizeMiddlename(m *string) *string {
	if m == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*m)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
