package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/sessionauth/internal/auth/domain"
	"github.com/aussiebroadwan/sessionauth/internal/auth/store"
	"github.com/aussiebroadwan/sessionauth/pkg/slogx"
)

// PermissionService grants and revokes administrator permissions while
// keeping at least one administrator in the system.
type PermissionService struct {
	Store store.Store
}

// ChangeAdminPermissions applies action to targetID on behalf of actorID.
// Checks run in order: actor is admin, target exists, target is not the
// last admin (revoke only), target is not already in the requested state.
func (s *PermissionService) ChangeAdminPermissions(
	ctx context.Context,
	actorID, targetID string,
	action domain.PermissionAction,
) (domain.PermissionChange, error) {
	if _, ok := domain.ParsePermissionAction(string(action)); !ok {
		return domain.PermissionChange{}, ErrUnknownPermissionAct
	}

	var change domain.PermissionChange
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Actor
		if err := requireAdmin(ctx, tx, actorID, ErrNotAdministrator); err != nil {
			return err
		}

		// 2. Target
		target, err := getUser(ctx, tx, targetID)
		if err != nil {
			return err
		}

		// 3. Last administrator
		if action == domain.RevokeAdmin {
			ids, err := tx.Users().ListAdminIDs(ctx)
			if err != nil {
				return fmt.Errorf("list administrators: %w", err)
			}
			if !hasOtherThan(ids, target.ID) {
				return ErrLastAdministrator
			}
		}

		// 4. No-op changes
		want := action.Wants()
		if target.IsAdmin == want {
			if want {
				return ErrAlreadyAdministrator
			}
			return ErrAlreadyNotAdministrator
		}

		// 5. Apply
		if err := tx.Users().SetAdmin(ctx, target.ID, want); err != nil {
			return fmt.Errorf("set admin flag: %w", err)
		}
		target.IsAdmin = want
		change = domain.PermissionChange{User: target, IsAdmin: want}
		return nil
	})
	if err != nil {
		return domain.PermissionChange{}, err
	}

	slogx.FromContext(ctx).Info("administrator permissions changed",
		slog.String("actor_id", actorID),
		slog.String("target_id", targetID),
		slog.Bool("is_admin", change.IsAdmin),
	)
	return change, nil
}

func hasOtherThan(ids []string, id string) bool {
	for _, other := range ids {
		if other != id {
			return true
		}
	}
	return false
}

// requireAdmin returns denied unless actorID names an existing
// administrator.
func requireAdmin(ctx context.Context, s store.Store, actorID string, denied error) error {
	actor, err := s.Users().GetUserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return denied
		}
		return fmt.Errorf("lookup actor: %w", err)
	}
	if !actor.IsAdmin {
		return denied
	}
	return nil
}

// getUser maps a missing row, or an id that cannot exist, to ErrUserNotFound.
func getUser(ctx context.Context, s store.Store, id string) (domain.User, error) {
	if !validUserID(id) {
		return domain.User{}, ErrUserNotFound
	}
	u, err := s.Users().GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}
	return u, nil
}
