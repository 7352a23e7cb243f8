package service_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/sessionauth/internal/auth/domain"
	"github.com/aussiebroadwan/sessionauth/internal/auth/service"
	"github.com/aussiebroadwan/sessionauth/internal/auth/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	f := newFixture(t)
	admin := f.addUser(t, "root@example.com", true)
	plain := f.addUser(t, "plain@example.com", false)
	ctx := context.Background()

	blank := "  "
	in := domain.NewUser{
		Email: "new@example.com", Password: "pw", Firstname: "New",
		Middlename: &blank, Surname: "Person",
	}

	_, err := f.users.CreateUser(ctx, plain.ID, in)
	require.ErrorIs(t, err, service.ErrCreateForbidden)

	u, err := f.users.CreateUser(ctx, admin.ID, in)
	require.NoError(t, err)
	require.False(t, u.IsAdmin)
	require.Nil(t, u.Middlename)
	require.NoError(t, uuid.Validate(u.ID))

	_, err = f.sessions.Issue(ctx, "new@example.com", "pw")
	require.NoError(t, err, "created user can log in")

	_, err = f.users.CreateUser(ctx, admin.ID, in)
	require.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestCreateUserChecksActorInTransaction(t *testing.T) {
	f := newFixture(t)
	admin := f.addUser(t, "root@example.com", true)
	f.addUser(t, "other-root@example.com", true)
	ctx := context.Background()

	users := &service.UserService{
		Store: &interleavedStore{Store: f.store, before: func() {
			require.NoError(t, f.store.Users().SetAdmin(ctx, admin.ID, false))
		}},
		Hasher: f.hasher,
	}

	_, err := users.CreateUser(ctx, admin.ID, domain.NewUser{
		Email: "late@example.com", Password: "pw", Firstname: "Late", Surname: "Comer",
	})
	require.ErrorIs(t, err, service.ErrCreateForbidden)

	_, err = f.store.Users().GetUserByEmail(ctx, "late@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetUser(t *testing.T) {
	f := newFixture(t)
	admin := f.addUser(t, "root@example.com", true)
	plain := f.addUser(t, "plain@example.com", false)
	ctx := context.Background()

	tests := []struct {
		name   string
		actor  string
		id     string
		wantID string
		err    error
	}{
		{"me", plain.ID, service.Me, plain.ID, nil},
		{"own id", plain.ID, plain.ID, plain.ID, nil},
		{"non admin reading another", plain.ID, admin.ID, "", service.ErrReadForbidden},
		{"admin reading another", admin.ID, plain.ID, plain.ID, nil},
		{"missing", admin.ID, uuid.NewString(), "", service.ErrUserNotFound},
		{"not a uuid", admin.ID, "abc", "", service.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := f.users.GetUser(ctx, tt.actor, tt.id)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, u.ID)
		})
	}
}

func TestDeleteUser(t *testing.T) {
	f := newFixture(t)
	admin := f.addUser(t, "root@example.com", true)
	plain := f.addUser(t, "plain@example.com", false)
	other := f.addUser(t, "other@example.com", false)
	ctx := context.Background()

	require.ErrorIs(t, f.users.DeleteUser(ctx, plain.ID, other.ID), service.ErrDeleteForbidden)
	require.ErrorIs(t, f.users.DeleteUser(ctx, admin.ID, uuid.NewString()), service.ErrUserNotFound)
	require.ErrorIs(t, f.users.DeleteUser(ctx, admin.ID, admin.ID), service.ErrDeleteAdministrator)

	pair := f.login(t, plain.Email)
	require.NoError(t, f.users.DeleteUser(ctx, admin.ID, plain.ID))

	_, err := f.store.Users().GetUserByID(ctx, plain.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = f.validator.Validate(ctx, pair.AccessToken, domain.AccessToken)
	require.ErrorIs(t, err, service.ErrTokenNotFound, "tokens go with the user")
}
