package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/sessionauth/internal/auth/domain"
	"github.com/aussiebroadwan/sessionauth/internal/auth/service"
	"github.com/aussiebroadwan/sessionauth/internal/auth/store"
	"github.com/aussiebroadwan/sessionauth/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/sessionauth/pkg/cryptox"
	"github.com/aussiebroadwan/sessionauth/pkg/jwtx"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "DefaultJSONWebTokenSignatureSecret"
	testSalt     = "DefaultPasswordHashSalt"
	testPassword = "correct horse battery staple"
)

type fixture struct {
	store       *sqlite.Store
	codec       *jwtx.Codec
	hasher      cryptox.Hasher
	validator   *service.TokenValidator
	revoker     *service.SessionRevoker
	sessions    *service.SessionService
	permissions *service.PermissionService
	users       *service.UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	codec, err := jwtx.NewCodec(testSecret)
	require.NoError(t, err)
	hasher := cryptox.NewHasher(testSalt)

	f := &fixture{store: s, codec: codec, hasher: hasher}
	f.validator = &service.TokenValidator{Store: s, Codec: codec}
	f.revoker = &service.SessionRevoker{Store: s}
	f.sessions = &service.SessionService{
		Store:       s,
		Codec:       codec,
		Credentials: &service.CredentialVerifier{Store: s, Hasher: hasher},
		Validator:   f.validator,
		Revoker:     f.revoker,
		AccessTTL:   time.Hour,
		RefreshTTL:  30 * 24 * time.Hour,
	}
	f.permissions = &service.PermissionService{Store: s}
	f.users = &service.UserService{Store: s, Hasher: hasher}
	return f
}

func (f *fixture) addUser(t *testing.T, email string, admin bool) domain.User {
	t.Helper()
	now := time.Now().UTC()
	u := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Firstname:    "Test",
		Surname:      "User",
		PasswordHash: f.hasher.Hash(testPassword),
		IsAdmin:      admin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, f.store.Users().CreateUser(context.Background(), u))
	return u
}

func (f *fixture) login(t *testing.T, email string) domain.TokenPair {
	t.Helper()
	pair, err := f.sessions.Issue(context.Background(), email, testPassword)
	require.NoError(t, err)
	return pair
}

func (f *fixture) decode(t *testing.T, token string) jwtx.Claims {
	t.Helper()
	claims, err := f.codec.Decode(token)
	require.NoError(t, err)
	return claims
}

// interleavedStore runs before ahead of every transaction, standing in for a
// concurrent request that commits first.
type interleavedStore struct {
	store.Store
	before func()
}

func (s *interleavedStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	s.before()
	return s.Store.WithTx(ctx, fn)
}
