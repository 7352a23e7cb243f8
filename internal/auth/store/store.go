package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/sessionauth/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrMissingReference is a write naming a row that no longer exists,
	// such as a token for a deleted user.
	ErrMissingReference = errors.New("store: referenced row missing")
)

// Store is the root data access interface implemented by the sqlite and
// postgres drivers. Repositories hang off it so the same calls work inside
// and outside a transaction.
type Store interface {
	Users() Users
	AccessTokens() Tokens
	RefreshTokens() Tokens

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller must Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transaction scoped Store. Nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// TokensOf returns the repository holding tokens of kind.
func TokensOf(s Store, kind domain.TokenKind) Tokens {
	if kind == domain.AccessToken {
		return s.AccessTokens()
	}
	return s.RefreshTokens()
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches the stored email exactly.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// DeleteUser cascades to both token tables.
	DeleteUser(ctx context.Context, id string) error

	// SetAdmin flips is_admin and bumps updated_at.
	SetAdmin(ctx context.Context, id string, isAdmin bool) error

	// ListAdminIDs returns every administrator id. Inside a transaction the
	// postgres driver locks the returned rows.
	ListAdminIDs(ctx context.Context) ([]string, error)

	IsEmpty(ctx context.Context) (bool, error)
}

// Tokens is one token table. Access and refresh tokens share the shape.
type Tokens interface {
	CreateToken(ctx context.Context, t domain.Token) error
	GetToken(ctx context.Context, id string) (domain.Token, error)

	// RevokeToken sets revoked unconditionally. Returns ErrNotFound when no
	// row has id.
	RevokeToken(ctx context.Context, id string) error

	// RevokeTokenIfActive sets revoked only when it is currently unset and
	// reports whether it did.
	RevokeTokenIfActive(ctx context.Context, id string) (bool, error)

	// DeleteExpiredTokens removes rows that expired before the cutoff.
	DeleteExpiredTokens(ctx context.Context, before time.Time) (int64, error)
}
