package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/sessionauth/internal/auth/domain"
	"github.com/aussiebroadwan/sessionauth/internal/auth/store"
)

type txStore struct {
	tx *sql.Tx
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the owning Store keeps the connection.
func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users          { return &usersRepo{db: t.tx} }
func (t *txStore) AccessTokens() store.Tokens  { return newTokensRepo(t.tx, domain.AccessToken) }
func (t *txStore) RefreshTokens() store.Tokens { return newTokensRepo(t.tx, domain.RefreshToken) }

// ApplyMigrations is a no-op inside a transaction.
func (t *txStore) ApplyMigrations() error { return nil }
