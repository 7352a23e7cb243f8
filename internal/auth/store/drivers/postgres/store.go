package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/sessionauth/internal/auth/domain"
	"github.com/aussiebroadwan/sessionauth/internal/auth/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	pool *pgxpool.Pool
}

// NewStore connects a pool to dsn and verifies it with a ping.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("open connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &txStore{ctx: ctx, tx: tx}, nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Users() store.Users          { return &usersRepo{db: s.pool} }
func (s *Store) AccessTokens() store.Tokens  { return newTokensRepo(s.pool, domain.AccessToken) }
func (s *Store) RefreshTokens() store.Tokens { return newTokensRepo(s.pool, domain.RefreshToken) }

type txStore struct {
	// ctx is the context the transaction was begun with; pgx needs one for
	// Commit and Rollback.
	ctx context.Context
	tx  pgx.Tx
}

func (t *txStore) Commit() error { return t.tx.Commit(t.ctx) }

// Rollback after Commit returns pgx.ErrTxClosed, which callers ignore.
func (t *txStore) Rollback() error { return t.tx.Rollback(t.ctx) }

func (t *txStore) Close() error               { return nil }
func (t *txStore) Ping(context.Context) error { return nil }
func (t *txStore) ApplyMigrations() error     { return nil }

func (t *txStore) Tx(context.Context) (store.Tx, error) {
	return nil, pgx.ErrTxClosed
}

func (t *txStore) WithTx(context.Context, func(store.Tx) error) error {
	return pgx.ErrTxClosed
}

func (t *txStore) Users() store.Users          { return &usersRepo{db: t.tx} }
func (t *txStore) AccessTokens() store.Tokens  { return newTokensRepo(t.tx, domain.AccessToken) }
func (t *txStore) RefreshTokens() store.Tokens { return newTokensRepo(t.tx, domain.RefreshToken) }

func mapNotFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func mapConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return store.ErrAlreadyExists
		case foreignKeyViolation:
			return store.ErrMissingReference
		}
	}
	return err
}

func requireOneRow(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
