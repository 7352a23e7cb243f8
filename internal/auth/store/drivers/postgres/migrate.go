package postgres

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/sessionauth/internal/auth/store/drivers/postgres/migrations"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// ApplyMigrations runs the embedded goose migrations over a database/sql
// handle borrowed from the pool.
func (s *Store) ApplyMigrations() error {
	return s.ApplyMigrationsContext(context.Background())
}

func (s *Store) ApplyMigrationsContext(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(s.pool)
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
