package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aussiebroadwan/sessionauth/internal/auth/domain"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

const userColumns = `id, email, firstname, middlename, surname, password_hash, is_admin, created_at, updated_at`

const (
	getUserByID    = `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	createUser     = `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	deleteUser     = `DELETE FROM users WHERE id = ?`
	setAdmin       = `UPDATE users SET is_admin = ?, updated_at = ? WHERE id = ?`
	listAdminIDs   = `SELECT id FROM users WHERE is_admin = 1 ORDER BY created_at, id`
	countUsers     = `SELECT COUNT(*) FROM users`
)

// tokenQueries holds the statements for one token table. Both tables share
// a shape and differ only in name and the column pointing at the pair.
type tokenQueries struct {
	create        string
	get           string
	revoke        string
	revokeActive  string
	deleteExpired string
}

func newTokenQueries(table, pairedColumn string) tokenQueries {
	cols := fmt.Sprintf("id, user_id, %s, issued_at, expired_at, revoked", pairedColumn)
	return tokenQueries{
		create:        fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?)`, table, cols),
		get:           fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?`, cols, table),
		revoke:        fmt.Sprintf(`UPDATE %s SET revoked = 1 WHERE id = ?`, table),
		revokeActive:  fmt.Sprintf(`UPDATE %s SET revoked = 1 WHERE id = ? AND revoked = 0`, table),
		deleteExpired: fmt.Sprintf(`DELETE FROM %s WHERE expired_at < ?`, table),
	}
}

var (
	accessTokenQueries  = newTokenQueries("access_tokens", "refresh_token_id")
	refreshTokenQueries = newTokenQueries("refresh_tokens", "access_token_id")
)

func tokenQueriesFor(kind domain.TokenKind) tokenQueries {
	if kind == domain.AccessToken {
		return accessTokenQueries
	}
	return refreshTokenQueries
}
