package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/sessionauth/internal/auth/domain"
)

type usersRepo struct {
	db DBTX
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u          domain.User
		middlename sql.NullString
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.Firstname, &middlename, &u.Surname,
		&u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Middlename = mapNullStringPtr(middlename)
	u.CreatedAt = utc(u.CreatedAt)
	u.UpdatedAt = utc(u.UpdatedAt)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, getUserByID, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, getUserByEmail, email))
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}

	_, err := r.db.ExecContext(ctx, createUser,
		u.ID, u.Email, u.Firstname, mapOptionalString(u.Middlename), u.Surname,
		u.PasswordHash, u.IsAdmin, utc(u.CreatedAt), utc(u.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *usersRepo) DeleteUser(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteUser, id)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

func (r *usersRepo) SetAdmin(ctx context.Context, id string, isAdmin bool) error {
	res, err := r.db.ExecContext(ctx, setAdmin, isAdmin, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

// ListAdminIDs relies on the single connection store to keep the result
// stable for the rest of the transaction.
func (r *usersRepo) ListAdminIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, listAdminIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, countUsers).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}
