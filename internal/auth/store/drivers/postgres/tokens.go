package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/sessionauth/internal/auth/domain"
)

type tokensRepo struct {
	db     querier
	kind   domain.TokenKind
	table  string
	paired string
}

func newTokensRepo(db querier, kind domain.TokenKind) *tokensRepo {
	r := &tokensRepo{db: db, kind: kind, table: "refresh_tokens", paired: "access_token_id"}
	if kind == domain.AccessToken {
		r.table, r.paired = "access_tokens", "refresh_token_id"
	}
	return r
}

func (r *tokensRepo) CreateToken(ctx context.Context, t domain.Token) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (id, user_id, %s, issued_at, expired_at, revoked) VALUES ($1, $2, $3, $4, $5, $6)`,
		r.table, r.paired,
	)
	_, err := r.db.Exec(ctx, query, t.ID, t.UserID, t.PairedTokenID, t.IssuedAt.UTC(), t.ExpiredAt.UTC(), t.Revoked)
	return mapConstraint(err)
}

func (r *tokensRepo) GetToken(ctx context.Context, id string) (domain.Token, error) {
	query := fmt.Sprintf(
		`SELECT id, user_id, %s, issued_at, expired_at, revoked FROM %s WHERE id = $1`,
		r.paired, r.table,
	)
	t := domain.Token{Kind: r.kind}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.UserID, &t.PairedTokenID, &t.IssuedAt, &t.ExpiredAt, &t.Revoked,
	)
	if err != nil {
		return domain.Token{}, mapNotFound(err)
	}
	t.IssuedAt = t.IssuedAt.UTC()
	t.ExpiredAt = t.ExpiredAt.UTC()
	return t, nil
}

func (r *tokensRepo) RevokeToken(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, fmt.Sprintf(`UPDATE %s SET revoked = TRUE WHERE id = $1`, r.table), id)
	if err != nil {
		return err
	}
	return requireOneRow(tag)
}

func (r *tokensRepo) RevokeTokenIfActive(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, fmt.Sprintf(`UPDATE %s SET revoked = TRUE WHERE id = $1 AND NOT revoked`, r.table), id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *tokensRepo) DeleteExpiredTokens(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE expired_at < $1`, r.table), before.UTC())
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
