package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/sessionauth/internal/auth/domain"
)

type tokensRepo struct {
	db   DBTX
	kind domain.TokenKind
	q    tokenQueries
}

func newTokensRepo(db DBTX, kind domain.TokenKind) *tokensRepo {
	return &tokensRepo{db: db, kind: kind, q: tokenQueriesFor(kind)}
}

func (r *tokensRepo) CreateToken(ctx context.Context, t domain.Token) error {
	_, err := r.db.ExecContext(ctx, r.q.create,
		t.ID, t.UserID, t.PairedTokenID, utc(t.IssuedAt), utc(t.ExpiredAt), t.Revoked,
	)
	return mapConstraint(err)
}

func (r *tokensRepo) GetToken(ctx context.Context, id string) (domain.Token, error) {
	t := domain.Token{Kind: r.kind}
	err := r.db.QueryRowContext(ctx, r.q.get, id).Scan(
		&t.ID, &t.UserID, &t.PairedTokenID, &t.IssuedAt, &t.ExpiredAt, &t.Revoked,
	)
	if err != nil {
		return domain.Token{}, mapNotFound(err)
	}
	t.IssuedAt = utc(t.IssuedAt)
	t.ExpiredAt = utc(t.ExpiredAt)
	return t, nil
}

func (r *tokensRepo) RevokeToken(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.q.revoke, id)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

func (r *tokensRepo) RevokeTokenIfActive(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.q.revokeActive, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *tokensRepo) DeleteExpiredTokens(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.q.deleteExpired, utc(before))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
