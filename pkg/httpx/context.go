package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID  ctxKey = "user_id"
	CtxKeyTokenID ctxKey = "token_id"
)

// Principal is the identity behind an authenticated bearer token.
type Principal struct {
	UserID  string
	TokenID string
}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, p.UserID)
	return context.WithValue(ctx, CtxKeyTokenID, p.TokenID)
}

// PrincipalFromContext reports false when the request did not pass through
// AuthnMiddleware.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	userID, _ := ctx.Value(CtxKeyUserID).(string)
	tokenID, _ := ctx.Value(CtxKeyTokenID).(string)
	if userID == "" {
		return Principal{}, false
	}
	return Principal{UserID: userID, TokenID: tokenID}, true
}
