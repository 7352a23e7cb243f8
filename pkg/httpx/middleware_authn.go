package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/sessionauth/pkg/slogx"
)

// AccessTokenHeader carries the raw access token, without a scheme prefix.
const AccessTokenHeader = "Access-Token"

// ErrTokenNotProvided is passed to the error writer when the header is
// missing or blank.
var ErrTokenNotProvided = errors.New("token not provided")

// Authenticator resolves a raw access token into a principal.
type Authenticator interface {
	AuthenticateAccess(ctx context.Context, token string) (Principal, error)
}

// ErrorWriter renders an authentication failure.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// AuthnMiddleware requires a valid access token in the Access-Token header
// and stores the resulting principal in the request context.
func AuthnMiddleware(a Authenticator, onError ErrorWriter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw := strings.TrimSpace(r.Header.Get(AccessTokenHeader))
			if raw == "" {
				onError(w, r, ErrTokenNotProvided)
				return
			}

			p, err := a.AuthenticateAccess(ctx, raw)
			if err != nil {
				slogx.FromContext(ctx).Debug("access token rejected", "err", err)
				onError(w, r, err)
				return
			}

			ctx = WithPrincipal(ctx, p)
			ctx = slogx.WithUserID(ctx, p.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
