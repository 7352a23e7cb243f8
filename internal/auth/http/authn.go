package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/sessionauth/internal/auth/domain"
	"github.com/aussiebroadwan/sessionauth/internal/auth/service"
	"github.com/aussiebroadwan/sessionauth/pkg/httpx"
)

// accessAuthenticator adapts the token validator to httpx.AuthnMiddleware.
type accessAuthenticator struct {
	validator *service.TokenValidator
}

func (a accessAuthenticator) AuthenticateAccess(ctx context.Context, token string) (httpx.Principal, error) {
	identity, err := a.validator.Validate(ctx, token, domain.AccessToken)
	if err != nil {
		return httpx.Principal{}, err
	}
	return httpx.Principal{UserID: identity.UserID, TokenID: identity.Token.ID}, nil
}

// accessTokenFrom reads the raw Access-Token header.
func accessTokenFrom(r *http.Request) (string, error) {
	raw := strings.TrimSpace(r.Header.Get(httpx.AccessTokenHeader))
	if raw == "" {
		return "", httpx.ErrTokenNotProvided
	}
	return raw, nil
}

// actorFrom returns the authenticated user id. Routes that call it are
// always behind AuthnMiddleware.
func actorFrom(r *http.Request) string {
	p, _ := httpx.PrincipalFromContext(r.Context())
	return p.UserID
}
