package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/sessionauth/internal/auth/service"
	"github.com/aussiebroadwan/sessionauth/pkg/authsdk"
	"github.com/aussiebroadwan/sessionauth/pkg/httpx"
	"github.com/aussiebroadwan/sessionauth/pkg/slogx"
)

// AuthorizeHandler serves POST /v1/authorize.
type AuthorizeHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Authorize
//	@Description	Exchanges an email and password for a new access/refresh token pair.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			body	body		authsdk.AuthorizeRequest	true	"Credentials"
//	@Success		200		{object}	authsdk.TokenPair
//	@Failure		401		{object}	authsdk.APIError	"UNAUTHORIZED"
//	@Failure		422		{object}	authsdk.APIError	"VALIDATION_ERROR"
//	@Failure		429		{object}	authsdk.APIError	"RATE_LIMIT_EXCEEDED"
//	@Router			/v1/authorize [post].
func (h *AuthorizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.AuthorizeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Email == "" {
		validationError(w, "field %q is required", "email")
		return
	}
	if req.Password == "" {
		validationError(w, "field %q is required", "password")
		return
	}

	pair, err := h.SessionService.Issue(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Info("authorize rejected", "email", req.Email)
			authsdk.ErrUnauthorized.
				WithDescription("User with email %s is not found or password is incorrect", req.Email).
				WriteError(w)
			return
		}
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}
