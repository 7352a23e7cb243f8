package http

import (
	"net/http"

	"github.com/aussiebroadwan/sessionauth/internal/auth/service"
	"github.com/aussiebroadwan/sessionauth/pkg/authsdk"
	"github.com/aussiebroadwan/sessionauth/pkg/httpx"
)

// RefreshHandler serves POST /v1/refresh. The presented refresh token and
// its access token are revoked once the new pair is stored.
type RefreshHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Refresh
//	@Description	Rotates a refresh token into a new token pair and revokes the old pair.
//	@Description	A refresh token can be rotated exactly once.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			body	body		authsdk.RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	authsdk.TokenPair
//	@Failure		400		{object}	authsdk.APIError	"TOKEN_NOT_PROVIDED, TOKEN_MALFORMED"
//	@Failure		401		{object}	authsdk.APIError	"TOKEN_BAD_SIGNATURE, TOKEN_EXPIRED, TOKEN_NOT_FOUND, TOKEN_REVOKED"
//	@Failure		422		{object}	authsdk.APIError	"VALIDATION_ERROR"
//	@Router			/v1/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req authsdk.RefreshRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.RefreshToken == "" {
		writeError(w, r, httpx.ErrTokenNotProvided)
		return
	}

	pair, err := h.SessionService.Rotate(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}
