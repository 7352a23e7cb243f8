package http

import (
	"net/http"

	"github.com/aussiebroadwan/sessionauth/internal/auth/service"
	"github.com/aussiebroadwan/sessionauth/pkg/authsdk"
	"github.com/aussiebroadwan/sessionauth/pkg/httpx"
)

// LogoutHandler serves DELETE /v1/logout. The route is not behind
// AuthnMiddleware; Logout validates the header token itself.
type LogoutHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Logout
//	@Description	Revokes the access token in the header and the refresh token issued with it.
//	@Tags			Session
//	@Produce		json
//	@Security		AccessToken
//	@Success		200	{object}	authsdk.StatusResponse
//	@Failure		400	{object}	authsdk.APIError	"TOKEN_NOT_PROVIDED, TOKEN_MALFORMED"
//	@Failure		401	{object}	authsdk.APIError	"TOKEN_BAD_SIGNATURE, TOKEN_EXPIRED, TOKEN_NOT_FOUND, TOKEN_REVOKED"
//	@Router			/v1/logout [delete].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token, err := accessTokenFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.SessionService.Logout(r.Context(), token); err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.StatusResponse{Status: "Successfully logged out"})
}
