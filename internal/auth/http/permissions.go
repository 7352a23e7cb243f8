package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/sessionauth/internal/auth/domain"
	"github.com/aussiebroadwan/sessionauth/internal/auth/service"
	"github.com/aussiebroadwan/sessionauth/pkg/authsdk"
	"github.com/aussiebroadwan/sessionauth/pkg/httpx"
)

// PermissionsHandler serves PATCH /v1/users/admin-permissions/{id}/{action}.
type PermissionsHandler struct {
	PermissionService *service.PermissionService
}

// ServeHTTP godoc
//
//	@Summary		Change administrator permissions
//	@Description	Grants or revokes administrator permissions. Administrators only.
//	@Description	The last administrator can not be revoked.
//	@Tags			Users
//	@Produce		json
//	@Security		AccessToken
//	@Param			id		path		string	true	"User id"
//	@Param			action	path		string	true	"Action"	Enums(grant, revoke)
//	@Success		200		{object}	authsdk.PermissionChangeResponse
//	@Failure		400		{object}	authsdk.APIError	"PERMISSIONS_IS_NOT_CHANGED"
//	@Failure		401		{object}	authsdk.APIError	"TOKEN_*"
//	@Failure		403		{object}	authsdk.APIError	"FORBIDDEN"
//	@Failure		404		{object}	authsdk.APIError	"NOT_FOUND"
//	@Router			/v1/users/admin-permissions/{id}/{action} [patch].
func (h *PermissionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	action, ok := domain.ParsePermissionAction(r.PathValue("action"))
	if !ok {
		authsdk.ErrRouteNotFound.WriteError(w)
		return
	}

	change, err := h.PermissionService.ChangeAdminPermissions(r.Context(), actorFrom(r), id, action)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			userNotFound(w, id)
			return
		}
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.PermissionChangeResponse{
		Status:  "Administrator permissions for " + change.User.FullName() + " is successfully changed",
		IsAdmin: change.IsAdmin,
	})
}
