package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/sessionauth/internal/auth/domain"
	"github.com/aussiebroadwan/sessionauth/internal/auth/service"
	"github.com/aussiebroadwan/sessionauth/pkg/authsdk"
	"github.com/aussiebroadwan/sessionauth/pkg/httpx"
)

// UsersHandler serves the /v1/users routes. Every route requires an access
// token.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleCreate godoc
//
//	@Summary		Create user
//	@Description	Creates a non-administrator account. Administrators only.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		AccessToken
//	@Param			body	body		authsdk.CreateUserRequest	true	"New user"
//	@Success		200		{object}	authsdk.CreateUserResponse
//	@Failure		400		{object}	authsdk.APIError	"EMAIL_IS_NOT_AVAILABLE, TOKEN_NOT_PROVIDED, TOKEN_MALFORMED"
//	@Failure		401		{object}	authsdk.APIError	"TOKEN_*"
//	@Failure		403		{object}	authsdk.APIError	"FORBIDDEN"
//	@Failure		422		{object}	authsdk.APIError	"VALIDATION_ERROR"
//	@Router			/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req authsdk.CreateUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if field := missingField(req); field != "" {
		validationError(w, "field %q is required", field)
		return
	}

	u, err := h.UserService.CreateUser(r.Context(), actorFrom(r), domain.NewUser{
		Email:      req.Email,
		Password:   req.Password,
		Firstname:  req.Firstname,
		Middlename: req.Middlename,
		Surname:    req.Surname,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			authsdk.ErrEmailIsNotAvailable.
				WithDescription("User with email %s already exists", req.Email).
				WriteError(w)
			return
		}
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.CreateUserResponse{
		Status: "User successfully created",
		UserID: u.ID,
	})
}

// HandleGet godoc
//
//	@Summary		Get user
//	@Description	Returns a user. Use "me" for the caller. Only administrators can read other users.
//	@Tags			Users
//	@Produce		json
//	@Security		AccessToken
//	@Param			id	path		string	true	"User id or me"
//	@Success		200	{object}	authsdk.UserResponse
//	@Failure		401	{object}	authsdk.APIError	"TOKEN_*"
//	@Failure		403	{object}	authsdk.APIError	"FORBIDDEN"
//	@Failure		404	{object}	authsdk.APIError	"NOT_FOUND"
//	@Router			/v1/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	u, err := h.UserService.GetUser(r.Context(), actorFrom(r), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			userNotFound(w, id)
			return
		}
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Firstname:  u.Firstname,
		Middlename: u.Middlename,
		Surname:    u.Surname,
		IsAdmin:    u.IsAdmin,
	})
}

// HandleDelete godoc
//
//	@Summary		Delete user
//	@Description	Deletes a non-administrator account and all of its tokens. Administrators only.
//	@Tags			Users
//	@Produce		json
//	@Security		AccessToken
//	@Param			id	path		string	true	"User id"
//	@Success		200	{object}	authsdk.StatusResponse
//	@Failure		401	{object}	authsdk.APIError	"TOKEN_*"
//	@Failure		403	{object}	authsdk.APIError	"FORBIDDEN"
//	@Failure		404	{object}	authsdk.APIError	"NOT_FOUND"
//	@Router			/v1/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.UserService.DeleteUser(r.Context(), actorFrom(r), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			userNotFound(w, id)
			return
		}
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.StatusResponse{Status: "User successfully deleted"})
}

func userNotFound(w http.ResponseWriter, id string) {
	authsdk.ErrUserNotFound.WithDescription("User with id %s is not found.", id).WriteError(w)
}

// missingField names the first required field that is empty.
func missingField(req authsdk.CreateUserRequest) string {
	switch {
	case strings.TrimSpace(req.Email) == "":
		return "email"
	case req.Password == "":
		return "password"
	case strings.TrimSpace(req.Firstname) == "":
		return "firstname"
	case strings.TrimSpace(req.Surname) == "":
		return "surname"
	}
	return ""
}
