package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/sessionauth/internal/auth/service"
	"github.com/aussiebroadwan/sessionauth/pkg/authsdk"
	"github.com/aussiebroadwan/sessionauth/pkg/httpx"
	"github.com/aussiebroadwan/sessionauth/pkg/slogx"
)

// errorTable maps service sentinels to their fixed responses. Errors whose
// description depends on the request (unknown email, missing user id, taken
// email) are rendered by the handlers before falling back to writeError.
var errorTable = []struct {
	err error
	api *authsdk.APIError
}{
	{httpx.ErrTokenNotProvided, authsdk.ErrTokenNotProvided},
	{service.ErrTokenMalformed, authsdk.ErrTokenMalformed},
	{service.ErrTokenBadSignature, authsdk.ErrTokenBadSignature},
	{service.ErrTokenExpired, authsdk.ErrTokenExpired},
	{service.ErrTokenNotFound, authsdk.ErrTokenNotFound},
	{service.ErrTokenRevoked, authsdk.ErrTokenRevoked},

	{service.ErrInvalidCredentials, authsdk.ErrUnauthorized},

	{service.ErrNotAdministrator, authsdk.ErrNotAdministrator},
	{service.ErrLastAdministrator, authsdk.ErrLastAdministrator},
	{service.ErrAlreadyAdministrator, authsdk.ErrAlreadyAdministrator},
	{service.ErrAlreadyNotAdministrator, authsdk.ErrAlreadyNotAdministrator},
	{service.ErrUnknownPermissionAct, authsdk.ErrRouteNotFound},

	{service.ErrUserNotFound, authsdk.ErrUserNotFound},
	{service.ErrEmailTaken, authsdk.ErrEmailIsNotAvailable},
	{service.ErrCreateForbidden, authsdk.ErrCreateForbidden},
	{service.ErrReadForbidden, authsdk.ErrReadForbidden},
	{service.ErrDeleteForbidden, authsdk.ErrDeleteForbidden},
	{service.ErrDeleteAdministrator, authsdk.ErrDeleteAdministrator},
}

func toAPIError(err error) *authsdk.APIError {
	for _, e := range errorTable {
		if errors.Is(err, e.err) {
			return e.api
		}
	}
	if errors.Is(err, httpx.ErrInvalidBody) {
		return authsdk.ErrValidation.WithDescription("%s", err.Error())
	}
	return nil
}

// writeError renders err. Anything without a mapping is logged and hidden
// behind a 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if apiErr := toAPIError(err); apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	slogx.FromContext(r.Context()).Error("request failed", "err", err)
	authsdk.ErrInternalServerError.WriteError(w)
}

func validationError(w http.ResponseWriter, format string, args ...any) {
	authsdk.ErrValidation.WithDescription(format, args...).WriteError(w)
}
