package authsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/sessionauth/pkg/httpx"
)

// ============================================================================
// Status Codes
// ============================================================================

const (
	StatusTokenNotProvided     = "TOKEN_NOT_PROVIDED"
	StatusTokenMalformed       = "TOKEN_MALFORMED"
	StatusTokenBadSignature    = "TOKEN_BAD_SIGNATURE"
	StatusTokenExpired         = "TOKEN_EXPIRED"
	StatusTokenNotFound        = "TOKEN_NOT_FOUND"
	StatusTokenRevoked         = "TOKEN_REVOKED"
	StatusUnauthorized         = "UNAUTHORIZED"
	StatusForbidden            = "FORBIDDEN"
	StatusNotFound             = "NOT_FOUND"
	StatusEmailIsNotAvailable  = "EMAIL_IS_NOT_AVAILABLE"
	StatusPermissionsUnchanged = "PERMISSIONS_IS_NOT_CHANGED"
	StatusValidationError      = "VALIDATION_ERROR"
	StatusRateLimitExceeded    = "RATE_LIMIT_EXCEEDED"
	StatusInternalServerError  = "INTERNAL_SERVER_ERROR"
)

// ============================================================================
// APIError
// ============================================================================

// APIError is the error body every endpoint returns. It implements the error
// interface and is used both by the server (to write HTTP responses) and by
// the client (to represent failed calls).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Status is the machine readable code (e.g., "TOKEN_EXPIRED")
	Status string `json:"status"`

	// Description is a human-readable description of the error
	Description string `json:"description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Status, e.Description)
}

// Is matches on Status so callers can use errors.Is against the predefined
// values regardless of the description.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Status == t.Status && e.StatusCode == t.StatusCode
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, e)
}

// WithDescription returns a copy carrying a request specific description.
func (e *APIError) WithDescription(format string, args ...any) *APIError {
	return &APIError{
		StatusCode:  e.StatusCode,
		Status:      e.Status,
		Description: fmt.Sprintf(format, args...),
	}
}

// NewAPIError creates a new APIError with the given status code, status and description.
func NewAPIError(statusCode int, status, description string) *APIError {
	return &APIError{
		StatusCode:  statusCode,
		Status:      status,
		Description: description,
	}
}

// ============================================================================
// Predefined Errors
// ============================================================================

// Token failures, one per validation step.
var (
	ErrTokenNotProvided = &APIError{
		StatusCode:  http.StatusBadRequest,
		Status:      StatusTokenNotProvided,
		Description: "Token is not provided",
	}

	ErrTokenMalformed = &APIError{
		StatusCode:  http.StatusBadRequest,
		Status:      StatusTokenMalformed,
		Description: "Token is malformed",
	}

	ErrTokenBadSignature = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Status:      StatusTokenBadSignature,
		Description: "Token signature is invalid",
	}

	ErrTokenExpired = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Status:      StatusTokenExpired,
		Description: "Token is expired",
	}

	ErrTokenNotFound = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Status:      StatusTokenNotFound,
		Description: "Token is not found",
	}

	ErrTokenRevoked = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Status:      StatusTokenRevoked,
		Description: "Token is revoked",
	}
)

var (
	// ErrUnauthorized is returned when the email or password is wrong. The
	// server fills the email into the description.
	ErrUnauthorized = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Status:      StatusUnauthorized,
		Description: "User is not found or password is incorrect",
	}

	ErrNotAdministrator = &APIError{
		StatusCode:  http.StatusForbidden,
		Status:      StatusForbidden,
		Description: "Only administrators can change administrator permissions",
	}

	ErrLastAdministrator = &APIError{
		StatusCode:  http.StatusForbidden,
		Status:      StatusForbidden,
		Description: "Last administrator permissions can not be revoked!",
	}

	ErrAlreadyAdministrator = &APIError{
		StatusCode:  http.StatusBadRequest,
		Status:      StatusPermissionsUnchanged,
		Description: "User is already has administrator permissions",
	}

	ErrAlreadyNotAdministrator = &APIError{
		StatusCode:  http.StatusBadRequest,
		Status:      StatusPermissionsUnchanged,
		Description: "User is already has no administrator permissions",
	}

	ErrCreateForbidden = &APIError{
		StatusCode:  http.StatusForbidden,
		Status:      StatusForbidden,
		Description: "Only administrators can create new users",
	}

	ErrReadForbidden = &APIError{
		StatusCode:  http.StatusForbidden,
		Status:      StatusForbidden,
		Description: "Only administrators can find information about another users",
	}

	ErrDeleteForbidden = &APIError{
		StatusCode:  http.StatusForbidden,
		Status:      StatusForbidden,
		Description: "Only administrators can delete users",
	}

	ErrDeleteAdministrator = &APIError{
		StatusCode:  http.StatusForbidden,
		Status:      StatusForbidden,
		Description: "Administrators can not be deleted, revoke administrator permissions first",
	}

	// ErrUserNotFound carries the id in the description when written by the server.
	ErrUserNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Status:      StatusNotFound,
		Description: "User is not found.",
	}

	ErrRouteNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Status:      StatusNotFound,
		Description: "Resource is not found.",
	}

	// ErrEmailIsNotAvailable carries the email in the description when written by the server.
	ErrEmailIsNotAvailable = &APIError{
		StatusCode:  http.StatusBadRequest,
		Status:      StatusEmailIsNotAvailable,
		Description: "User with this email already exists",
	}

	ErrValidation = &APIError{
		StatusCode:  http.StatusUnprocessableEntity,
		Status:      StatusValidationError,
		Description: "request body is invalid",
	}

	ErrRateLimitExceeded = &APIError{
		StatusCode:  http.StatusTooManyRequests,
		Status:      StatusRateLimitExceeded,
		Description: "Too many requests. Please try again later.",
	}

	ErrInternalServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Status:      StatusInternalServerError,
		Description: "internal server error",
	}
)

// ============================================================================
// Error Parsing Helpers
// ============================================================================

// parseErrorResponse turns a non-2xx response into an *APIError. Bodies that
// are not in the APIError shape fall back to the HTTP status text.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Status != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Status:      StatusInternalServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
