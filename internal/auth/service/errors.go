package service

import "errors"

// Token validation failures, in the order they are checked.
var (
	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenBadSignature = errors.New("token signature invalid")
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenNotFound     = errors.New("token not found")
	ErrTokenRevoked      = errors.New("token revoked")
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Administrator permission changes.
var (
	ErrNotAdministrator        = errors.New("actor is not an administrator")
	ErrLastAdministrator       = errors.New("last administrator cannot be revoked")
	ErrAlreadyAdministrator    = errors.New("user already has administrator permissions")
	ErrAlreadyNotAdministrator = errors.New("user already has no administrator permissions")
)

// User administration.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrCreateForbidden      = errors.New("only administrators can create users")
	ErrReadForbidden        = errors.New("only administrators can read other users")
	ErrDeleteForbidden      = errors.New("only administrators can delete users")
	ErrDeleteAdministrator  = errors.New("administrators cannot be deleted")
	ErrUnknownPermissionAct = errors.New("unknown permission action")
)
