package domain

// PermissionAction is the verb of an administrator permission change.
type PermissionAction string

const (
	GrantAdmin  PermissionAction = "grant"
	RevokeAdmin PermissionAction = "revoke"
)

func ParsePermissionAction(s string) (PermissionAction, bool) {
	switch a := PermissionAction(s); a {
	case GrantAdmin, RevokeAdmin:
		return a, true
	}
	return "", false
}

// Wants reports the is_admin value the action asks for.
func (a PermissionAction) Wants() bool { return a == GrantAdmin }

// PermissionChange is the outcome of a successful change.
type PermissionChange struct {
	User    User
	IsAdmin bool
}
