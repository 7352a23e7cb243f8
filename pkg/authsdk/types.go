package authsdk

// ============================================================================
// Session Types
// ============================================================================

// AuthorizeRequest is the body of POST /v1/authorize.
type AuthorizeRequest struct {
	Email    string `json:"email" example:"admin@example.com"`
	Password string `json:"password" example:"s3cret"`
}

// RefreshRequest is the body of POST /v1/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenPair is returned by authorize and refresh. Both tokens are HS256 JWTs
// whose claims are {id, user_id, issued_at, expired_at}.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// StatusResponse is the body of endpoints that only report an outcome.
type StatusResponse struct {
	Status string `json:"status" example:"Successfully logged out"`
}

// ============================================================================
// User Types
// ============================================================================

// CreateUserRequest is the body of POST /v1/users.
type CreateUserRequest struct {
	Email      string  `json:"email" example:"jane@example.com"`
	Password   string  `json:"password" example:"s3cret"`
	Firstname  string  `json:"firstname" example:"Jane"`
	Middlename *string `json:"middlename,omitempty" example:"Q"`
	Surname    string  `json:"surname" example:"Doe"`
}

// CreateUserResponse is returned by POST /v1/users.
type CreateUserResponse struct {
	Status string `json:"status" example:"User successfully created"`
	UserID string `json:"user_id" example:"3f1c1f4e-9a52-4d8b-8f3e-1f5e8b1e2c7a"`
}

// UserResponse is returned by GET /v1/users/{id}.
type UserResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Firstname  string  `json:"firstname"`
	Middlename *string `json:"middlename"`
	Surname    string  `json:"surname"`
	IsAdmin    bool    `json:"is_admin"`
}

// PermissionChangeResponse is returned by the admin-permissions endpoints.
type PermissionChangeResponse struct {
	Status  string `json:"status" example:"Administrator permissions for Jane Doe is successfully changed"`
	IsAdmin bool   `json:"is_admin"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`
}
