package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/sessionauth/internal/auth/domain"
	"github.com/aussiebroadwan/sessionauth/internal/auth/service"
	"github.com/aussiebroadwan/sessionauth/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/sessionauth/pkg/authsdk"
	"github.com/aussiebroadwan/sessionauth/pkg/cryptox"
	"github.com/aussiebroadwan/sessionauth/pkg/httpx"
	"github.com/aussiebroadwan/sessionauth/pkg/jwtx"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "DefaultJSONWebTokenSignatureSecret"
	testSalt     = "DefaultPasswordHashSalt"
	testPassword = "hunter2hunter2"
	adminEmail   = "admin@example.com"
	userEmail    = "user@example.com"
)

type testServer struct {
	t      *testing.T
	router *Router
	store  *sqlite.Store
	codec  *jwtx.Codec
	admin  domain.User
	user   domain.User
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	codec, err := jwtx.NewCodec(testSecret)
	require.NoError(t, err)
	hasher := cryptox.NewHasher(testSalt)

	validator := &service.TokenValidator{Store: s, Codec: codec}
	r := NewRouter("test", s, nil)
	r.TokenValidator = validator
	r.SessionService = &service.SessionService{
		Store:       s,
		Codec:       codec,
		Credentials: &service.CredentialVerifier{Store: s, Hasher: hasher},
		Validator:   validator,
		Revoker:     &service.SessionRevoker{Store: s},
		AccessTTL:   time.Hour,
		RefreshTTL:  24 * time.Hour,
	}
	r.UserService = &service.UserService{Store: s, Hasher: hasher}
	r.PermissionService = &service.PermissionService{Store: s}
	r.ApplyRoutes()

	ts := &testServer{t: t, router: r, store: s, codec: codec}
	ts.admin = ts.addUser(adminEmail, true, hasher)
	ts.user = ts.addUser(userEmail, false, hasher)
	return ts
}

func (ts *testServer) addUser(email string, admin bool, hasher cryptox.Hasher) domain.User {
	ts.t.Helper()
	now := time.Now().UTC()
	u := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Firstname:    "Jane",
		Surname:      "Doe",
		PasswordHash: hasher.Hash(testPassword),
		IsAdmin:      admin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(ts.t, ts.store.Users().CreateUser(context.Background(), u))
	return u
}

func (ts *testServer) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	ts.t.Helper()

	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(ts.t, err)
		rdr = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, rdr)
	if token != "" {
		req.Header.Set(authsdk.AccessTokenHeader, token)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) login(email string) authsdk.TokenPair {
	ts.t.Helper()
	rec := ts.do(http.MethodPost, "/v1/authorize", authsdk.AuthorizeRequest{Email: email, Password: testPassword}, "")
	require.Equal(ts.t, http.StatusOK, rec.Code, rec.Body.String())

	var pair authsdk.TokenPair
	require.NoError(ts.t, json.Unmarshal(rec.Body.Bytes(), &pair))
	return pair
}

func requireAPIError(t *testing.T, rec *httptest.ResponseRecorder, want *authsdk.APIError) {
	t.Helper()
	require.Equal(t, want.StatusCode, rec.Code, rec.Body.String())

	var got authsdk.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, want.Status, got.Status)
}

func TestAuthorize(t *testing.T) {
	ts := newTestServer(t)

	t.Run("success", func(t *testing.T) {
		pair := ts.login(adminEmail)
		require.NotEmpty(t, pair.AccessToken)
		require.NotEmpty(t, pair.RefreshToken)

		access, err := ts.codec.Decode(pair.AccessToken)
		require.NoError(t, err)
		require.Equal(t, ts.admin.ID, access.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := ts.do(http.MethodPost, "/v1/authorize", authsdk.AuthorizeRequest{Email: userEmail, Password: "nope"}, "")
		requireAPIError(t, rec, authsdk.ErrUnauthorized)
		require.Contains(t, rec.Body.String(), "User with email user@example.com is not found or password is incorrect")
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := ts.do(http.MethodPost, "/v1/authorize", authsdk.AuthorizeRequest{Email: "ghost@example.com", Password: "x"}, "")
		requireAPIError(t, rec, authsdk.ErrUnauthorized)
	})

	t.Run("validation", func(t *testing.T) {
		for name, body := range map[string]any{
			"not json":      "{",
			"empty body":    "",
			"missing email": map[string]string{"password": "x"},
			"wrong type":    map[string]any{"email": 42, "password": "x"},
		} {
			rec := ts.do(http.MethodPost, "/v1/authorize", body, "")
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code, name)
			require.Contains(t, rec.Body.String(), authsdk.StatusValidationError, name)
		}
	})
}

func TestRefreshRotatesOnce(t *testing.T) {
	ts := newTestServer(t)
	old := ts.login(userEmail)

	rec := ts.do(http.MethodPost, "/v1/refresh", authsdk.RefreshRequest{RefreshToken: old.RefreshToken}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var fresh authsdk.TokenPair
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fresh))
	require.NotEqual(t, old.RefreshToken, fresh.RefreshToken)

	rec = ts.do(http.MethodPost, "/v1/refresh", authsdk.RefreshRequest{RefreshToken: old.RefreshToken}, "")
	requireAPIError(t, rec, authsdk.ErrTokenRevoked)

	rec = ts.do(http.MethodGet, "/v1/users/me", nil, old.AccessToken)
	requireAPIError(t, rec, authsdk.ErrTokenRevoked)

	rec = ts.do(http.MethodGet, "/v1/users/me", nil, fresh.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionRoutesOnlyLimitFailures(t *testing.T) {
	ts := newTestServer(t)
	n := 3 * httpx.StrictLimit.Burst

	var pair authsdk.TokenPair
	for range n {
		pair = ts.login(adminEmail)
	}

	for i := range n {
		rec := ts.do(http.MethodPost, "/v1/refresh", authsdk.RefreshRequest{RefreshToken: pair.RefreshToken}, "")
		require.Equal(t, http.StatusOK, rec.Code, "refresh %d: %s", i+1, rec.Body.String())
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))
	}

	wrong := authsdk.AuthorizeRequest{Email: userEmail, Password: "wrong"}
	for range httpx.StrictLimit.Burst {
		requireAPIError(t, ts.do(http.MethodPost, "/v1/authorize", wrong, ""), authsdk.ErrUnauthorized)
	}
	requireAPIError(t, ts.do(http.MethodPost, "/v1/authorize", wrong, ""), authsdk.ErrRateLimitExceeded)

	// Other emails from the same address keep their own budget.
	ts.login(adminEmail)
}

func TestRefreshErrors(t *testing.T) {
	ts := newTestServer(t)
	pair := ts.login(userEmail)

	tests := []struct {
		name string
		body any
		want *authsdk.APIError
	}{
		{"missing field", map[string]string{}, authsdk.ErrTokenNotProvided},
		{"malformed", authsdk.RefreshRequest{RefreshToken: "a.b"}, authsdk.ErrTokenMalformed},
		{"access token as refresh", authsdk.RefreshRequest{RefreshToken: pair.AccessToken}, authsdk.ErrTokenNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireAPIError(t, ts.do(http.MethodPost, "/v1/refresh", tt.body, ""), tt.want)
		})
	}
}

func TestTokenErrorsOnAuthenticatedRoute(t *testing.T) {
	ts := newTestServer(t)
	pair := ts.login(userEmail)

	other, err := jwtx.NewCodec("another-secret")
	require.NoError(t, err)
	claims, err := ts.codec.Decode(pair.AccessToken)
	require.NoError(t, err)
	forged, err := other.Encode(claims)
	require.NoError(t, err)

	past := time.Now().Add(-2 * time.Hour)
	expired, err := ts.codec.Encode(jwtx.NewClaims(uuid.NewString(), ts.user.ID, past, past.Add(time.Minute)))
	require.NoError(t, err)

	unknown, err := ts.codec.Encode(jwtx.NewClaims(uuid.NewString(), ts.user.ID, time.Now(), time.Now().Add(time.Hour)))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  *authsdk.APIError
	}{
		{"not provided", "", authsdk.ErrTokenNotProvided},
		{"malformed", "garbage", authsdk.ErrTokenMalformed},
		{"bad signature", forged, authsdk.ErrTokenBadSignature},
		{"expired", expired, authsdk.ErrTokenExpired},
		{"not found", unknown, authsdk.ErrTokenNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireAPIError(t, ts.do(http.MethodGet, "/v1/users/me", nil, tt.token), tt.want)
		})
	}
}

func TestLogout(t *testing.T) {
	ts := newTestServer(t)
	pair := ts.login(userEmail)

	rec := ts.do(http.MethodDelete, "/v1/logout", nil, "")
	requireAPIError(t, rec, authsdk.ErrTokenNotProvided)

	rec = ts.do(http.MethodDelete, "/v1/logout", nil, pair.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"Successfully logged out"}`, rec.Body.String())

	requireAPIError(t, ts.do(http.MethodDelete, "/v1/logout", nil, pair.AccessToken), authsdk.ErrTokenRevoked)
	requireAPIError(t,
		ts.do(http.MethodPost, "/v1/refresh", authsdk.RefreshRequest{RefreshToken: pair.RefreshToken}, ""),
		authsdk.ErrTokenRevoked,
	)
}

func TestUsers(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.login(adminEmail)
	user := ts.login(userEmail)

	t.Run("get me", func(t *testing.T) {
		rec := ts.do(http.MethodGet, "/v1/users/me", nil, user.AccessToken)
		require.Equal(t, http.StatusOK, rec.Code)

		var got authsdk.UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Equal(t, ts.user.ID, got.ID)
		require.Equal(t, userEmail, got.Email)
		require.False(t, got.IsAdmin)
		require.Nil(t, got.Middlename)
	})

	t.Run("non admin reading another user", func(t *testing.T) {
		rec := ts.do(http.MethodGet, "/v1/users/"+ts.admin.ID, nil, user.AccessToken)
		requireAPIError(t, rec, authsdk.ErrReadForbidden)
	})

	t.Run("missing user", func(t *testing.T) {
		id := uuid.NewString()
		rec := ts.do(http.MethodGet, "/v1/users/"+id, nil, admin.AccessToken)
		requireAPIError(t, rec, authsdk.ErrUserNotFound)
		require.Contains(t, rec.Body.String(), "User with id "+id+" is not found.")
	})

	var createdID string
	t.Run("create", func(t *testing.T) {
		body := authsdk.CreateUserRequest{
			Email: "new@example.com", Password: "pw", Firstname: "New", Surname: "Person",
		}
		rec := ts.do(http.MethodPost, "/v1/users", body, admin.AccessToken)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var out authsdk.CreateUserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		require.Equal(t, "User successfully created", out.Status)
		createdID = out.UserID

		rec = ts.do(http.MethodPost, "/v1/users", body, admin.AccessToken)
		requireAPIError(t, rec, authsdk.ErrEmailIsNotAvailable)
		require.Contains(t, rec.Body.String(), "User with email new@example.com already exists")

		rec = ts.do(http.MethodPost, "/v1/users", body, user.AccessToken)
		requireAPIError(t, rec, authsdk.ErrCreateForbidden)

		rec = ts.do(http.MethodPost, "/v1/users", map[string]string{"email": "x@example.com"}, admin.AccessToken)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		requireAPIError(t, ts.do(http.MethodDelete, "/v1/users/"+createdID, nil, user.AccessToken), authsdk.ErrDeleteForbidden)
		requireAPIError(t, ts.do(http.MethodDelete, "/v1/users/"+ts.admin.ID, nil, admin.AccessToken), authsdk.ErrDeleteAdministrator)

		rec := ts.do(http.MethodDelete, "/v1/users/"+createdID, nil, admin.AccessToken)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"status":"User successfully deleted"}`, rec.Body.String())

		requireAPIError(t, ts.do(http.MethodDelete, "/v1/users/"+createdID, nil, admin.AccessToken), authsdk.ErrUserNotFound)
	})
}

func TestAdminPermissions(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.login(adminEmail)
	user := ts.login(userEmail)

	path := func(id, action string) string { return "/v1/users/admin-permissions/" + id + "/" + action }

	requireAPIError(t, ts.do(http.MethodPatch, path(ts.admin.ID, "revoke"), nil, user.AccessToken), authsdk.ErrNotAdministrator)
	requireAPIError(t, ts.do(http.MethodPatch, path(ts.admin.ID, "revoke"), nil, admin.AccessToken), authsdk.ErrLastAdministrator)
	requireAPIError(t, ts.do(http.MethodPatch, path(ts.user.ID, "revoke"), nil, admin.AccessToken), authsdk.ErrAlreadyNotAdministrator)
	requireAPIError(t, ts.do(http.MethodPatch, path(uuid.NewString(), "grant"), nil, admin.AccessToken), authsdk.ErrUserNotFound)
	requireAPIError(t, ts.do(http.MethodPatch, path(ts.user.ID, "promote"), nil, admin.AccessToken), authsdk.ErrRouteNotFound)

	rec := ts.do(http.MethodPatch, path(ts.user.ID, "grant"), nil, admin.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.JSONEq(t,
		`{"status":"Administrator permissions for Jane Doe is successfully changed","is_admin":true}`,
		rec.Body.String(),
	)

	requireAPIError(t, ts.do(http.MethodPatch, path(ts.user.ID, "grant"), nil, admin.AccessToken), authsdk.ErrAlreadyAdministrator)

	rec = ts.do(http.MethodPatch, path(ts.admin.ID, "revoke"), nil, user.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Contains(t, rec.Body.String(), `"is_admin":false`)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/livez", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(http.MethodGet, "/readyz", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var health authsdk.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "ok", health.Checks.Database)
	require.Equal(t, "test", health.Version)

	require.NoError(t, ts.store.Close())
	rec = ts.do(http.MethodGet, "/readyz", nil, "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(http.MethodGet, "/v2/nothing", nil, "")
	requireAPIError(t, rec, authsdk.ErrRouteNotFound)
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
