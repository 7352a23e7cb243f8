package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/sessionauth/internal/auth/service"
	"github.com/aussiebroadwan/sessionauth/internal/auth/store"
	"github.com/aussiebroadwan/sessionauth/pkg/authsdk"
	"github.com/aussiebroadwan/sessionauth/pkg/httpx"
	"github.com/aussiebroadwan/sessionauth/pkg/slogx"

	_ "github.com/aussiebroadwan/sessionauth/api/auth" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	TokenValidator    *service.TokenValidator
	SessionService    *service.SessionService
	UserService       *service.UserService
	PermissionService *service.PermissionService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSession()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpx.Chain(httpSwagger.Handler(),
		httpx.RateLimitByIP(httpx.PublicLimit),
	))
	r.Mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		authsdk.ErrRouteNotFound.WriteError(w)
	}))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Session Token Authority API
//	@version		0.1.0
//	@description	Issues paired access/refresh tokens, validates and rotates them, and manages administrator permissions.
//	@description
//	@description				Tokens are HS256 JWTs with the claims {id, user_id, issued_at, expired_at}.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/sessionauth
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	AccessToken
//	@in							header
//	@name						Access-Token
//	@description				Raw JWT access token, no scheme prefix.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) authenticated(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(accessAuthenticator{validator: r.TokenValidator}, writeError),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerSession() {
	// Session routes charge only rejected attempts: failed logins by IP + email
	// to slow credential stuffing, failed refreshes by IP to slow token guessing
	r.Mux.Handle("POST /v1/authorize",
		httpx.Chain(&AuthorizeHandler{SessionService: r.SessionService},
			httpx.RateLimitFailuresByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	r.Mux.Handle("POST /v1/refresh",
		httpx.Chain(&RefreshHandler{SessionService: r.SessionService},
			httpx.RateLimitFailuresByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("DELETE /v1/logout",
		httpx.Chain(&LogoutHandler{SessionService: r.SessionService},
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}
	perms := &PermissionsHandler{PermissionService: r.PermissionService}

	r.Mux.Handle("POST /v1/users", r.authenticated(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/users/{id}", r.authenticated(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/users/{id}", r.authenticated(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/users/admin-permissions/{id}/{action}", r.authenticated(perms, httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - monitoring systems may poll frequently
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
