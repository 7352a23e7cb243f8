package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/sessionauth/internal/auth/domain"
	httpapi "github.com/aussiebroadwan/sessionauth/internal/auth/http"
	"github.com/aussiebroadwan/sessionauth/internal/auth/service"
	"github.com/aussiebroadwan/sessionauth/internal/auth/store"
	"github.com/aussiebroadwan/sessionauth/internal/auth/store/drivers/postgres"
	"github.com/aussiebroadwan/sessionauth/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/sessionauth/pkg/cryptox"
	"github.com/aussiebroadwan/sessionauth/pkg/jwtx"
	"github.com/aussiebroadwan/sessionauth/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the auth service application with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	codec  *jwtx.Codec
	hasher cryptox.Hasher

	// Services
	validator           *service.TokenValidator
	sessionService      *service.SessionService
	userService         *service.UserService
	permissionService   *service.PermissionService
	bootstrapService    *service.BootstrapService
	housekeepingService *service.HousekeepingService // nil unless HOUSEKEEPING_INTERVAL is set

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "auth-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		hasher: cryptox.NewHasher(cfg.Salt),
	}

	codec, err := jwtx.NewCodec(cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token codec: %w", err)
	}
	app.codec = codec

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()

	if err := app.bootstrap(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Handler exposes the router, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	if app.housekeepingService != nil {
		app.housekeepingService.Start()
	}

	app.logger.Info("auth service starting", "port", app.cfg.Port, "version", BuildVersion, "db_driver", app.cfg.DBDriver)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down auth service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.housekeepingService != nil {
		app.housekeepingService.Stop()
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("auth service stopped")
	return nil
}

// initDatabase opens the configured driver and applies migrations
func (app *Application) initDatabase() error {
	var (
		db  store.Store
		err error
	)
	switch app.cfg.DBDriver {
	case DriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		db, err = postgres.NewStore(ctx, app.cfg.DBURL)
	default:
		host := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", app.cfg.DBFile)
		db, err = sqlite.NewStore(host)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DBDriver)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.validator = &service.TokenValidator{Store: app.db, Codec: app.codec}

	app.sessionService = &service.SessionService{
		Store:       app.db,
		Codec:       app.codec,
		Credentials: &service.CredentialVerifier{Store: app.db, Hasher: app.hasher},
		Validator:   app.validator,
		Revoker:     &service.SessionRevoker{Store: app.db},
		AccessTTL:   app.cfg.AccessTTL(),
		RefreshTTL:  app.cfg.RefreshTTL(),
	}

	app.userService = &service.UserService{Store: app.db, Hasher: app.hasher}
	app.permissionService = &service.PermissionService{Store: app.db}
	app.bootstrapService = &service.BootstrapService{Store: app.db, Hasher: app.hasher}

	if app.cfg.HousekeepingInterval > 0 {
		app.housekeepingService = service.NewHousekeepingService(
			app.db,
			app.logger,
			app.cfg.HousekeepingInterval,
			app.cfg.TokenRetention,
		)
	}
}

// bootstrap seeds the default administrator into an empty database
func (app *Application) bootstrap() error {
	ctx := slogx.WithContext(context.Background(), app.logger)
	_, err := app.bootstrapService.EnsureDefaultAdmin(ctx, domain.BootstrapData{
		AdminEmail:     app.cfg.Admin.Email,
		AdminPassword:  app.cfg.Admin.Password,
		AdminFirstname: app.cfg.Admin.Firstname,
		AdminSurname:   app.cfg.Admin.Surname,
	})
	if err != nil {
		return fmt.Errorf("failed to create default administrator: %w", err)
	}
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	// Wire services to router
	router.TokenValidator = app.validator
	router.SessionService = app.sessionService
	router.UserService = app.userService
	router.PermissionService = app.permissionService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
