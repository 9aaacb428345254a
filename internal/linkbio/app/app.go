package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/veerabala/linkbio/internal/linkbio/http"
	"github.com/veerabala/linkbio/internal/linkbio/service"
	"github.com/veerabala/linkbio/internal/linkbio/store"
	"github.com/veerabala/linkbio/internal/linkbio/store/drivers/sqlite"
	"github.com/veerabala/linkbio/pkg/jwtx"
	"github.com/veerabala/linkbio/pkg/slogx"
)

const (
	// BuildVersion is a placeholder until releases stamp it via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the linkbio service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db store.Store

	// Services
	authService     *service.AuthService
	linkService     *service.LinkService
	settingsService *service.SettingsService
	profileService  *service.ProfileService
	productService  *service.ProductService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "linkbio",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	// Populate the starter catalog on an empty database.
	if err := app.productService.Seed(context.Background()); err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to seed product catalog: %w", err)
	}

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("linkbio service starting", "port", app.cfg.Port, "version", BuildVersion)

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
		if err != nil && err != http.ErrServerClosed {
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
	app.logger.Info("shutting down linkbio service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("linkbio service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() error {
	hs, err := jwtx.NewHS256([]byte(app.cfg.TokenSecret))
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}

	app.authService = &service.AuthService{
		Store:    app.db,
		Signer:   hs,
		Verifier: hs,
		TokenTTL: app.cfg.TokenTTL,
	}

	app.linkService = &service.LinkService{Store: app.db}
	app.settingsService = &service.SettingsService{Store: app.db}
	app.profileService = &service.ProfileService{Store: app.db}
	app.productService = &service.ProductService{Store: app.db}

	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	// Wire services to router
	router.AuthService = app.authService
	router.LinkService = app.linkService
	router.SettingsService = app.settingsService
	router.ProfileService = app.profileService
	router.ProductService = app.productService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
