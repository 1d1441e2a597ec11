package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/ltmb786/taskboard-api/internal/config"
	"github.com/ltmb786/taskboard-api/internal/platform/postgres"
	"github.com/ltmb786/taskboard-api/internal/platform/push"
	"github.com/ltmb786/taskboard-api/internal/service"
	"github.com/ltmb786/taskboard-api/internal/service/auth"
	"github.com/ltmb786/taskboard-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore         store.UserStore
	taskStore         store.TaskStore
	notificationStore store.NotificationStore

	// Identity boundary
	identityProvider auth.IdentityProvider
	tokenIssuer      auth.TokenIssuer

	// Services
	userService         *service.UserService
	taskService         *service.TaskService
	notificationService *service.NotificationService
}

// newApplication creates a new application instance with all dependencies
// initialized. Core dependencies (config, logger, database) must already be
// established.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	provider, err := auth.NewJWTProvider(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity provider: %w", err)
	}
	app.identityProvider = provider
	app.tokenIssuer = provider
	logger.Info("Identity provider initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.userStore = postgres.NewUserStore(db, logger)
	app.taskStore = postgres.NewTaskStore(db, logger)
	app.notificationStore = postgres.NewNotificationStore(db, logger)
	logger.Info("Data stores initialized")

	var gateway push.Gateway
	if cfg.Push.Enabled() {
		gateway = push.NewHTTPGateway(cfg.Push.Endpoint, cfg.Push.ServerKey, nil, logger)
		logger.Info("Push gateway initialized", "endpoint", cfg.Push.Endpoint)
	} else {
		gateway = push.NoopGateway{}
		logger.Info("Push gateway disabled; notifications are persistence-only")
	}

	app.userService = service.NewUserService(app.userStore, app.taskStore, app.identityProvider, app.tokenIssuer, logger)
	app.taskService = service.NewTaskService(app.taskStore, logger)
	app.notificationService = service.NewNotificationService(app.notificationStore, app.userStore, gateway, logger)
	logger.Info("Services initialized")

	return app, nil
}

// cleanup releases application resources during shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
