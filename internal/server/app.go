// Package server wires configuration, storage, services and the HTTP
// transport into a runnable application with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/sensitivv/internal/logging"
	"github.com/dmitrijs2005/sensitivv/internal/server/auth"
	"github.com/dmitrijs2005/sensitivv/internal/server/config"
	"github.com/dmitrijs2005/sensitivv/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sensitivv/internal/server/rest"
	"github.com/dmitrijs2005/sensitivv/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	server *rest.RESTServer
}

// openRepositories is a seam for tests.
var openRepositories = func(ctx context.Context, c *config.Config) (repomanager.RepositoryManager, error) {
	return repomanager.New(ctx, repomanager.Options{
		Storage:       c.Storage,
		DatabaseDSN:   c.DatabaseDSN,
		MongoURI:      c.MongoURI,
		MongoDatabase: c.MongoDatabase,
	})
}

// NewApp validates c, opens storage, applies migrations and builds the HTTP
// server. The returned App owns the storage connection until Run returns.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	usedDevSecret, err := c.Validate()
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	if usedDevSecret {
		logger.Warn(ctx, "JWT secret not set, using development secret", "environment", c.Environment)
	}

	repos, err := openRepositories(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := repos.RunMigrations(ctx); err != nil {
		_ = repos.Close(ctx)
		return nil, fmt.Errorf("migration error: %w", err)
	}

	issuer := auth.NewIssuer([]byte(c.SecretKey), c.TokenValidity)
	hasher := auth.NewPasswordHasher(c.BcryptCost)

	as := services.NewAccountService(repos.Accounts(), issuer, hasher, logger)
	fs := services.NewFoodItemService(repos.FoodItems(), logger)

	return &App{
		config: c,
		logger: logger,
		repos:  repos,
		server: rest.NewRESTServer(c.Address, logger, as, fs),
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// closes storage.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := app.initSignalHandler(ctx)
	defer cancel()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.Storage, "environment", app.config.Environment)

	runErr := app.server.Run(ctx)

	if err := app.repos.Close(context.WithoutCancel(ctx)); err != nil {
		app.logger.Error(ctx, "closing storage failed", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
	return runErr
}
