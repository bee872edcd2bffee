// Package server assembles the data-access layer: configuration, logging,
// the connection provider, repositories, the view cache, and the services
// that callers interact with.
package server

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/obolotin/ledgerboard/internal/logging"
	"github.com/obolotin/ledgerboard/internal/server/cache"
	"github.com/obolotin/ledgerboard/internal/server/config"
	"github.com/obolotin/ledgerboard/internal/server/db"
	"github.com/obolotin/ledgerboard/internal/server/repositories/repomanager"
	"github.com/obolotin/ledgerboard/internal/server/services"
)

// App wires the configured components together and exposes the services.
type App struct {
	config   *config.Config
	logger   logging.Logger
	provider *db.Provider
	repos    repomanager.RepositoryManager

	Auth      *services.AuthService
	Invoices  *services.InvoiceService
	Customers *services.CustomerService
	Dashboard *services.DashboardService
}

func NewApp(cfg *config.Config) *App {
	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	provider := db.NewProvider(db.Settings{
		Host:           cfg.PostgresHost,
		Port:           cfg.PostgresPort,
		Database:       cfg.PostgresDatabase,
		User:           cfg.PostgresUser,
		Password:       cfg.PostgresPassword,
		SSLMode:        cfg.SSLMode,
		ConnectTimeout: cfg.ConnectTimeout,
	})

	var invalidator cache.Invalidator = &cache.Nop{}
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		invalidator = cache.NewRedisInvalidator(rdb)
	}

	repos := repomanager.NewPostgresRepositoryManager()

	return &App{
		config:    cfg,
		logger:    logger,
		provider:  provider,
		repos:     repos,
		Auth:      services.NewAuthService(provider, repos, logger, cfg),
		Invoices:  services.NewInvoiceService(provider, repos, invalidator, logger),
		Customers: services.NewCustomerService(provider, repos, logger),
		Dashboard: services.NewDashboardService(provider, repos, logger),
	}
}

// Logger returns the application logger.
func (a *App) Logger() logging.Logger {
	return a.logger
}

// Provider returns the connection provider, for callers that need raw
// connection access such as the seeding tool.
func (a *App) Provider() *db.Provider {
	return a.provider
}

// Repos returns the repository manager, for callers that write through
// repositories directly, such as the seeding tool.
func (a *App) Repos() repomanager.RepositoryManager {
	return a.repos
}

// Migrate brings the schema up to date on the given connection.
func (a *App) Migrate(ctx context.Context, conn *sql.DB) error {
	return a.repos.RunMigrations(ctx, conn)
}
