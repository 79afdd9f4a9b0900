package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BasavarajuVB/User-management-backend/internal/platform/config"
	"github.com/BasavarajuVB/User-management-backend/internal/platform/database"
	platformspanner "github.com/BasavarajuVB/User-management-backend/internal/platform/spanner"
	"github.com/BasavarajuVB/User-management-backend/modules/users/domain"
	"github.com/BasavarajuVB/User-management-backend/modules/users/infrastructure/persistence"
)

// openRepository builds the user store selected by database.driver. The
// returned func releases its connections.
func openRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.UserRepository, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite, config.DriverPostgres:
		db, err := database.Open(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		repo := persistence.NewSQLRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("connected to database", slog.String("driver", db.DriverName()))
		return repo, func() { db.Close() }, nil

	case config.DriverSpanner:
		client, err := platformspanner.NewClient(ctx, cfg.Spanner)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("connected to spanner", slog.String("dsn", cfg.Spanner.DSN()))
		return persistence.NewSpannerRepository(client), client.Close, nil

	case config.DriverMemory:
		logger.Warn("using in-memory user store; data is lost on exit")
		return persistence.NewInMemoryRepository(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}
