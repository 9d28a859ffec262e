package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Farmstead_Go/internal/config"
	"github.com/osse101/Farmstead_Go/internal/database"
	"github.com/osse101/Farmstead_Go/internal/database/postgres"
	"github.com/osse101/Farmstead_Go/internal/profile"
)

// Repositories holds the repository implementations used by the application.
// Pool is nil when the in-memory store is selected.
type Repositories struct {
	Profile profile.Repository
	Pool    *pgxpool.Pool
}

// InitializeRepositories creates the profile store selected in the config.
// The postgres store connects, applies the embedded migrations and is ready
// before this returns.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	if !cfg.UsePostgres() {
		slog.Info(LogMsgProfileStoreMemory)
		return &Repositories{Profile: profile.NewMemoryRepository()}, nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	slog.Info(LogMsgProfileStorePostgres, "host", cfg.DBHost, "database", cfg.DBName)
	return &Repositories{Profile: postgres.NewProfileRepository(pool), Pool: pool}, nil
}

// ReadinessPool returns the pool for /readyz, or nil for the in-memory store
func (r *Repositories) ReadinessPool() database.Pool {
	if r.Pool == nil {
		return nil
	}
	return r.Pool
}
