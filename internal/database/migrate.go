package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrations returns the embedded goose migration files
func Migrations() (fs.FS, error) {
	sub, err := fs.Sub(migrationsFS, MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}
	return sub, nil
}

// withProvider opens a goose provider over the pool for the duration of fn
func withProvider(pool *pgxpool.Pool, fn func(*goose.Provider) error) error {
	fsys, err := Migrations()
	if err != nil {
		return err
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func(db *sql.DB) { _ = db.Close() }(db)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}
	return fn(provider)
}

// Migrate applies all pending migrations through the pool
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	return withProvider(pool, func(provider *goose.Provider) error {
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToRunMigrations, err)
		}

		for _, r := range results {
			slog.Default().Info(LogMsgMigrationApplied,
				"version", r.Source.Version,
				"path", r.Source.Path,
				"duration", r.Duration)
		}
		if len(results) == 0 {
			slog.Default().Info(LogMsgMigrationsUpToDate)
		}
		return nil
	})
}

// MigrateDown rolls back the most recent migration
func MigrateDown(ctx context.Context, pool *pgxpool.Pool) error {
	return withProvider(pool, func(provider *goose.Provider) error {
		r, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToRunMigrations, err)
		}
		slog.Default().Info(LogMsgMigrationRolledBack, "version", r.Source.Version, "path", r.Source.Path)
		return nil
	})
}

// MigrationStatus reports whether each embedded migration has been applied
func MigrationStatus(ctx context.Context, pool *pgxpool.Pool) ([]*goose.MigrationStatus, error) {
	var statuses []*goose.MigrationStatus
	err := withProvider(pool, func(provider *goose.Provider) error {
		var err error
		statuses, err = provider.Status(ctx)
		return err
	})
	return statuses, err
}
