package main

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/Farmstead_Go/internal/config"
	"github.com/osse101/Farmstead_Go/internal/database"
)

const confirmYes = "yes"

type ResetDBCommand struct{}

func (c *ResetDBCommand) Name() string {
	return "reset-db"
}

func (c *ResetDBCommand) Description() string {
	return "Drop and recreate the database, then apply migrations (pass 'yes' to confirm)"
}

func (c *ResetDBCommand) Run(ctx context.Context, args []string) error {
	if len(args) < 1 || args[0] != confirmYes {
		return fmt.Errorf("refusing to drop the database without confirmation: devtool reset-db %s", confirmYes)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Environment == "production" || cfg.Environment == "prod" {
		return fmt.Errorf("reset-db is disabled in %s", cfg.Environment)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultCommandTimeout)
	defer cancel()

	target := cfg.GetDBConnString()
	dbName, serverConn, err := maintenanceConnString(target)
	if err != nil {
		return err
	}

	// Connect to the maintenance database to manage the target one
	server, err := database.NewPool(ctx, serverConn, 2, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL server: %w", err)
	}
	defer server.Close()

	PrintInfo("Terminating existing connections to database %s...", dbName)
	_, err = server.Exec(ctx, `
		SELECT pg_terminate_backend(pid)
		FROM pg_stat_activity
		WHERE datname = $1 AND pid <> pg_backend_pid()`, dbName)
	if err != nil {
		PrintWarning("Failed to terminate connections: %v", err)
	}

	ident := pgx.Identifier{dbName}.Sanitize()
	PrintInfo("Dropping database %s if it exists...", dbName)
	if _, err := server.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
		return fmt.Errorf("failed to drop database: %w", err)
	}
	PrintInfo("Creating database %s...", dbName)
	if _, err := server.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	pool, err := database.NewPool(ctx, target, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()
	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}

	PrintSuccess("Database %s reset and migrated", dbName)
	return nil
}

// maintenanceConnString returns the target database name and the same
// connection string pointed at the "postgres" maintenance database
func maintenanceConnString(connString string) (string, string, error) {
	u, err := url.Parse(connString)
	if err != nil {
		return "", "", fmt.Errorf("invalid database URL: %w", err)
	}
	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", "", fmt.Errorf("database URL has no database name")
	}
	if dbName == "postgres" {
		return "", "", fmt.Errorf("refusing to reset the maintenance database")
	}
	u.Path = "/postgres"
	return dbName, u.String(), nil
}
