package main

import (
	"context"
	"fmt"

	"github.com/osse101/Farmstead_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage the embedded database migrations (up, down, status)"
}

func (c *MigrateCommand) Run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, down, status")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultCommandTimeout)
	defer cancel()

	pool, _, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	switch args[0] {
	case "up":
		PrintHeader("Applying migrations")
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Migrations applied")
	case "down":
		PrintHeader("Rolling back latest migration")
		if err := database.MigrateDown(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Rolled back one migration")
	case "status":
		statuses, err := database.MigrationStatus(ctx, pool)
		if err != nil {
			return err
		}
		PrintHeader("Migration status")
		for _, s := range statuses {
			if s.AppliedAt.IsZero() {
				PrintWarning("%-40s %s", s.Source.Path, s.State)
			} else {
				PrintSuccess("%-40s %s %s", s.Source.Path, s.State, s.AppliedAt.Format("2006-01-02 15:04"))
			}
		}
	default:
		return fmt.Errorf("unknown subcommand %q: expected up, down or status", args[0])
	}
	return nil
}
