package main

import (
	"context"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/database"
)

const migrationsDir = "migrations"

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations (up, down, status, create)",
	}

	for _, dir := range []database.MigrationDirection{database.MigrateUp, database.MigrateDown, database.MigrateStatus} {
		direction := dir
		cmd.AddCommand(&cobra.Command{
			Use:   string(direction),
			Short: fmt.Sprintf("Run goose %s with the embedded migrations", direction),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate(cmd.Context(), direction)
			},
		})
	}

	var migrationType string
	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new timestamped migration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkHostile(args[0]); err != nil {
				return err
			}
			if err := goose.Create(nil, migrationsDir, args[0], migrationType); err != nil {
				return fmt.Errorf("create migration: %w", err)
			}
			PrintSuccess("Created migration %q in %s", args[0], migrationsDir)
			return nil
		},
	}
	create.Flags().StringVar(&migrationType, "type", "sql", "migration type (sql or go)")
	cmd.AddCommand(create)

	return cmd
}

func runMigrate(ctx context.Context, direction database.MigrationDirection) error {
	url := databaseURL()
	PrintHeader(fmt.Sprintf("Migrate %s", direction))
	PrintInfo("Database: %s", redactPassword(url))

	pool, err := database.NewPool(ctx, url, database.PoolConfig{MaxConns: 2})
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, direction); err != nil {
		return err
	}
	PrintSuccess("Migrations %s complete", direction)
	return nil
}
