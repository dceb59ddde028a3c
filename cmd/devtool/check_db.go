package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/database"
)

func checkDBCmd() *cobra.Command {
	var (
		wait     time.Duration
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "check-db",
		Short: "Check that the database accepts connections, optionally waiting for it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url := databaseURL()
			PrintHeader("Checking database")
			PrintInfo("Database: %s", redactPassword(url))

			deadline := time.Now().Add(wait)
			for attempt := 1; ; attempt++ {
				pool, err := database.NewPool(cmd.Context(), url, database.PoolConfig{MaxConns: 1})
				if err == nil {
					pool.Close()
					PrintSuccess("Database is ready (attempt %d)", attempt)
					return nil
				}
				if !time.Now().Add(interval).Before(deadline) {
					return fmt.Errorf("database not ready after %d attempts: %w", attempt, err)
				}
				PrintWarning("Database not ready yet: %v", err)
				time.Sleep(interval)
			}
		},
	}

	cmd.Flags().DurationVar(&wait, "wait", 0, "keep retrying for this long before failing")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "delay between attempts")
	return cmd
}
