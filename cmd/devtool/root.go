package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	envFile string
	dbURL   string
)

// Execute builds the command tree and runs it
func Execute() error {
	root := &cobra.Command{
		Use:           "devtool",
		Short:         "Operator tooling for the case service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is fine; real environment variables still apply
			_ = godotenv.Load(envFile)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before running")
	root.PersistentFlags().StringVar(&dbURL, "db-url", "", "postgres connection string (default built from DB_* variables)")

	root.AddCommand(
		migrateCmd(),
		checkDBCmd(),
		catalogCmd(),
		simulateCmd(),
		seedCmd(),
		healthCmd(),
		checkCoverageCmd(),
	)
	return root.Execute()
}
