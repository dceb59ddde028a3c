package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/catalog"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/coordinator"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/database"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/database/postgres"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/idempotency"
)

func seedCmd() *cobra.Command {
	var (
		accounts int
		prefix   string
		balance  int64
		caseID   string
		opens    int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create demo accounts, fund them and optionally open cases through the coordinator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			url := databaseURL()
			PrintHeader("Seeding demo data")
			PrintInfo("Database: %s", redactPassword(url))

			pool, err := database.NewPool(ctx, url, database.PoolConfig{MaxConns: 4})
			if err != nil {
				return err
			}
			defer pool.Close()

			cat, err := catalog.Load(ctx, "")
			if err != nil {
				return err
			}
			var cs = cat.CaseList[0]
			if caseID != "" {
				if cs, err = cat.Case(caseID); err != nil {
					return err
				}
			}

			svc := coordinator.NewService(postgres.NewStore(pool), cat, idempotency.NewLRUStore(accounts*(opens+1), 0), nil, coordinator.Config{})
			defer func() { _ = svc.Shutdown(ctx) }()

			for i := 1; i <= accounts; i++ {
				id := fmt.Sprintf("%s-%d", prefix, i)
				if _, err := svc.OpenAccount(ctx, id); err != nil {
					return fmt.Errorf("open %s: %w", id, err)
				}
				// Fixed request IDs make reseeding a no-op
				if _, err := svc.Deposit(ctx, coordinator.DepositRequest{
					RequestID: "seed-deposit",
					AccountID: id,
					Amount:    balance,
				}); err != nil {
					return fmt.Errorf("fund %s: %w", id, err)
				}
				for n := 1; n <= opens; n++ {
					out, err := svc.OpenCase(ctx, coordinator.OpenCaseRequest{
						RequestID: fmt.Sprintf("seed-open-%d", n),
						AccountID: id,
						Case:      cs,
					})
					if err != nil {
						PrintWarning("%s: open %d of %s: %v", id, n, cs.ID, err)
						break
					}
					PrintInfo("%s opened %s: %s (%s)", id, cs.Name, out.Item.Item.Name, out.Tier)
				}
				PrintSuccess("Seeded %s", id)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&accounts, "accounts", 3, "number of accounts")
	cmd.Flags().StringVar(&prefix, "prefix", "demo", "account ID prefix")
	cmd.Flags().Int64Var(&balance, "balance", 5000, "deposit per account")
	cmd.Flags().StringVar(&caseID, "case", "", "case to open (default: first catalog case)")
	cmd.Flags().IntVar(&opens, "opens", 0, "cases to open per account")
	return cmd
}
