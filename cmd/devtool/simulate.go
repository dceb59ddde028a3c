package main

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/contract"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/drop"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/upgrade"
)

func simulateCmd() *cobra.Command {
	var (
		trials      int
		seed        uint64
		catalogPath string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the drop, upgrade and contract engines many times and report the distribution",
	}
	cmd.PersistentFlags().IntVarP(&trials, "trials", "n", 100000, "number of trials")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	cmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog file (default: embedded catalog)")

	rng := func() func() float64 {
		s := seed
		if s == 0 {
			s = uint64(time.Now().UnixNano())
		}
		r := rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)) //nolint:gosec // simulation only
		PrintInfo("Seed %d, %s trials", s, numbers.Sprintf("%d", trials))
		return r.Float64
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "drop <caseID>",
		Short: "Open a case repeatedly and report tier hit rates and return to player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(cmd, optionalPath(catalogPath))
			if err != nil {
				return err
			}
			cs, err := c.Case(args[0])
			if err != nil {
				return err
			}
			return simulateDrops(drop.New(rng()), cs, trials)
		},
	})

	var chance int
	upgradeCmd := &cobra.Command{
		Use:   "upgrade <sourcePrice> <targetID>",
		Short: "Run upgrade trials and compare the observed success rate to the chance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || price <= 0 {
				return fmt.Errorf("invalid source price %q", args[0])
			}
			c, err := loadCatalog(cmd, optionalPath(catalogPath))
			if err != nil {
				return err
			}
			target, err := c.UpgradeTarget(args[1])
			if err != nil {
				return err
			}
			if chance == 0 {
				chance = upgrade.CalculateChance(price, target.Price)
			}
			source := domain.Item{ID: "source", Name: "Source", Price: price}
			return simulateUpgrades(upgrade.New(rng()), source, target, chance, trials)
		},
	}
	upgradeCmd.Flags().IntVar(&chance, "chance", 0, "requested chance in percent (default: derived from prices)")
	cmd.AddCommand(upgradeCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "contract <price> <price> [price...]",
		Short: "Fuse the given input prices repeatedly and report result rarities",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := make([]domain.Item, len(args))
			for i, a := range args {
				p, err := strconv.ParseInt(a, 10, 64)
				if err != nil || p < 0 {
					return fmt.Errorf("invalid price %q", a)
				}
				inputs[i] = domain.Item{ID: "input", Name: "Input", Price: p}
			}
			c, err := loadCatalog(cmd, optionalPath(catalogPath))
			if err != nil {
				return err
			}
			return simulateContracts(contract.New(rng()), inputs, c.ContractOutcomes(), trials)
		},
	})

	return cmd
}

func optionalPath(p string) []string {
	if p == "" {
		return nil
	}
	return []string{p}
}

func simulateDrops(engine *drop.Engine, cs domain.Case, trials int) error {
	tiers := map[domain.DropTier]int{}
	items := map[string]int{}
	var total int64

	for i := 0; i < trials; i++ {
		res, err := engine.Draw(cs.Items, cs.Price)
		if err != nil {
			return err
		}
		tiers[res.Tier]++
		items[res.Item.Name]++
		total += res.Item.Price
	}

	PrintHeader(fmt.Sprintf("Case %s (price %d)", cs.Name, cs.Price))
	tw := newTable()
	numbers.Fprintf(tw, "TIER\tHITS\tRATE\n")
	for _, t := range []domain.DropTier{domain.TierJackpot, domain.TierPremium, domain.TierMid, domain.TierCommon} {
		numbers.Fprintf(tw, "%s\t%d\t%.2f%%\n", t, tiers[t], pct(tiers[t], trials))
	}
	_ = tw.Flush()

	fmt.Println()
	tw = newTable()
	numbers.Fprintf(tw, "ITEM\tHITS\tRATE\n")
	for _, name := range sortedByCount(items) {
		numbers.Fprintf(tw, "%s\t%d\t%.2f%%\n", name, items[name], pct(items[name], trials))
	}
	_ = tw.Flush()

	spent := int64(trials) * cs.Price
	numbers.Printf("\nSpent %d, dropped value %d, return to player %.2f%%\n", spent, total, 100*float64(total)/float64(spent))
	return nil
}

func simulateUpgrades(engine *upgrade.Engine, source, target domain.Item, chance, trials int) error {
	wins := 0
	for i := 0; i < trials; i++ {
		res, err := engine.Upgrade(source, target, chance)
		if err != nil {
			return err
		}
		if res.Roll.Success {
			wins++
		}
	}

	staked := int64(trials) * source.Price
	won := int64(wins) * target.Price

	PrintHeader(fmt.Sprintf("Upgrade %d -> %s (%d) at %d%%", source.Price, target.Name, target.Price, chance))
	numbers.Printf("Successes %d of %d (%.2f%%, requested %d%%)\n", wins, trials, pct(wins, trials), chance)
	numbers.Printf("Staked %d, won %d, return to player %.2f%%\n", staked, won, 100*float64(won)/float64(staked))
	return nil
}

func simulateContracts(engine *contract.Engine, inputs []domain.Item, pool []domain.ContractOutcome, trials int) error {
	if err := contract.ValidateCount(len(inputs)); err != nil {
		return err
	}

	price, average, bonus := contract.ResultPrice(domain.Prices(inputs))
	results := map[string]int{}
	for i := 0; i < trials; i++ {
		res, err := engine.Fuse(inputs, pool)
		if err != nil {
			return err
		}
		results[res.Item.Name+" ("+res.Item.Rarity.DisplayName()+")"]++
	}

	PrintHeader(fmt.Sprintf("Contract of %d items", len(inputs)))
	numbers.Printf("Average %.2f, bonus x%.2f, result price %d, derived rarity %s\n\n",
		average, bonus, price, contract.RarityForPrice(price).DisplayName())

	tw := newTable()
	numbers.Fprintf(tw, "OUTCOME\tHITS\tRATE\n")
	for _, name := range sortedByCount(results) {
		numbers.Fprintf(tw, "%s\t%d\t%.2f%%\n", name, results[name], pct(results[name], trials))
	}
	return tw.Flush()
}

func pct(n, of int) float64 {
	if of == 0 {
		return 0
	}
	return 100 * float64(n) / float64(of)
}

func sortedByCount(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
