package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/catalog"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and validate case catalogs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a catalog file against the schema and catalog rules (default: embedded catalog)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(cmd, args)
			if err != nil {
				return err
			}
			PrintSuccess("Catalog %s is valid: %d cases, %d upgrade targets, %d contract outcomes",
				c.Version, len(c.CaseList), len(c.Targets), len(c.Outcomes))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list [path]",
		Short: "Print cases, upgrade targets and contract outcomes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(cmd, args)
			if err != nil {
				return err
			}
			printCatalog(c)
			return nil
		},
	})

	return cmd
}

func loadCatalog(cmd *cobra.Command, args []string) (*catalog.Catalog, error) {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	c, err := catalog.Load(cmd.Context(), path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return c, nil
}

func printCatalog(c *catalog.Catalog) {
	PrintHeader("Cases")
	tw := newTable()
	numbers.Fprintf(tw, "ID\tNAME\tPRICE\tITEMS\n")
	for _, cs := range c.Cases() {
		numbers.Fprintf(tw, "%s\t%s\t%d\t%d\n", cs.ID, cs.Name, cs.Price, len(cs.Items))
	}
	_ = tw.Flush()

	PrintHeader("Upgrade targets")
	tw = newTable()
	numbers.Fprintf(tw, "ID\tNAME\tRARITY\tPRICE\n")
	for _, t := range c.UpgradeTargets() {
		numbers.Fprintf(tw, "%s\t%s\t%s\t%d\n", t.ID, t.Name, t.Rarity.DisplayName(), t.Price)
	}
	_ = tw.Flush()

	PrintHeader("Contract outcomes")
	tw = newTable()
	numbers.Fprintf(tw, "ID\tNAME\tRARITY\tWEAR\n")
	for _, o := range c.ContractOutcomes() {
		numbers.Fprintf(tw, "%s\t%s\t%s\t%s\n", o.ID, o.Name, o.Rarity.DisplayName(), o.Wear)
	}
	_ = tw.Flush()
}
