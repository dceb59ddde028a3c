package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func checkCoverageCmd() *cobra.Command {
	var (
		file      string
		threshold float64
		runTests  bool
		html      bool
		pkgs      []string
	)

	cmd := &cobra.Command{
		Use:   "check-coverage",
		Short: "Run tests with coverage and check the total against a threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file = filepath.Clean(file)
			if strings.Contains(file, "..") || filepath.IsAbs(file) {
				return fmt.Errorf("invalid path '%s': must be relative and within project", file)
			}

			PrintHeader(fmt.Sprintf("Checking coverage threshold (%.1f%%)...", threshold))

			if err := ensureCoverage(file, runTests || len(pkgs) > 0, pkgs); err != nil {
				return err
			}

			coverage, err := coveragePercent(file)
			if err != nil {
				return err
			}
			PrintInfo("Total Coverage: %.1f%%", coverage)

			if html {
				if err := runCommandVerbose("go", "tool", "cover", "-html="+file, "-o", strings.TrimSuffix(file, filepath.Ext(file))+".html"); err != nil {
					PrintWarning("Failed to generate HTML report: %v", err)
				}
			}

			if coverage < threshold {
				return fmt.Errorf("coverage %.1f%% is below threshold %.1f%%", coverage, threshold)
			}
			PrintSuccess("Coverage meets threshold.")
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "logs/coverage.out", "coverage profile")
	cmd.Flags().Float64Var(&threshold, "threshold", 80, "minimum total coverage percent")
	cmd.Flags().BoolVar(&runTests, "run", false, "run tests even if the profile exists")
	cmd.Flags().BoolVar(&html, "html", false, "also write an HTML report next to the profile")
	cmd.Flags().StringSliceVar(&pkgs, "pkgs", nil, "packages to test (implies --run)")
	return cmd
}

func ensureCoverage(file string, force bool, packages []string) error {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		PrintInfo("Coverage file '%s' not found. Running tests...", file)
		force = true
	}
	if !force {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return fmt.Errorf("failed to create coverage directory: %w", err)
	}

	if len(packages) == 0 {
		packages = []string{"./..."}
	}
	args := append([]string{"test", "-coverprofile=" + file, "-covermode=atomic"}, packages...)
	PrintInfo("Running go %s", strings.Join(args, " "))
	return runCommandVerbose("go", args...)
}

// coveragePercent reads the "total:" line of go tool cover -func
func coveragePercent(file string) (float64, error) {
	out, err := getCommandOutput("go", "tool", "cover", "-func="+file)
	if err != nil {
		return 0, fmt.Errorf("go tool cover: %w", err)
	}
	return parseCoverTotal(out)
}

func parseCoverTotal(out string) (float64, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "total:") {
			continue
		}
		fields := strings.Fields(line)
		pctStr := strings.TrimSuffix(fields[len(fields)-1], "%")
		return strconv.ParseFloat(pctStr, 64)
	}
	return 0, fmt.Errorf("no total line in coverage output")
}
