package main

import (
	"fmt"

	"github.com/dm329/equipcat/pkg/equipcat"
	"github.com/dm329/equipcat/pkg/equipcat/report"
	"github.com/spf13/cobra"
)

var (
	topBrands    int
	distribution bool
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [catalog.json]",
		Short: "Print category and brand statistics for an extracted catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStats,
	}

	cmd.Flags().IntVar(&topBrands, "top", report.DefaultTopBrands, "Number of brands listed")
	cmd.Flags().BoolVar(&distribution, "distribution", false, "Append models-per-category and models-per-brand statistics")
	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	inputPath := equipcat.DefaultCatalogPath
	if len(args) > 0 {
		inputPath = args[0]
	}

	catalog, err := equipcat.LoadCatalog(inputPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	// Compute everything before printing so a failure leaves stdout empty.
	r := report.Compute(catalog, report.DefaultMapping(), topBrands)
	var summaries []report.Summary
	if distribution {
		if summaries, err = report.Distribution(catalog); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if err := report.Render(out, r); err != nil {
		return err
	}
	if distribution {
		return report.RenderDistribution(out, summaries)
	}
	return nil
}
