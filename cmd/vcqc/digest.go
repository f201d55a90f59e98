//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/urfave/cli/v3"
	"gonum.org/v1/gonum/stat"

	"github.com/ousamg/vcqc"
	"github.com/ousamg/vcqc/internal/identity"
)

var errDigestArgs = errors.New("expected exactly one argument: folder path")

func digestCommand() *cli.Command {
	return &cli.Command{
		Name:      "digest",
		Usage:     "Print a compact QC summary for a pipeline output tree",
		ArgsUsage: "<folder>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to vcqc.yaml",
				Value:   "vcqc.yaml",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errDigestArgs, cmd.NArg())
			}

			return runDigest(cmd.Args().First(), cmd.String("config"))
		},
	}
}

func runDigest(folder, configPath string) error {
	rpt, _, err := aggregate(folder, configPath)
	if err != nil {
		return err
	}

	stats := rpt.GeneralStats

	fmt.Println("=== vcqc Digest ===")
	fmt.Println()
	fmt.Printf("Samples:  %d\n", len(stats.SampleOrder))
	fmt.Printf("Sources:  %d\n", len(rpt.Sources))
	fmt.Println()

	fmt.Println("--- Status by metric ---")

	for _, column := range stats.Columns {
		distribution := map[int]int{}

		for _, row := range stats.Rows {
			if value, ok := row[column.ID]; ok {
				distribution[value]++
			}
		}

		fmt.Printf("  %s:", column.Title)

		for _, status := range slices.Sorted(maps.Keys(distribution)) {
			fmt.Printf("  status %d: %d", status, distribution[status])
		}

		fmt.Println()
	}

	printCoverageDigest(rpt)

	return nil
}

func printCoverageDigest(rpt *vcqc.Report) {
	if rpt.LowCoverage == nil {
		return
	}

	fmt.Println()
	fmt.Println("--- Coverage failures ---")

	for _, sample := range rpt.GeneralStats.SampleOrder {
		depths, ok := rpt.LowCoverage.Depth[sample]
		if !ok {
			continue
		}

		total := 0
		for _, count := range depths {
			total += count
		}

		fmt.Printf("  %s: %d failed regions (mean depth %.1f)\n",
			identity.Sanitize(sample), total, meanDepth(depths))
	}
}

// meanDepth is the count-weighted mean of the failed-region depth values for
// one sample. Per-sample only: cross-sample statistics are out of scope.
func meanDepth(depths map[int]int) float64 {
	values := make([]float64, 0, len(depths))
	weights := make([]float64, 0, len(depths))

	for depth, count := range depths {
		values = append(values, float64(depth))
		weights = append(weights, float64(count))
	}

	return stat.Mean(values, weights)
}
