//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/ousamg/vcqc"
	"github.com/ousamg/vcqc/internal/config"
	"github.com/ousamg/vcqc/internal/discovery"
	"github.com/ousamg/vcqc/internal/identity"
	"github.com/ousamg/vcqc/internal/persist"
	"github.com/ousamg/vcqc/internal/render"
)

const chartFile = "lowcoverage.html"

var (
	errReportArgs   = errors.New("expected exactly one argument: folder path")
	errNotDirectory = errors.New("not a directory")
	errNoLogs       = errors.New("no pipeline logs found")
)

func reportCommand() *cli.Command {
	return &cli.Command{
		Name:      "report",
		Usage:     "Scan a pipeline output tree and build the QC report",
		ArgsUsage: "<folder>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to vcqc.yaml",
				Value:   "vcqc.yaml",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   "console",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output directory for data tables and the chart page (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "tables-only",
				Usage: "Print tables without persisting data files",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errReportArgs, cmd.NArg())
			}

			return runReport(
				cmd.Args().First(),
				cmd.String("config"),
				cmd.String("format"),
				cmd.String("output"),
				cmd.Bool("tables-only"),
			)
		},
	}
}

func runReport(folder, configPath, formatName, outputDir string, tablesOnly bool) error {
	rpt, cfg, err := aggregate(folder, configPath)
	if err != nil {
		return err
	}

	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	if formatName == "console" {
		render.GeneralStats(rpt, os.Stdout)
		render.VCFQuality(rpt, os.Stdout)
		render.BaseQuality(rpt, os.Stdout)
	} else if err := render.Structured(rpt, formatName); err != nil {
		return err
	}

	if tablesOnly {
		return nil
	}

	if err := persist.Write(rpt, cfg.OutputDir); err != nil {
		return err
	}

	if err := render.ChartPage(rpt, filepath.Join(cfg.OutputDir, chartFile)); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Report written to %s\n", cfg.OutputDir)

	return nil
}

// aggregate runs discovery and the aggregation core for a folder.
func aggregate(folder, configPath string) (*vcqc.Report, config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, cfg, err
	}

	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return nil, cfg, fmt.Errorf("%q: %w", folder, errNotDirectory)
	}

	files, err := discovery.Discover(folder, cfg.Patterns)
	if err != nil {
		return nil, cfg, err
	}

	if len(files) == 0 {
		return nil, cfg, fmt.Errorf("%q: %w", folder, errNoLogs)
	}

	opts := vcqc.Options{Extractor: identity.NewMarkerExtractor(cfg.Marker)}

	rpt, err := vcqc.Run(files, opts)
	if err != nil {
		return nil, cfg, err
	}

	return rpt, cfg, nil
}
