package vcqc

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/ousamg/vcqc/internal/identity"
	"github.com/ousamg/vcqc/internal/parse"
	"github.com/ousamg/vcqc/internal/report"
	"github.com/ousamg/vcqc/internal/types"
)

/*
Usage:

files, err := discovery.Discover(root, cfg)
rpt, err := vcqc.Run(files, vcqc.DefaultOptions())

for _, sample := range rpt.GeneralStats.SampleOrder {
    fmt.Println(sample, rpt.GeneralStats.Rows[sample])
}
*/

// Options configures an aggregation run.
type Options struct {
	// Extractor derives sample keys from file paths.
	// Nil means the default Diag- marker extractor.
	Extractor identity.Extractor
}

// DefaultOptions returns options using the pipeline's Diag- path convention.
func DefaultOptions() Options {
	return Options{
		Extractor: identity.NewMarkerExtractor(identity.DefaultMarker),
	}
}

// Run folds the discovered files into one report. Files are sorted
// lexicographically by path before folding so duplicate-sample overwrite is
// reproducible regardless of discovery order.
//
// A path without a derivable sample identity aborts the whole batch: it
// indicates a structural assumption violation that a silent skip would mask.
// A file whose body is not valid JSON is logged and skipped; a file
// contributing zero sections is not registered as a data source.
func Run(files []types.File, opts Options) (*report.Report, error) {
	extractor := opts.Extractor
	if extractor == nil {
		extractor = identity.NewMarkerExtractor(identity.DefaultMarker)
	}

	sorted := slices.Clone(files)
	slices.SortFunc(sorted, func(a, b types.File) int {
		return strings.Compare(a.Path, b.Path)
	})

	aggregator := NewAggregator()

	for _, file := range sorted {
		key, err := extractor.Extract(file.Path)
		if err != nil {
			return nil, fmt.Errorf("deriving sample identity: %w", err)
		}

		sections, count, err := parse.Sections(file.Body)
		if err != nil {
			slog.Warn("skipping unreadable log", "path", file.Path, "error", err)

			continue
		}

		if count == 0 {
			slog.Debug("no recognized sections", "path", file.Path)

			continue
		}

		aggregator.Ingest(key, sections)
		aggregator.RegisterSource(file.Path, key)
	}

	return report.Build(aggregator.State()), nil
}
