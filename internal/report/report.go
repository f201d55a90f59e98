// Package report shapes aggregated QC state into the structures consumed by
// the rendering and persistence collaborators. No computation happens here
// beyond reshaping; it is the last step before external sinks.
package report

import (
	"github.com/ousamg/vcqc/internal/regions"
	"github.com/ousamg/vcqc/internal/types"
)

// Depth series categories: the grouped-bar widget shows failed-region counts
// for depths 1 through 20.
const maxDepthCategory = 20

// ColumnMeta carries per-column display metadata for the general-stats table.
// The values are opaque to the aggregation core and passed through to the
// rendering collaborator.
type ColumnMeta struct {
	ID     string
	Title  string
	Min    float64
	Max    float64
	Scale  string
	Format string
}

// GeneralStats is the per-sample summary table. Columns are in first-seen
// order across the whole run; SampleOrder is first-seen sample order.
type GeneralStats struct {
	Columns     []ColumnMeta
	SampleOrder []string
	Rows        map[string]map[string]int
}

// LowCoverageSeries holds the two parallel grouped-bar series for the
// low-coverage widget, each keyed by sample.
type LowCoverageSeries struct {
	DepthCategories []int
	SizeCategories  []regions.Bucket
	Depth           map[string]map[int]int
	Size            map[string]map[regions.Bucket]int
}

// State is the aggregator's accumulated run state, handed over wholesale at
// the end of a run. The distinct accumulators stay distinct so each table is
// independently buildable.
type State struct {
	Columns     []string
	SampleOrder []string
	General     map[string]map[string]int
	VCFQuality  map[string]*types.VCFQuality
	Depth       map[string]map[int]int
	Size        map[string]map[regions.Bucket]int
	BaseQuality map[string]*types.BaseQuality
	Sources     []types.Source
}

// Report is the full collaborator-facing output of one aggregation run.
// Detail tables are nil when no sample contributed the matching section.
type Report struct {
	GeneralStats GeneralStats
	VCFQuality   map[string]*types.VCFQuality
	LowCoverage  *LowCoverageSeries
	BaseQuality  map[string]*types.BaseQuality
	Sources      []types.Source
}

// columnMeta maps the known general-stats columns to display metadata.
// Unknown columns get a bare pass-through entry.
//
//nolint:gochecknoglobals // configuration data, effectively const
var columnMeta = map[string]ColumnMeta{
	types.KeyVCFQuality: {
		ID:     types.KeyVCFQuality,
		Title:  "VCF quality",
		Min:    0,
		Max:    1,
		Scale:  "RdYlGn",
		Format: "{:,.0f}",
	},
	types.KeyLowCoverage: {
		ID:     types.KeyLowCoverage,
		Title:  "Low coverage",
		Min:    0,
		Max:    1,
		Scale:  "RdYlGn",
		Format: "{:,.0f}",
	},
	types.KeyBaseQuality: {
		ID:     types.KeyBaseQuality,
		Title:  "Base quality",
		Min:    0,
		Max:    1,
		Scale:  "RdYlGn",
		Format: "{:,.0f}",
	},
}

// Build assembles the report from aggregated state.
func Build(state State) *Report {
	rpt := &Report{
		GeneralStats: GeneralStats{
			Columns:     make([]ColumnMeta, 0, len(state.Columns)),
			SampleOrder: state.SampleOrder,
			Rows:        state.General,
		},
		Sources: state.Sources,
	}

	for _, column := range state.Columns {
		meta, ok := columnMeta[column]
		if !ok {
			meta = ColumnMeta{ID: column, Title: column}
		}

		rpt.GeneralStats.Columns = append(rpt.GeneralStats.Columns, meta)
	}

	if len(state.VCFQuality) > 0 {
		rpt.VCFQuality = state.VCFQuality
	}

	if len(state.Depth) > 0 || len(state.Size) > 0 {
		rpt.LowCoverage = &LowCoverageSeries{
			DepthCategories: depthCategories(),
			SizeCategories:  regions.Order,
			Depth:           state.Depth,
			Size:            state.Size,
		}
	}

	if len(state.BaseQuality) > 0 {
		rpt.BaseQuality = state.BaseQuality
	}

	return rpt
}

func depthCategories() []int {
	categories := make([]int, maxDepthCategory)
	for i := range categories {
		categories[i] = i + 1
	}

	return categories
}
