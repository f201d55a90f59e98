package vcqc

import (
	"log/slog"
	"slices"

	"github.com/ousamg/vcqc/internal/regions"
	"github.com/ousamg/vcqc/internal/report"
	"github.com/ousamg/vcqc/internal/types"
)

// Aggregator folds parsed QC sections into per-sample state. It is a plain
// value owned by the caller of the run; there is no ambient state. Processing
// is strictly sequential, so no locking happens here. A concurrent driver
// must serialize Ingest calls and impose a deterministic file order first,
// because duplicate-sample overwrite makes the final state order-dependent.
type Aggregator struct {
	columns     []string
	sampleOrder []string

	// Distinct accumulators, one per output table, threaded explicitly so
	// each section's aggregation is independently testable.
	general map[string]map[string]int
	vcf     map[string]*types.VCFQuality
	depth   map[string]map[int]int
	size    map[string]map[regions.Bucket]int
	base    map[string]*types.BaseQuality

	sources []types.Source
}

// NewAggregator returns an empty aggregator ready for one run.
func NewAggregator() *Aggregator {
	return &Aggregator{
		general: make(map[string]map[string]int),
		vcf:     make(map[string]*types.VCFQuality),
		depth:   make(map[string]map[int]int),
		size:    make(map[string]map[regions.Bucket]int),
		base:    make(map[string]*types.BaseQuality),
	}
}

// Ingest folds one file's parsed sections into the sample's state and
// returns the number of sections folded.
//
// Semantics for a repeated sample key: general-stats columns touched by the
// new file overwrite the old values field by field, columns it does not touch
// keep their prior values, and detail-table entries are replaced wholesale
// per present section.
func (a *Aggregator) Ingest(key string, sections *types.Sections) int {
	row, seen := a.general[key]
	if seen {
		slog.Warn("duplicate sample, overwriting previous data", "sample", key)
	} else {
		row = make(map[string]int)
		a.general[key] = row
		a.sampleOrder = append(a.sampleOrder, key)
	}

	if section := sections.VCFQuality; section != nil {
		a.setColumn(row, types.KeyVCFQuality, section.Status)
		a.vcf[key] = section
	}

	if section := sections.LowCoverage; section != nil {
		a.setColumn(row, types.KeyLowCoverage, section.Status)
		a.ingestLowCoverage(key, section)
	}

	if section := sections.BaseQuality; section != nil {
		a.setColumn(row, types.KeyBaseQuality, section.Status)
		a.base[key] = section
	}

	return sections.Count()
}

// ingestLowCoverage replaces the sample's depth and size frequency counts.
// An empty failed-region list is a valid zero-failure state: no entries are
// retained for the sample, clearing anything a previous file contributed.
func (a *Aggregator) ingestLowCoverage(key string, section *types.LowCoverage) {
	if len(section.FailedRegions) == 0 {
		delete(a.depth, key)
		delete(a.size, key)

		return
	}

	a.depth[key] = regions.CountDepths(section.FailedRegions)
	a.size[key] = regions.CountSizes(section.FailedRegions)
}

// setColumn writes a general-stats value, recording the column in first-seen
// order across all samples. Insertion order is the display order.
func (a *Aggregator) setColumn(row map[string]int, column string, value int) {
	if !slices.Contains(a.columns, column) {
		a.columns = append(a.columns, column)
	}

	row[column] = value
}

// RegisterSource records that a file contributed at least one parsed section.
// Files contributing zero sections are silently excluded from the manifest.
func (a *Aggregator) RegisterSource(path, key string) {
	a.sources = append(a.sources, types.Source{Path: path, Sample: key})
}

// Samples returns the number of distinct samples seen.
func (a *Aggregator) Samples() int {
	return len(a.general)
}

// State hands the accumulated run state to the report builder.
func (a *Aggregator) State() report.State {
	return report.State{
		Columns:     a.columns,
		SampleOrder: a.sampleOrder,
		General:     a.general,
		VCFQuality:  a.vcf,
		Depth:       a.depth,
		Size:        a.size,
		BaseQuality: a.base,
		Sources:     a.sources,
	}
}
