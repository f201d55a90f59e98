// Package types holds the shared data model for vcqc section parsing and aggregation.
package types

// File is a discovered pipeline log: its storage path and raw JSON body.
// Discovery owns the ordering of files; the run driver sorts by path before folding.
type File struct {
	Path string
	Body []byte
}

// FailedRegion is a genomic interval flagged as failing the minimum
// sequencing-depth threshold. Start and Stop are inclusive coordinates.
type FailedRegion struct {
	Start int `json:"start"`
	Stop  int `json:"stop"`
	Depth int `json:"depth"`
}

// VCFQuality contains the variant-level quality indicators reported by the
// pipeline. Status is the pass/fail scalar shown in the general-stats row;
// the remaining fields are passed through opaquely to the detail table.
type VCFQuality struct {
	Status        int     `json:"status"`
	SkewedRatio   float64 `json:"skewedRatio"`
	Variants      int     `json:"variants"`
	TiTvRatio     float64 `json:"tiTvRatio"`
	Contamination float64 `json:"contamination"`
}

// LowCoverage contains the coverage-failure section. FailedRegions may be
// empty, which is a valid zero-failure state, not an error.
type LowCoverage struct {
	Status        int
	FailedRegions []FailedRegion
}

// BaseQuality contains the sequencing base-quality indicators.
type BaseQuality struct {
	Status              int     `json:"status"`
	Q30BasesPct         float64 `json:"q30_bases_pct"`
	Reads               int     `json:"reads"`
	PerfectIndexReads   float64 `json:"perfect_index_reads_pct"`
	MeanQualScore       float64 `json:"mean_qual_score"`
	OneMismatchIndexPct float64 `json:"one_mismatch_index_pct"`
}

// Sections is the decoded content of one log file. Any pointer may be nil:
// a file contributes zero to three sections independently.
type Sections struct {
	VCFQuality  *VCFQuality
	LowCoverage *LowCoverage
	BaseQuality *BaseQuality
}

// Count returns how many sections are present.
func (s *Sections) Count() int {
	count := 0

	if s.VCFQuality != nil {
		count++
	}

	if s.LowCoverage != nil {
		count++
	}

	if s.BaseQuality != nil {
		count++
	}

	return count
}

// Source records that a log file contributed at least one parsed section to
// the report, for provenance display.
type Source struct {
	Path   string `json:"path"`
	Sample string `json:"sample"`
}

// Section keys as they appear in the pipeline JSON output and as
// general-stats column names.
const (
	KeyVCFQuality  = "VcfQuality"
	KeyLowCoverage = "LowCoverageRegions"
	KeyBaseQuality = "BaseQuality"
)
