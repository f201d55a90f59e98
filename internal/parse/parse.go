// Package parse decodes one pipeline log body into typed QC sections.
//
// Each recognized top-level key holds a 2-element array [status, data].
// Every key is optional and decoded independently: a file may contribute
// zero to three sections, and a malformed section is skipped without
// affecting its siblings.
package parse

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/farcloser/primordium/fault"

	"github.com/ousamg/vcqc/internal/types"
)

// vcfQualityData mirrors VcfQuality[1] on the wire.
type vcfQualityData struct {
	SkewedRatio   float64 `json:"skewedRatio"`
	Variants      int     `json:"variants"`
	TiTvRatio     float64 `json:"tiTvRatio"`
	Contamination float64 `json:"contamination"`
}

// lowCoverageData mirrors LowCoverageRegions[1] on the wire. A missing or
// empty failed list is the valid zero-failure state.
type lowCoverageData struct {
	Failed []types.FailedRegion `json:"failed"`
}

// baseQualityData mirrors BaseQuality[1] on the wire.
type baseQualityData struct {
	Q30BasesPct         float64 `json:"q30_bases_pct"`
	Reads               int     `json:"reads"`
	PerfectIndexReads   float64 `json:"perfect_index_reads_pct"`
	MeanQualScore       float64 `json:"mean_qual_score"`
	OneMismatchIndexPct float64 `json:"one_mismatch_index_pct"`
}

// Sections decodes body and returns the typed sections plus the number of
// sections successfully decoded (0-3). The error is non-nil only when the
// body itself is not a JSON object; section-level problems are logged and
// the section skipped.
func Sections(body []byte) (*types.Sections, int, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", fault.ErrInvalidJSON, err)
	}

	sections := &types.Sections{}

	if status, data, ok := sectionEnvelope(doc, types.KeyVCFQuality); ok {
		var fields vcfQualityData
		if err := json.Unmarshal(data, &fields); err != nil {
			slog.Warn("skipping malformed section", "section", types.KeyVCFQuality, "error", err)
		} else {
			sections.VCFQuality = &types.VCFQuality{
				Status:        status,
				SkewedRatio:   fields.SkewedRatio,
				Variants:      fields.Variants,
				TiTvRatio:     fields.TiTvRatio,
				Contamination: fields.Contamination,
			}
		}
	}

	if status, data, ok := sectionEnvelope(doc, types.KeyLowCoverage); ok {
		var fields lowCoverageData
		if err := json.Unmarshal(data, &fields); err != nil {
			slog.Warn("skipping malformed section", "section", types.KeyLowCoverage, "error", err)
		} else {
			sections.LowCoverage = &types.LowCoverage{
				Status:        status,
				FailedRegions: fields.Failed,
			}
		}
	}

	if status, data, ok := sectionEnvelope(doc, types.KeyBaseQuality); ok {
		var fields baseQualityData
		if err := json.Unmarshal(data, &fields); err != nil {
			slog.Warn("skipping malformed section", "section", types.KeyBaseQuality, "error", err)
		} else {
			sections.BaseQuality = &types.BaseQuality{
				Status:              status,
				Q30BasesPct:         fields.Q30BasesPct,
				Reads:               fields.Reads,
				PerfectIndexReads:   fields.PerfectIndexReads,
				MeanQualScore:       fields.MeanQualScore,
				OneMismatchIndexPct: fields.OneMismatchIndexPct,
			}
		}
	}

	return sections, sections.Count(), nil
}

// sectionEnvelope validates the [status, data] pair under key. Absent or
// null keys are reported at debug level; structurally invalid envelopes
// (wrong arity, non-numeric status) are warned about and skipped.
func sectionEnvelope(doc map[string]json.RawMessage, key string) (int, json.RawMessage, bool) {
	raw, ok := doc[key]
	if !ok || string(raw) == "null" {
		slog.Debug("missing expected key", "section", key)

		return 0, nil, false
	}

	var pair []json.RawMessage
	if err := json.Unmarshal(raw, &pair); err != nil {
		slog.Warn("skipping malformed section", "section", key, "error", err)

		return 0, nil, false
	}

	if len(pair) != 2 {
		slog.Warn("skipping malformed section", "section", key, "arity", len(pair))

		return 0, nil, false
	}

	var status int
	if err := json.Unmarshal(pair[0], &status); err != nil {
		slog.Warn("skipping malformed section", "section", key, "error", err)

		return 0, nil, false
	}

	return status, pair[1], true
}
