//nolint:wrapcheck
package render

import (
	"os"

	"github.com/farcloser/primordium/format"

	"github.com/ousamg/vcqc/internal/identity"
	"github.com/ousamg/vcqc/internal/report"
)

// Structured prints the report through a primordium formatter
// (console, json or markdown), one data object per sample.
func Structured(rpt *report.Report, formatName string) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	data := make([]*format.Data, 0, len(rpt.GeneralStats.SampleOrder))

	for _, sample := range rpt.GeneralStats.SampleOrder {
		data = append(data, &format.Data{
			Object: identity.Sanitize(sample),
			Meta:   sampleMeta(rpt, sample),
		})
	}

	return formatter.PrintAll(data, os.Stdout)
}

// sampleMeta flattens one sample's rows and detail sections into the
// canonical map structure used for serialization.
func sampleMeta(rpt *report.Report, sample string) map[string]any {
	meta := map[string]any{}

	statuses := map[string]any{}
	for column, value := range rpt.GeneralStats.Rows[sample] {
		statuses[column] = value
	}

	meta["statuses"] = statuses

	if section, ok := rpt.VCFQuality[sample]; ok {
		meta["vcfquality"] = map[string]any{
			"status":        section.Status,
			"skewed_ratio":  section.SkewedRatio,
			"variants":      section.Variants,
			"titv_ratio":    section.TiTvRatio,
			"contamination": section.Contamination,
		}
	}

	if rpt.LowCoverage != nil {
		if depths, ok := rpt.LowCoverage.Depth[sample]; ok {
			failed := 0
			for _, count := range depths {
				failed += count
			}

			meta["lowcoverage"] = map[string]any{
				"failed_regions": failed,
				"by_depth":       depths,
				"by_size":        rpt.LowCoverage.Size[sample],
			}
		}
	}

	if section, ok := rpt.BaseQuality[sample]; ok {
		meta["basequality"] = map[string]any{
			"status":                  section.Status,
			"q30_bases_pct":           section.Q30BasesPct,
			"reads":                   section.Reads,
			"perfect_index_reads_pct": section.PerfectIndexReads,
			"mean_qual_score":         section.MeanQualScore,
			"one_mismatch_index_pct":  section.OneMismatchIndexPct,
		}
	}

	return meta
}
