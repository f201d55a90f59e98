// Package render turns a built report into console tables, structured
// stdout output, and an HTML chart page.
package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ousamg/vcqc/internal/identity"
	"github.com/ousamg/vcqc/internal/report"
)

// GeneralStats renders the per-sample summary table. Columns appear in
// first-seen order; a sample missing a column gets an empty cell.
func GeneralStats(rpt *report.Report, out io.Writer) {
	stats := rpt.GeneralStats
	if len(stats.SampleOrder) == 0 {
		fmt.Fprintln(out, "No samples found")

		return
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(out)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	header := table.Row{"Sample"}
	for _, column := range stats.Columns {
		header = append(header, column.Title)
	}

	tbl.AppendHeader(header)

	for _, sample := range stats.SampleOrder {
		row := table.Row{identity.Sanitize(sample)}

		for _, column := range stats.Columns {
			if value, ok := stats.Rows[sample][column.ID]; ok {
				row = append(row, value)
			} else {
				row = append(row, "")
			}
		}

		tbl.AppendRow(row)
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("%d samples", len(stats.SampleOrder))})
	tbl.Render()
}

// VCFQuality renders the VCF-quality detail table, if any sample has one.
func VCFQuality(rpt *report.Report, out io.Writer) {
	if rpt.VCFQuality == nil {
		return
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(out)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Sample", "Status", "Skewed ratio", "Variants", "Ti/Tv", "Contamination"})

	for _, sample := range rpt.GeneralStats.SampleOrder {
		section, ok := rpt.VCFQuality[sample]
		if !ok {
			continue
		}

		tbl.AppendRow(table.Row{
			identity.Sanitize(sample),
			section.Status,
			fmt.Sprintf("%.4f", section.SkewedRatio),
			section.Variants,
			fmt.Sprintf("%.2f", section.TiTvRatio),
			fmt.Sprintf("%.4f", section.Contamination),
		})
	}

	fmt.Fprintln(out, "\nVCF quality:")
	tbl.Render()
}

// BaseQuality renders the base-quality detail table, if any sample has one.
func BaseQuality(rpt *report.Report, out io.Writer) {
	if rpt.BaseQuality == nil {
		return
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(out)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Sample", "Status", "Q30 %", "Reads", "Perfect index %", "Mean qual", "1-mismatch %"})

	for _, sample := range rpt.GeneralStats.SampleOrder {
		section, ok := rpt.BaseQuality[sample]
		if !ok {
			continue
		}

		tbl.AppendRow(table.Row{
			identity.Sanitize(sample),
			section.Status,
			fmt.Sprintf("%.1f", section.Q30BasesPct),
			section.Reads,
			fmt.Sprintf("%.1f", section.PerfectIndexReads),
			fmt.Sprintf("%.1f", section.MeanQualScore),
			fmt.Sprintf("%.2f", section.OneMismatchIndexPct),
		})
	}

	fmt.Fprintln(out, "\nBase quality:")
	tbl.Render()
}
