package render

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ousamg/vcqc/internal/identity"
	"github.com/ousamg/vcqc/internal/report"
)

const chartHeight = "500px"

// ChartPage writes the low-coverage grouped-bar page to path: one chart of
// failed regions by depth (categories 1..20) and one by region size (the six
// fixed buckets), each with one bar series per sample. Nothing is written
// when no sample has failed regions.
func ChartPage(rpt *report.Report, path string) error {
	if rpt.LowCoverage == nil {
		return nil
	}

	page := components.NewPage()
	page.PageTitle = "vcqc low coverage"
	page.AddCharts(buildDepthChart(rpt), buildSizeChart(rpt))

	file, err := os.Create(path) //nolint:gosec // writing user-specified report output
	if err != nil {
		return fmt.Errorf("creating chart page: %w", err)
	}
	defer file.Close()

	if err := page.Render(file); err != nil {
		return fmt.Errorf("rendering chart page: %w", err)
	}

	return nil
}

func buildDepthChart(rpt *report.Report) *charts.Bar {
	series := rpt.LowCoverage

	labels := make([]string, len(series.DepthCategories))
	for i, depth := range series.DepthCategories {
		labels[i] = strconv.Itoa(depth)
	}

	bar := newBarChart("Failed regions by depth", "Depth", labels)

	for _, sample := range rpt.GeneralStats.SampleOrder {
		counts, ok := series.Depth[sample]
		if !ok {
			continue
		}

		data := make([]opts.BarData, len(series.DepthCategories))
		for i, depth := range series.DepthCategories {
			data[i] = opts.BarData{Value: counts[depth]}
		}

		bar.AddSeries(identity.Sanitize(sample), data)
	}

	return bar
}

func buildSizeChart(rpt *report.Report) *charts.Bar {
	series := rpt.LowCoverage

	labels := make([]string, len(series.SizeCategories))
	for i, bucket := range series.SizeCategories {
		labels[i] = string(bucket)
	}

	bar := newBarChart("Failed regions by size", "Region length (bp)", labels)

	for _, sample := range rpt.GeneralStats.SampleOrder {
		counts, ok := series.Size[sample]
		if !ok {
			continue
		}

		data := make([]opts.BarData, len(series.SizeCategories))
		for i, bucket := range series.SizeCategories {
			data[i] = opts.BarData{Value: counts[bucket]}
		}

		bar.AddSeries(identity.Sanitize(sample), data)
	}

	return bar
}

func newBarChart(title, xAxisName string, labels []string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: xAxisName}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Regions"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels)

	return bar
}
