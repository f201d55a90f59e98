package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ousamg/vcqc/internal/regions"
	"github.com/ousamg/vcqc/internal/report"
	"github.com/ousamg/vcqc/internal/types"
)

func sampleReport() *report.Report {
	return report.Build(report.State{
		Columns:     []string{types.KeyVCFQuality, types.KeyLowCoverage},
		SampleOrder: []string{"S1", "S2"},
		General: map[string]map[string]int{
			"S1": {types.KeyVCFQuality: 1, types.KeyLowCoverage: 1},
			"S2": {types.KeyVCFQuality: 0},
		},
		VCFQuality: map[string]*types.VCFQuality{
			"S1": {Status: 1, SkewedRatio: 0.01, Variants: 120, TiTvRatio: 2.1},
			"S2": {Status: 0, Variants: 80, TiTvRatio: 1.9},
		},
		Depth: map[string]map[int]int{"S1": {3: 1, 8: 1}},
		Size:  map[string]map[regions.Bucket]int{"S1": {regions.BucketUnder10: 1, regions.Bucket50to99: 1}},
	})
}

func TestGeneralStats_RendersAllSamples(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	GeneralStats(sampleReport(), &buf)

	out := buf.String()
	assert.Contains(t, out, "S1")
	assert.Contains(t, out, "S2")
	assert.Contains(t, out, "VCF quality")
	assert.Contains(t, out, "2 samples")
}

func TestGeneralStats_NoSamples(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	GeneralStats(report.Build(report.State{}), &buf)
	assert.Contains(t, buf.String(), "No samples found")
}

func TestVCFQuality_SkipsSamplesWithoutSection(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	VCFQuality(sampleReport(), &buf)

	out := buf.String()
	assert.Contains(t, out, "VCF quality")
	assert.Contains(t, out, "120")
	assert.Contains(t, out, "80")
}

func TestBaseQuality_OmittedWhenEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	BaseQuality(sampleReport(), &buf)
	assert.Empty(t, buf.String())
}

func TestChartPage_WritesHTML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lowcoverage.html")
	require.NoError(t, ChartPage(sampleReport(), path))

	data, err := os.ReadFile(path) //nolint:gosec // test reads its own output
	require.NoError(t, err)
	assert.Contains(t, string(data), "Failed regions by depth")
	assert.Contains(t, string(data), "Failed regions by size")
}

func TestChartPage_NoLowCoverageWritesNothing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lowcoverage.html")
	require.NoError(t, ChartPage(report.Build(report.State{}), path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
