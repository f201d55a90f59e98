package parse

import (
	"testing"

	"github.com/farcloser/primordium/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullBody = `{
	"VcfQuality": [1, {"skewedRatio": 0.01, "variants": 120, "tiTvRatio": 2.1, "contamination": 0}],
	"LowCoverageRegions": [1, {"failed": [
		{"start": 100, "stop": 105, "depth": 3},
		{"start": 200, "stop": 250, "depth": 8}
	]}],
	"BaseQuality": [1, {"q30_bases_pct": 95.2, "reads": 1000000, "perfect_index_reads_pct": 99.0,
		"mean_qual_score": 35.0, "one_mismatch_index_pct": 0.5}]
}`

func TestSections_AllPresent(t *testing.T) {
	t.Parallel()

	sections, count, err := Sections([]byte(fullBody))
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NotNil(t, sections.VCFQuality)
	assert.Equal(t, 1, sections.VCFQuality.Status)
	assert.InDelta(t, 0.01, sections.VCFQuality.SkewedRatio, 1e-9)
	assert.Equal(t, 120, sections.VCFQuality.Variants)
	assert.InDelta(t, 2.1, sections.VCFQuality.TiTvRatio, 1e-9)

	require.NotNil(t, sections.LowCoverage)
	assert.Equal(t, 1, sections.LowCoverage.Status)
	require.Len(t, sections.LowCoverage.FailedRegions, 2)
	assert.Equal(t, 3, sections.LowCoverage.FailedRegions[0].Depth)

	require.NotNil(t, sections.BaseQuality)
	assert.Equal(t, 1, sections.BaseQuality.Status)
	assert.InDelta(t, 95.2, sections.BaseQuality.Q30BasesPct, 1e-9)
	assert.Equal(t, 1000000, sections.BaseQuality.Reads)
}

func TestSections_MissingKeyIsTolerated(t *testing.T) {
	t.Parallel()

	body := `{
		"VcfQuality": [0, {"skewedRatio": 0, "variants": 1, "tiTvRatio": 1.9, "contamination": 0}],
		"LowCoverageRegions": [0, {"failed": []}]
	}`

	sections, count, err := Sections([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Nil(t, sections.BaseQuality)
}

func TestSections_NullKeyIsMissing(t *testing.T) {
	t.Parallel()

	body := `{"VcfQuality": null}`

	sections, count, err := Sections([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Nil(t, sections.VCFQuality)
}

func TestSections_EmptyFailedListStillCounts(t *testing.T) {
	t.Parallel()

	for _, body := range []string{
		`{"LowCoverageRegions": [1, {}]}`,
		`{"LowCoverageRegions": [1, {"failed": []}]}`,
	} {
		sections, count, err := Sections([]byte(body))
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		require.NotNil(t, sections.LowCoverage)
		assert.Empty(t, sections.LowCoverage.FailedRegions)
	}
}

func TestSections_MalformedSectionIsSkipped(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{"wrong arity", `{"VcfQuality": [1]}`},
		{"non-numeric status", `{"VcfQuality": ["ok", {}]}`},
		{"not an array", `{"VcfQuality": {"status": 1}}`},
		{"data not an object", `{"BaseQuality": [1, 42]}`},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			sections, count, err := Sections([]byte(testCase.body))
			require.NoError(t, err)
			assert.Equal(t, 0, count)
			assert.Nil(t, sections.VCFQuality)
			assert.Nil(t, sections.BaseQuality)
		})
	}
}

func TestSections_MalformedSectionDoesNotAffectSiblings(t *testing.T) {
	t.Parallel()

	body := `{
		"VcfQuality": [1],
		"BaseQuality": [2, {"q30_bases_pct": 90.0, "reads": 10, "perfect_index_reads_pct": 98.0,
			"mean_qual_score": 33.0, "one_mismatch_index_pct": 1.0}]
	}`

	sections, count, err := Sections([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Nil(t, sections.VCFQuality)
	require.NotNil(t, sections.BaseQuality)
	assert.Equal(t, 2, sections.BaseQuality.Status)
}

func TestSections_InvalidBody(t *testing.T) {
	t.Parallel()

	_, _, err := Sections([]byte("not json at all"))
	require.ErrorIs(t, err, fault.ErrInvalidJSON)
}
