package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ousamg/vcqc/internal/regions"
	"github.com/ousamg/vcqc/internal/types"
)

func TestBuild_EmptyState(t *testing.T) {
	t.Parallel()

	rpt := Build(State{})

	assert.Empty(t, rpt.GeneralStats.Columns)
	assert.Nil(t, rpt.VCFQuality)
	assert.Nil(t, rpt.LowCoverage)
	assert.Nil(t, rpt.BaseQuality)
}

func TestBuild_ColumnMetadataInFirstSeenOrder(t *testing.T) {
	t.Parallel()

	state := State{
		Columns:     []string{types.KeyBaseQuality, types.KeyVCFQuality, "CustomMetric"},
		SampleOrder: []string{"S1"},
		General:     map[string]map[string]int{"S1": {types.KeyBaseQuality: 1}},
	}

	rpt := Build(state)

	require.Len(t, rpt.GeneralStats.Columns, 3)
	assert.Equal(t, types.KeyBaseQuality, rpt.GeneralStats.Columns[0].ID)
	assert.Equal(t, "Base quality", rpt.GeneralStats.Columns[0].Title)
	assert.Equal(t, types.KeyVCFQuality, rpt.GeneralStats.Columns[1].ID)

	// Unknown columns pass through with a bare title.
	assert.Equal(t, "CustomMetric", rpt.GeneralStats.Columns[2].ID)
	assert.Equal(t, "CustomMetric", rpt.GeneralStats.Columns[2].Title)
}

func TestBuild_LowCoverageSeries(t *testing.T) {
	t.Parallel()

	state := State{
		SampleOrder: []string{"S1"},
		Depth:       map[string]map[int]int{"S1": {3: 1, 8: 1}},
		Size:        map[string]map[regions.Bucket]int{"S1": {regions.BucketUnder10: 1}},
	}

	rpt := Build(state)

	require.NotNil(t, rpt.LowCoverage)

	// Depth categories 1..20, size categories the six fixed buckets.
	require.Len(t, rpt.LowCoverage.DepthCategories, 20)
	assert.Equal(t, 1, rpt.LowCoverage.DepthCategories[0])
	assert.Equal(t, 20, rpt.LowCoverage.DepthCategories[19])
	assert.Equal(t, regions.Order, rpt.LowCoverage.SizeCategories)

	assert.Equal(t, map[int]int{3: 1, 8: 1}, rpt.LowCoverage.Depth["S1"])
}

func TestBuild_OmitsEmptyDetailTables(t *testing.T) {
	t.Parallel()

	state := State{
		Columns:     []string{types.KeyVCFQuality},
		SampleOrder: []string{"S1"},
		General:     map[string]map[string]int{"S1": {types.KeyVCFQuality: 1}},
		VCFQuality:  map[string]*types.VCFQuality{"S1": {Status: 1}},
	}

	rpt := Build(state)

	require.NotNil(t, rpt.VCFQuality)
	assert.Nil(t, rpt.LowCoverage)
	assert.Nil(t, rpt.BaseQuality)
}
