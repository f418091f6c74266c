package analytics

import (
	"testing"

	"github.com/jonathan/kpi-dashboard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func satisfactionRecords(scores ...int) []types.Record {
	records := make([]types.Record, len(scores))
	for i, s := range scores {
		records[i] = types.Record{SatisfactionScore: types.Int(s)}
	}
	return records
}

func TestComputeCSAT_TwoOfThreeSatisfied(t *testing.T) {
	result := ComputeCSAT(satisfactionRecords(5, 3, 4))
	require.NotNil(t, result)

	assert.Equal(t, 2, result.Satisfied)
	assert.Equal(t, 3, result.TotalResponses)
	assert.Equal(t, 66.7, result.Percent)
	assert.Equal(t, 4.0, result.AverageScore)
}

func TestComputeCSAT_ThresholdIsFour(t *testing.T) {
	result := ComputeCSAT(satisfactionRecords(3, 4))
	require.NotNil(t, result)
	assert.Equal(t, 1, result.Satisfied)
	assert.Equal(t, 50.0, result.Percent)
}

func TestComputeCSAT_PercentStaysInRange(t *testing.T) {
	none := ComputeCSAT(satisfactionRecords(1, 2, 3))
	require.NotNil(t, none)
	assert.Equal(t, 0.0, none.Percent)

	all := ComputeCSAT(satisfactionRecords(4, 5))
	require.NotNil(t, all)
	assert.Equal(t, 100.0, all.Percent)
}

func TestComputeCSAT_NoScoredRecords(t *testing.T) {
	assert.Nil(t, ComputeCSAT(nil))
	assert.Nil(t, ComputeCSAT([]types.Record{{NPSScore: types.Int(9)}}))
}
