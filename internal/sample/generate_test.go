package sample

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/kpi-dashboard/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_ProducesLoadableDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.csv")
	opts := DefaultOptions(path)
	opts.Count = 50

	require.NoError(t, Generate(opts))

	ds, err := dataset.LoadCSV(path)
	require.NoError(t, err)
	assert.Len(t, ds.Records, 50)
	assert.Len(t, ds.Columns, 7)

	// Every generated value sits inside the valid ranges, so nothing is
	// dropped by the range validation.
	for _, rec := range ds.Records {
		require.NotNil(t, rec.NPSScore)
		assert.GreaterOrEqual(t, *rec.NPSScore, 0)
		assert.LessOrEqual(t, *rec.NPSScore, 10)
		require.NotNil(t, rec.SatisfactionScore)
		assert.GreaterOrEqual(t, *rec.SatisfactionScore, 1)
		assert.LessOrEqual(t, *rec.SatisfactionScore, 5)
		require.NotNil(t, rec.Sales)
		assert.GreaterOrEqual(t, *rec.Sales, 0.0)
		require.NotNil(t, rec.Status)
	}
}

func TestGenerate_DeterministicForSameSeed(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.csv")
	second := filepath.Join(dir, "b.csv")

	optsA := DefaultOptions(first)
	optsA.Count = 20
	optsB := DefaultOptions(second)
	optsB.Count = 20

	require.NoError(t, Generate(optsA))
	require.NoError(t, Generate(optsB))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_RejectsNonPositiveCount(t *testing.T) {
	opts := DefaultOptions(filepath.Join(t.TempDir(), "x.csv"))
	opts.Count = 0
	assert.Error(t, Generate(opts))
}

func TestGenerate_CreatesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "sample.csv")
	opts := DefaultOptions(path)
	opts.Count = 5
	require.NoError(t, Generate(opts))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
