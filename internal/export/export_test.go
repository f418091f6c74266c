package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/kpi-dashboard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBundle returns a fully populated bundle with a frozen timestamp.
func testBundle() *types.KPIBundle {
	return &types.KPIBundle{
		ID:          uuid.MustParse("b2f1c6de-9c3a-4f36-8dd1-2a51a70a2f10"),
		GeneratedAt: time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC),
		RecordCount: 100,
		NPS: &types.NPSResult{
			Score: 25.0, Promoters: 50, Passives: 25, Detractors: 25,
			TotalResponses: 100, PctPromoters: 50, PctPassives: 25, PctDetractors: 25,
		},
		CSAT: &types.CSATResult{
			Percent: 66.7, Satisfied: 2, TotalResponses: 3, AverageScore: 4.0,
		},
		Conversion: &types.ConversionResult{Rate: 1.0, Conversions: 1, Visitors: 100},
		Sales: &types.SalesResult{
			Total: 1000, Average: 250, Median: 250, Growth: 133.3, Count: 4,
		},
		Lifecycle: &types.LifecycleResult{
			ByStatus: map[string]int{"Active": 60, "New": 40},
			ByMonth:  map[string]int{"2024-01": 30, "2024-02": 70},
			ByWeek:   map[string]int{"2024-W01": 30, "2024-W06": 70},
		},
	}
}

func TestTabularRows_OneRowPerLeafMetric(t *testing.T) {
	rows := TabularRows(testBundle())

	// 8 NPS + 4 CSAT + 3 conversion + 5 sales + 6 lifecycle
	assert.Len(t, rows, 26)
	assert.Equal(t, MetricRow{KPI: "nps", Metric: "score", Value: 25.0, Date: "2024-06-15"}, rows[0])

	byGroup := map[string]int{}
	for _, r := range rows {
		byGroup[r.KPI]++
	}
	assert.Equal(t, 8, byGroup[GroupNPS])
	assert.Equal(t, 4, byGroup[GroupCSAT])
	assert.Equal(t, 3, byGroup[GroupConversion])
	assert.Equal(t, 5, byGroup[GroupSales])
	assert.Equal(t, 6, byGroup[GroupLifecycle])
	assert.Contains(t, rows, MetricRow{
		KPI: GroupLifecycle, Metric: "week:2024-W01", Value: 30, Date: "2024-06-15",
	})
}

func TestTabularRows_SkipsMissingGroups(t *testing.T) {
	bundle := &types.KPIBundle{
		GeneratedAt: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		NPS:         &types.NPSResult{Score: 10},
	}
	rows := TabularRows(bundle)
	for _, r := range rows {
		assert.Equal(t, GroupNPS, r.KPI)
	}
}

func TestNestedDocument_GroupsAndHeadlines(t *testing.T) {
	doc := NestedDocument(testBundle())

	assert.Equal(t, "2024-06-15T10:30:00Z", doc.Timestamp)
	assert.Equal(t, 100, doc.RecordCount)
	require.Len(t, doc.Metrics, 4)
	assert.Equal(t, GroupNPS, doc.Metrics[0].Name)
	assert.Equal(t, 25.0, doc.Metrics[0].Value)
	assert.Equal(t, 50.0, doc.Metrics[0].Details["pct_promoters"])
	assert.Equal(t, GroupSales, doc.Metrics[3].Name)
	assert.Equal(t, 1000.0, doc.Metrics[3].Value)
}

func TestNestedDocument_EmptyBundleHasEmptyMetrics(t *testing.T) {
	doc := NestedDocument(&types.KPIBundle{GeneratedAt: time.Unix(0, 0)})
	assert.NotNil(t, doc.Metrics)
	assert.Empty(t, doc.Metrics)
}

func TestSummaryTable_OneRowPerGroup(t *testing.T) {
	rows := SummaryTable(testBundle())
	require.Len(t, rows, 4)
	assert.Equal(t, SummaryRow{KPI: GroupNPS, Value: 25.0}, rows[0])
	assert.Equal(t, SummaryRow{KPI: GroupCSAT, Value: 66.7}, rows[1])
	assert.Equal(t, SummaryRow{KPI: GroupConversion, Value: 1.0}, rows[2])
	assert.Equal(t, SummaryRow{KPI: GroupSales, Value: 1000.0}, rows[3])
}

func TestExports_Idempotent(t *testing.T) {
	bundle := testBundle()

	assert.Equal(t, TabularRows(bundle), TabularRows(bundle))
	assert.Equal(t, SummaryTable(bundle), SummaryTable(bundle))

	first, err := json.Marshal(NestedDocument(bundle))
	require.NoError(t, err)
	second, err := json.Marshal(NestedDocument(bundle))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWriteAll_ProducesThreeFiles(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteAll(testBundle(), filepath.Join(dir, "dashboards"))
	require.NoError(t, err)
	require.Len(t, paths, 3)

	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	tableau, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Contains(t, string(tableau), "kpi,metric,value,date")
	assert.Contains(t, string(tableau), "nps,score,25,2024-06-15")

	var doc Document
	powerbi, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(powerbi, &doc))
	assert.Len(t, doc.Metrics, 4)

	summary, err := os.ReadFile(paths[2])
	require.NoError(t, err)
	assert.Contains(t, string(summary), "sales,1000")
}

func TestWriteAll_ByteIdenticalOnRepeat(t *testing.T) {
	dir := t.TempDir()
	bundle := testBundle()

	paths, err := WriteAll(bundle, dir)
	require.NoError(t, err)
	firstRun := make(map[string][]byte)
	for _, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		firstRun[p] = data
	}

	_, err = WriteAll(bundle, dir)
	require.NoError(t, err)
	for _, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, firstRun[p], data, "repeat export should be byte-identical: %s", p)
	}
}
