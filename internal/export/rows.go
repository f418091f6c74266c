// Package export reshapes a KPI bundle into the flat representations
// consumed by external dashboard tools. Every function here is a pure,
// read-only projection of the bundle: calling it twice with the same bundle
// produces identical output, since all timestamps come from the bundle
// itself rather than the wall clock.
package export

import (
	"sort"

	"github.com/jonathan/kpi-dashboard/internal/types"
)

// KPI group names used across all export shapes.
const (
	GroupNPS        = "nps"
	GroupCSAT       = "csat"
	GroupConversion = "conversion_rate"
	GroupSales      = "sales"
	GroupLifecycle  = "lifecycle"
)

// MetricRow is one flattened (kpi, metric, value) observation for
// row-oriented consumers such as Tableau.
type MetricRow struct {
	KPI    string
	Metric string
	Value  float64
	Date   string
}

// TabularRows flattens the bundle into one row per leaf metric. Groups absent
// from the bundle contribute no rows. Lifecycle counts are emitted with
// "status:", "month:" and "week:" metric prefixes, sorted for stable output.
func TabularRows(bundle *types.KPIBundle) []MetricRow {
	date := bundle.GeneratedAt.Format("2006-01-02")
	var rows []MetricRow
	add := func(kpi, metric string, value float64) {
		rows = append(rows, MetricRow{KPI: kpi, Metric: metric, Value: value, Date: date})
	}

	if n := bundle.NPS; n != nil {
		add(GroupNPS, "score", n.Score)
		add(GroupNPS, "promoters", float64(n.Promoters))
		add(GroupNPS, "passives", float64(n.Passives))
		add(GroupNPS, "detractors", float64(n.Detractors))
		add(GroupNPS, "total_responses", float64(n.TotalResponses))
		add(GroupNPS, "pct_promoters", n.PctPromoters)
		add(GroupNPS, "pct_passives", n.PctPassives)
		add(GroupNPS, "pct_detractors", n.PctDetractors)
	}
	if c := bundle.CSAT; c != nil {
		add(GroupCSAT, "percent", c.Percent)
		add(GroupCSAT, "satisfied", float64(c.Satisfied))
		add(GroupCSAT, "total_responses", float64(c.TotalResponses))
		add(GroupCSAT, "average_score", c.AverageScore)
	}
	if c := bundle.Conversion; c != nil {
		add(GroupConversion, "rate", c.Rate)
		add(GroupConversion, "conversions", float64(c.Conversions))
		add(GroupConversion, "visitors", float64(c.Visitors))
	}
	if s := bundle.Sales; s != nil {
		add(GroupSales, "total", s.Total)
		add(GroupSales, "average", s.Average)
		add(GroupSales, "median", s.Median)
		add(GroupSales, "growth", s.Growth)
		add(GroupSales, "count", float64(s.Count))
	}
	if l := bundle.Lifecycle; l != nil {
		for _, k := range sortedKeys(l.ByStatus) {
			add(GroupLifecycle, "status:"+k, float64(l.ByStatus[k]))
		}
		for _, k := range sortedKeys(l.ByMonth) {
			add(GroupLifecycle, "month:"+k, float64(l.ByMonth[k]))
		}
		for _, k := range sortedKeys(l.ByWeek) {
			add(GroupLifecycle, "week:"+k, float64(l.ByWeek[k]))
		}
	}
	return rows
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
