package export

import "github.com/jonathan/kpi-dashboard/internal/types"

// SummaryRow is one KPI group condensed to its headline metric.
type SummaryRow struct {
	KPI   string
	Value float64
}

// SummaryTable produces one row per KPI group with its headline metric:
// NPS score, CSAT percent, conversion rate, total sales. Groups absent from
// the bundle are skipped.
func SummaryTable(bundle *types.KPIBundle) []SummaryRow {
	var rows []SummaryRow
	if n := bundle.NPS; n != nil {
		rows = append(rows, SummaryRow{KPI: GroupNPS, Value: n.Score})
	}
	if c := bundle.CSAT; c != nil {
		rows = append(rows, SummaryRow{KPI: GroupCSAT, Value: c.Percent})
	}
	if c := bundle.Conversion; c != nil {
		rows = append(rows, SummaryRow{KPI: GroupConversion, Value: c.Rate})
	}
	if s := bundle.Sales; s != nil {
		rows = append(rows, SummaryRow{KPI: GroupSales, Value: s.Total})
	}
	return rows
}
