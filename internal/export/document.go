package export

import (
	"time"

	"github.com/jonathan/kpi-dashboard/internal/types"
)

// Document preserves the bundle's nested grouping for document-oriented
// consumers such as Power BI: one entry per KPI group, each carrying its
// headline value plus the full detail map.
type Document struct {
	Timestamp   string        `json:"timestamp"`
	RecordCount int           `json:"record_count"`
	Metrics     []MetricGroup `json:"metrics"`
}

// MetricGroup is one KPI group inside a Document.
type MetricGroup struct {
	Name    string             `json:"name"`
	Value   float64            `json:"value"`
	Details map[string]float64 `json:"details"`
}

// NestedDocument builds the tree-shaped export of the bundle. Only groups
// with a headline scalar appear; the lifecycle breakdown has none and is
// served by the tabular export instead.
func NestedDocument(bundle *types.KPIBundle) *Document {
	doc := &Document{
		Timestamp:   bundle.GeneratedAt.UTC().Format(time.RFC3339),
		RecordCount: bundle.RecordCount,
		Metrics:     []MetricGroup{},
	}

	if n := bundle.NPS; n != nil {
		doc.Metrics = append(doc.Metrics, MetricGroup{
			Name:  GroupNPS,
			Value: n.Score,
			Details: map[string]float64{
				"promoters":       float64(n.Promoters),
				"passives":        float64(n.Passives),
				"detractors":      float64(n.Detractors),
				"total_responses": float64(n.TotalResponses),
				"pct_promoters":   n.PctPromoters,
				"pct_passives":    n.PctPassives,
				"pct_detractors":  n.PctDetractors,
			},
		})
	}
	if c := bundle.CSAT; c != nil {
		doc.Metrics = append(doc.Metrics, MetricGroup{
			Name:  GroupCSAT,
			Value: c.Percent,
			Details: map[string]float64{
				"satisfied":       float64(c.Satisfied),
				"total_responses": float64(c.TotalResponses),
				"average_score":   c.AverageScore,
			},
		})
	}
	if c := bundle.Conversion; c != nil {
		doc.Metrics = append(doc.Metrics, MetricGroup{
			Name:  GroupConversion,
			Value: c.Rate,
			Details: map[string]float64{
				"conversions": float64(c.Conversions),
				"visitors":    float64(c.Visitors),
			},
		})
	}
	if s := bundle.Sales; s != nil {
		doc.Metrics = append(doc.Metrics, MetricGroup{
			Name:  GroupSales,
			Value: s.Total,
			Details: map[string]float64{
				"average": s.Average,
				"median":  s.Median,
				"growth":  s.Growth,
				"count":   float64(s.Count),
			},
		})
	}
	return doc
}
