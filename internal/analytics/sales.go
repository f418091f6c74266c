package analytics

import (
	"sort"
	"time"

	"github.com/jonathan/kpi-dashboard/internal/types"
)

// SplitPolicy controls how the record sequence is divided into the first and
// last periods compared by the growth calculation.
type SplitPolicy string

const (
	// SplitHalves splits the ordered sales values into two halves by
	// position. This is the default.
	SplitHalves SplitPolicy = "halves"
	// SplitByDate groups sales by calendar day and compares the earliest
	// day's total against the latest day's total.
	SplitByDate SplitPolicy = "by-date"
)

// Valid reports whether p names a known split policy.
func (p SplitPolicy) Valid() bool {
	return p == SplitHalves || p == SplitByDate
}

// sale pairs a sales amount with the record's date for period grouping.
type sale struct {
	amount float64
	date   time.Time
}

// ComputeSalesMetrics computes total, mean and median over records with a
// sales value, plus period-over-period growth under the given split policy.
// Growth is 0 when fewer than two values exist or the first-period total is
// zero. Returns nil when no record carries a sales value.
func ComputeSalesMetrics(records []types.Record, policy SplitPolicy) *types.SalesResult {
	var sales []sale
	total := 0.0
	for _, r := range records {
		if r.Sales == nil {
			continue
		}
		sales = append(sales, sale{amount: *r.Sales, date: r.Date})
		total += *r.Sales
	}
	if len(sales) == 0 {
		return nil
	}

	sorted := make([]float64, len(sales))
	for i, s := range sales {
		sorted[i] = s.amount
	}
	sort.Float64s(sorted)
	median := sorted[len(sorted)/2]
	if len(sorted)%2 == 0 {
		median = (sorted[len(sorted)/2-1] + sorted[len(sorted)/2]) / 2
	}

	var first, last float64
	switch policy {
	case SplitByDate:
		first, last = dateSplit(sales)
	default:
		half := len(sales) / 2
		for i, s := range sales {
			if i < half {
				first += s.amount
			} else {
				last += s.amount
			}
		}
	}

	growth := 0.0
	if len(sales) > 1 && first != 0 {
		growth = round1((last - first) / first * 100)
	}

	return &types.SalesResult{
		Total:   round2(total),
		Average: round2(total / float64(len(sales))),
		Median:  round2(median),
		Growth:  growth,
		Count:   len(sales),
	}
}

// dateSplit sums sales for the earliest and latest calendar days carrying a
// dated sale. Undated sales are excluded; a single distinct day yields equal
// first and last totals, so growth comes out 0.
func dateSplit(sales []sale) (first, last float64) {
	byDay := make(map[string]float64)
	for _, s := range sales {
		if s.date.IsZero() {
			continue
		}
		byDay[s.date.Format("2006-01-02")] += s.amount
	}
	if len(byDay) == 0 {
		return 0, 0
	}
	days := make([]string, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Strings(days)
	return byDay[days[0]], byDay[days[len(days)-1]]
}
