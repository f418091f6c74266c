package analytics

import "github.com/jonathan/kpi-dashboard/internal/types"

// satisfactionThreshold is the minimum satisfaction_score (1-5 scale) that
// counts as a satisfied response.
const satisfactionThreshold = 4

// ComputeCSAT computes the customer satisfaction score: the percentage of
// scored records at or above the satisfaction threshold. Returns nil when no
// record carries a satisfaction_score.
func ComputeCSAT(records []types.Record) *types.CSATResult {
	var satisfied, total, sum int
	for _, r := range records {
		if r.SatisfactionScore == nil {
			continue
		}
		total++
		sum += *r.SatisfactionScore
		if *r.SatisfactionScore >= satisfactionThreshold {
			satisfied++
		}
	}
	if total == 0 {
		return nil
	}

	return &types.CSATResult{
		Percent:        round1(float64(satisfied) / float64(total) * 100),
		Satisfied:      satisfied,
		TotalResponses: total,
		AverageScore:   round2(float64(sum) / float64(total)),
	}
}
