package analytics

import "github.com/jonathan/kpi-dashboard/internal/types"

// ComputeNPS classifies each scored record as promoter (9-10), passive (7-8)
// or detractor (0-6) and computes NPS = %promoters - %detractors. Records
// without an nps_score are excluded from both the numerator and the
// denominator. Returns nil when no record carries a score.
func ComputeNPS(records []types.Record) *types.NPSResult {
	var promoters, passives, detractors, total int
	for _, r := range records {
		if r.NPSScore == nil {
			continue
		}
		total++
		switch s := *r.NPSScore; {
		case s >= 9:
			promoters++
		case s >= 7:
			passives++
		default:
			detractors++
		}
	}
	if total == 0 {
		return nil
	}

	pctPromoters := float64(promoters) / float64(total) * 100
	pctPassives := float64(passives) / float64(total) * 100
	pctDetractors := float64(detractors) / float64(total) * 100

	return &types.NPSResult{
		Score:          round1(pctPromoters - pctDetractors),
		Promoters:      promoters,
		Passives:       passives,
		Detractors:     detractors,
		TotalResponses: total,
		PctPromoters:   round1(pctPromoters),
		PctPassives:    round1(pctPassives),
		PctDetractors:  round1(pctDetractors),
	}
}
