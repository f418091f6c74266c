package analytics

import "github.com/jonathan/kpi-dashboard/internal/types"

// ComputeConversionRate computes conversions / total visitors * 100, where
// conversions counts records with converted == true and visitors sums the
// visitors column. A record set with zero visitors reports a rate of 0; the
// zero denominator is a normal condition, not an error. The rate is capped
// at 100 so it always reads as a percentage. Returns nil when no record
// carries either field.
func ComputeConversionRate(records []types.Record) *types.ConversionResult {
	var conversions, visitors, seen int
	for _, r := range records {
		if r.Converted == nil && r.Visitors == nil {
			continue
		}
		seen++
		if r.Converted != nil && *r.Converted {
			conversions++
		}
		if r.Visitors != nil {
			visitors += *r.Visitors
		}
	}
	if seen == 0 {
		return nil
	}

	rate := 0.0
	if visitors > 0 {
		rate = round1(float64(conversions) / float64(visitors) * 100)
		// Converted records without a visitor count can push conversions
		// past the visitor sum; the rate stays a percentage.
		if rate > 100 {
			rate = 100
		}
	}
	return &types.ConversionResult{
		Rate:        rate,
		Conversions: conversions,
		Visitors:    visitors,
	}
}
