package analytics

import (
	"fmt"

	"github.com/jonathan/kpi-dashboard/internal/types"
)

// ComputeLifecycle breaks the record set down by status label, by calendar
// month and by ISO week. Returns nil when no record carries a status or a
// date.
func ComputeLifecycle(records []types.Record) *types.LifecycleResult {
	byStatus := make(map[string]int)
	byMonth := make(map[string]int)
	byWeek := make(map[string]int)
	for _, r := range records {
		if r.Status != nil {
			byStatus[*r.Status]++
		}
		if !r.Date.IsZero() {
			byMonth[r.Date.Format("2006-01")]++
			year, week := r.Date.ISOWeek()
			byWeek[fmt.Sprintf("%04d-W%02d", year, week)]++
		}
	}
	if len(byStatus) == 0 && len(byMonth) == 0 {
		return nil
	}

	result := &types.LifecycleResult{}
	if len(byStatus) > 0 {
		result.ByStatus = byStatus
	}
	if len(byMonth) > 0 {
		result.ByMonth = byMonth
		result.ByWeek = byWeek
	}
	return result
}
