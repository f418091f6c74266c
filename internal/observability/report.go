// Package observability provides formatted output utilities: the plain-text
// KPI summary report and a boxed printer for verbose CLI mode.
package observability

import (
	"fmt"
	"strings"

	"github.com/jonathan/kpi-dashboard/internal/types"
)

const bannerWidth = 60

// SummaryReport formats the bundle into a human-readable text block. It is a
// pure string projection; every number already lives in the bundle.
func SummaryReport(bundle *types.KPIBundle) string {
	banner := strings.Repeat("=", bannerWidth)

	var sb strings.Builder
	sb.WriteString(banner + "\n")
	sb.WriteString("KPI SUMMARY REPORT\n")
	sb.WriteString(banner + "\n")
	sb.WriteString(fmt.Sprintf("Generated: %s | Records: %d\n",
		bundle.GeneratedAt.UTC().Format("2006-01-02 15:04:05"), bundle.RecordCount))

	if n := bundle.NPS; n != nil {
		sb.WriteString(fmt.Sprintf("\nNPS (Net Promoter Score): %.1f\n", n.Score))
		sb.WriteString(fmt.Sprintf("  Promoters:  %d (%.1f%%)\n", n.Promoters, n.PctPromoters))
		sb.WriteString(fmt.Sprintf("  Passives:   %d (%.1f%%)\n", n.Passives, n.PctPassives))
		sb.WriteString(fmt.Sprintf("  Detractors: %d (%.1f%%)\n", n.Detractors, n.PctDetractors))
	}
	if c := bundle.CSAT; c != nil {
		sb.WriteString(fmt.Sprintf("\nCSAT: %.1f%%\n", c.Percent))
		sb.WriteString(fmt.Sprintf("  Satisfied: %d/%d (avg score %.2f)\n",
			c.Satisfied, c.TotalResponses, c.AverageScore))
	}
	if c := bundle.Conversion; c != nil {
		sb.WriteString(fmt.Sprintf("\nConversion Rate: %.1f%%\n", c.Rate))
		sb.WriteString(fmt.Sprintf("  Conversions: %d\n", c.Conversions))
		sb.WriteString(fmt.Sprintf("  Visitors:    %d\n", c.Visitors))
	}
	if s := bundle.Sales; s != nil {
		sb.WriteString("\nSales:\n")
		sb.WriteString(fmt.Sprintf("  Total:   $%.2f\n", s.Total))
		sb.WriteString(fmt.Sprintf("  Average: $%.2f\n", s.Average))
		sb.WriteString(fmt.Sprintf("  Median:  $%.2f\n", s.Median))
		sb.WriteString(fmt.Sprintf("  Growth:  %.1f%%\n", s.Growth))
	}
	if l := bundle.Lifecycle; l != nil && len(l.ByStatus) > 0 {
		sb.WriteString("\nRecords by status:\n")
		for _, status := range sortedStatusKeys(l.ByStatus) {
			sb.WriteString(fmt.Sprintf("  %s: %d\n", status, l.ByStatus[status]))
		}
	}

	sb.WriteString(banner + "\n")
	return sb.String()
}
