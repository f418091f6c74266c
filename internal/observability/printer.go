package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/kpi-dashboard/internal/types"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate on runes so a multi-byte character is never split.
		if runes := []rune(line); len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDataset outputs a short summary of the loaded record set.
func (p *Printer) PrintDataset(recordCount int, columns []string) {
	content := fmt.Sprintf("Records: %d\nColumns: %s", recordCount, strings.Join(columns, ", "))
	p.printBox("LOADED DATASET", content)
}

// PrintBundle outputs a condensed view of the computed bundle: one line per
// KPI group with its headline metric, plus which groups were skipped.
func (p *Printer) PrintBundle(bundle *types.KPIBundle) {
	if bundle == nil {
		return
	}

	var sb strings.Builder
	var skipped []string

	if n := bundle.NPS; n != nil {
		sb.WriteString(fmt.Sprintf("NPS:         %.1f (%d responses)\n", n.Score, n.TotalResponses))
	} else {
		skipped = append(skipped, "nps")
	}
	if c := bundle.CSAT; c != nil {
		sb.WriteString(fmt.Sprintf("CSAT:        %.1f%% (%d responses)\n", c.Percent, c.TotalResponses))
	} else {
		skipped = append(skipped, "csat")
	}
	if c := bundle.Conversion; c != nil {
		sb.WriteString(fmt.Sprintf("Conversion:  %.1f%% (%d visitors)\n", c.Rate, c.Visitors))
	} else {
		skipped = append(skipped, "conversion_rate")
	}
	if s := bundle.Sales; s != nil {
		sb.WriteString(fmt.Sprintf("Sales total: $%.2f (growth %.1f%%)\n", s.Total, s.Growth))
	} else {
		skipped = append(skipped, "sales")
	}
	if len(skipped) > 0 {
		sb.WriteString(fmt.Sprintf("Skipped (no usable records): %s\n", strings.Join(skipped, ", ")))
	}

	p.printBox("KPI BUNDLE", strings.TrimSuffix(sb.String(), "\n"))
}

func sortedStatusKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
