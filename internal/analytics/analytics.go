// Package analytics computes business KPIs over a loaded record set.
//
// Every Compute* function is a pure projection: it reads the records, never
// mutates them, and returns nil when no record carries the fields it needs.
// The caller composes the individual results into a KPIBundle.
package analytics

import "math"

// round1 rounds to one decimal place, the precision used for percentages
// and scores throughout the report.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds to two decimal places, used for monetary amounts.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
