// Package types provides type definitions for the structured data passed
// between the analyzer and the dashboard exporters.
package types

import "time"

// Record represents one business observation loaded from a tabular source.
// Every field except Date is optional: a nil field excludes the record from
// the KPI computations that read it, it never rejects the record.
type Record struct {
	Date              time.Time `json:"date"`
	NPSScore          *int      `json:"nps_score,omitempty" validate:"omitempty,min=0,max=10"`
	SatisfactionScore *int      `json:"satisfaction_score,omitempty" validate:"omitempty,min=1,max=5"`
	Converted         *bool     `json:"converted,omitempty"`
	Visitors          *int      `json:"visitors,omitempty" validate:"omitempty,min=0"`
	Sales             *float64  `json:"sales,omitempty" validate:"omitempty,min=0"`
	Status            *string   `json:"status,omitempty"`
}

// Int returns a pointer to v. Convenience constructor for optional fields.
func Int(v int) *int { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }
