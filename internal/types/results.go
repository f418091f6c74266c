package types

// NPSResult holds the Net Promoter Score breakdown for a record set.
// Score is %promoters minus %detractors, rounded to one decimal.
type NPSResult struct {
	Score          float64 `json:"score"`
	Promoters      int     `json:"promoters"`
	Passives       int     `json:"passives"`
	Detractors     int     `json:"detractors"`
	TotalResponses int     `json:"total_responses"`
	PctPromoters   float64 `json:"pct_promoters"`
	PctPassives    float64 `json:"pct_passives"`
	PctDetractors  float64 `json:"pct_detractors"`
}

// CSATResult holds the customer satisfaction score for a record set.
// Percent is the share of responses at or above the satisfaction threshold.
type CSATResult struct {
	Percent        float64 `json:"percent"`
	Satisfied      int     `json:"satisfied"`
	TotalResponses int     `json:"total_responses"`
	AverageScore   float64 `json:"average_score"`
}

// ConversionResult holds the conversion rate over summed visitor counts.
// A record set with zero visitors reports a rate of 0 rather than failing.
type ConversionResult struct {
	Rate        float64 `json:"rate"`
	Conversions int     `json:"conversions"`
	Visitors    int     `json:"visitors"`
}

// SalesResult holds aggregate sales figures. Growth compares the first and
// last period totals and is 0 when the first-period total is zero or fewer
// than two sales values exist.
type SalesResult struct {
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	Growth  float64 `json:"growth"`
	Count   int     `json:"count"`
}

// LifecycleResult breaks the record set down by status label, calendar month
// and ISO week. Months are keyed "YYYY-MM" and weeks "YYYY-Www"; records
// without a date are omitted from the dated counts.
type LifecycleResult struct {
	ByStatus map[string]int `json:"by_status,omitempty"`
	ByMonth  map[string]int `json:"by_month,omitempty"`
	ByWeek   map[string]int `json:"by_week,omitempty"`
}
