package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/kpi-dashboard/internal/types"
)

// BuildOptions control bundle assembly. Now is stamped onto the bundle so
// callers (and tests) can freeze the generation time; a zero Now falls back
// to the current UTC time and a zero ID gets a fresh UUID.
type BuildOptions struct {
	ID          uuid.UUID
	Now         time.Time
	SplitPolicy SplitPolicy
	Columns     []string
}

// BuildBundle runs every KPI computation over the record set and assembles
// the handoff bundle. The computations are independent; a group with no
// usable records is left nil without affecting the others.
func BuildBundle(records []types.Record, opts BuildOptions) *types.KPIBundle {
	id := opts.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	return &types.KPIBundle{
		ID:          id,
		GeneratedAt: now,
		RecordCount: len(records),
		Columns:     opts.Columns,
		NPS:         ComputeNPS(records),
		CSAT:        ComputeCSAT(records),
		Conversion:  ComputeConversionRate(records),
		Sales:       ComputeSalesMetrics(records, opts.SplitPolicy),
		Lifecycle:   ComputeLifecycle(records),
	}
}
