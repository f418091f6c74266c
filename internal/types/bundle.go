package types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// KPIBundle aggregates every computed KPI result together with dataset
// metadata. It is the only artifact handed from the analyzer to the
// dashboard exporters; exporters treat it as read-only.
//
// A KPI group that could not be computed (no usable records) is nil and
// marshals as absent, so one missing group never blocks the others.
type KPIBundle struct {
	ID          uuid.UUID         `json:"id"`
	GeneratedAt time.Time         `json:"generated_at"`
	RecordCount int               `json:"record_count"`
	Columns     []string          `json:"columns,omitempty"`
	NPS         *NPSResult        `json:"nps,omitempty"`
	CSAT        *CSATResult       `json:"csat,omitempty"`
	Conversion  *ConversionResult `json:"conversion_rate,omitempty"`
	Sales       *SalesResult      `json:"sales,omitempty"`
	Lifecycle   *LifecycleResult  `json:"lifecycle,omitempty"`
}

// ToJSON marshals the bundle to pretty-printed JSON.
func (b *KPIBundle) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bundle to JSON: %w", err)
	}
	return jsonBytes, nil
}

// LoadBundle reads and unmarshals a bundle previously written by the analyzer.
func LoadBundle(data []byte) (*KPIBundle, error) {
	var bundle KPIBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bundle JSON: %w", err)
	}
	return &bundle, nil
}
