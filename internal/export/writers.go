package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/kpi-dashboard/internal/types"
)

// Default output filenames, one per target tool.
const (
	TableauFile = "tableau_data.csv"
	PowerBIFile = "powerbi_data.json"
	SummaryFile = "kpis_summary.csv"
)

// WriteAll writes the three dashboard files into outDir and returns their
// paths in (tableau, powerbi, summary) order.
func WriteAll(bundle *types.KPIBundle, outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	tableauPath := filepath.Join(outDir, TableauFile)
	if err := WriteTabularCSV(bundle, tableauPath); err != nil {
		return nil, err
	}
	powerbiPath := filepath.Join(outDir, PowerBIFile)
	if err := WriteDocumentJSON(bundle, powerbiPath); err != nil {
		return nil, err
	}
	summaryPath := filepath.Join(outDir, SummaryFile)
	if err := WriteSummaryCSV(bundle, summaryPath); err != nil {
		return nil, err
	}
	return []string{tableauPath, powerbiPath, summaryPath}, nil
}

// WriteTabularCSV writes the row-oriented export.
func WriteTabularCSV(bundle *types.KPIBundle, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"kpi", "metric", "value", "date"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range TabularRows(bundle) {
		record := []string{row.KPI, row.Metric, formatValue(row.Value), row.Date}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

// WriteDocumentJSON writes the nested document export.
func WriteDocumentJSON(bundle *types.KPIBundle, path string) error {
	doc := NestedDocument(bundle)
	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteSummaryCSV writes the condensed one-row-per-KPI export.
func WriteSummaryCSV(bundle *types.KPIBundle, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"kpi", "value"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range SummaryTable(bundle) {
		if err := w.Write([]string{row.KPI, formatValue(row.Value)}); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
