package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/kpi-dashboard/internal/analytics"
	"github.com/jonathan/kpi-dashboard/internal/dataset"
	"github.com/jonathan/kpi-dashboard/internal/db"
	"github.com/jonathan/kpi-dashboard/internal/observability"
	"github.com/jonathan/kpi-dashboard/internal/types"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute KPIs from a dataset and write the bundle artifact",
	Long:  "Loads business records from a CSV or Excel file (or a PostgreSQL table with --db-url), computes NPS, CSAT, conversion rate and sales metrics, prints a summary report, and writes the KPI bundle JSON consumed by the export step.",
	RunE:  runAnalyze,
}

var (
	analyzeInput        string
	analyzeOut          string
	analyzeGrowthPolicy string
	analyzeDatabaseURL  string
	analyzeTable        string
	analyzeVerbose      bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "Path to the input CSV or Excel dataset (mutually exclusive with --db-url)")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "dashboard_data.json", "Path for the KPI bundle JSON artifact")
	analyzeCmd.Flags().StringVar(&analyzeGrowthPolicy, "growth-policy", string(analytics.SplitHalves), "Sales growth split policy: halves or by-date")
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL to load records from (optional, defaults to DATABASE_URL env var)")
	analyzeCmd.Flags().StringVar(&analyzeTable, "table", "", "Records table name when loading from PostgreSQL")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	databaseURL := analyzeDatabaseURL
	if databaseURL == "" && analyzeInput == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if analyzeInput == "" && databaseURL == "" {
		return fmt.Errorf("either --input or --db-url must be provided")
	}
	if analyzeInput != "" && analyzeDatabaseURL != "" {
		return fmt.Errorf("--input and --db-url are mutually exclusive; provide only one")
	}

	policy := analytics.SplitPolicy(analyzeGrowthPolicy)
	if !policy.Valid() {
		return fmt.Errorf("invalid --growth-policy %q: must be %q or %q",
			analyzeGrowthPolicy, analytics.SplitHalves, analytics.SplitByDate)
	}

	records, columns, err := loadRecords(analyzeInput, databaseURL, analyzeTable)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if analyzeVerbose {
		printer.PrintDataset(len(records), columns)
	}

	bundle := analytics.BuildBundle(records, analytics.BuildOptions{
		SplitPolicy: policy,
		Columns:     columns,
	})

	fmt.Fprint(os.Stdout, observability.SummaryReport(bundle))
	if analyzeVerbose {
		printer.PrintBundle(bundle)
	}

	if err := writeBundle(bundle, analyzeOut); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Bundle written: %s\n", analyzeOut)
	return nil
}

// loadRecords loads the record set from the input file (CSV or Excel, by
// extension) or, when input is empty, from the PostgreSQL table.
func loadRecords(input, databaseURL, table string) ([]types.Record, []string, error) {
	if input != "" {
		ds, err := dataset.Load(input)
		if err != nil {
			return nil, nil, err
		}
		return ds.Records, ds.Columns, nil
	}

	ctx := context.Background()
	conn, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, nil, err
	}
	defer conn.Close()

	records, err := conn.LoadRecords(ctx, table)
	if err != nil {
		return nil, nil, err
	}
	columns := []string{
		dataset.ColDate, dataset.ColNPSScore, dataset.ColSatisfaction,
		dataset.ColConverted, dataset.ColVisitors, dataset.ColSales, dataset.ColStatus,
	}
	return records, columns, nil
}

func writeBundle(bundle *types.KPIBundle, path string) error {
	jsonBytes, err := bundle.ToJSON()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write bundle %s: %w", path, err)
	}
	return nil
}
