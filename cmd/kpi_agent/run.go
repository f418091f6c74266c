package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/kpi-dashboard/internal/analytics"
	"github.com/jonathan/kpi-dashboard/internal/config"
	"github.com/jonathan/kpi-dashboard/internal/db"
	"github.com/jonathan/kpi-dashboard/internal/export"
	"github.com/jonathan/kpi-dashboard/internal/observability"
	"github.com/spf13/cobra"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full KPI pipeline end-to-end",
	Long: `Orchestrates the entire pipeline: load records -> compute KPIs -> summary report -> bundle artifact -> dashboard exports.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath   string
	runInput        string
	runBundlePath   string
	runOutDir       string
	runGrowthPolicy string
	runDatabaseURL  string
	runTable        string
	runVerbose      bool
	runPersist      bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runInput, "input", "i", "", "Path to the input CSV or Excel dataset (mutually exclusive with --db-url)")
	runCommand.Flags().StringVar(&runBundlePath, "bundle", "", "Path for the KPI bundle JSON artifact")
	runCommand.Flags().StringVarP(&runOutDir, "out", "o", "", "Output directory for the dashboard export files")
	runCommand.Flags().StringVar(&runGrowthPolicy, "growth-policy", "", "Sales growth split policy: halves or by-date")
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	runCommand.Flags().StringVar(&runTable, "table", "", "Records table name when loading from PostgreSQL")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed progress information")
	runCommand.Flags().BoolVar(&runPersist, "persist", false, "Also save the computed bundle to PostgreSQL (requires --db-url)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if runVerbose {
			fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("input") {
		cfg.Input = runInput
	}
	if cmd.Flags().Changed("bundle") {
		cfg.Bundle = runBundlePath
	}
	if cmd.Flags().Changed("out") {
		cfg.OutDir = runOutDir
	}
	if cmd.Flags().Changed("growth-policy") {
		cfg.GrowthPolicy = runGrowthPolicy
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}
	if cmd.Flags().Changed("table") {
		cfg.RecordsTable = runTable
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Bundle:       "dashboard_data.json",
		OutDir:       "dashboards",
		GrowthPolicy: string(analytics.SplitHalves),
	})
	if cfg.DatabaseURL == "" && cfg.Input == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Input == "" && cfg.DatabaseURL == "" {
		return fmt.Errorf("either --input or --db-url must be provided (or set in the config file)")
	}
	if runPersist && cfg.DatabaseURL == "" {
		return fmt.Errorf("--persist requires --db-url")
	}

	// Step 4: Load records and compute the bundle
	records, columns, err := loadRecords(cfg.Input, cfg.DatabaseURL, cfg.RecordsTable)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintDataset(len(records), columns)
	}

	bundle := analytics.BuildBundle(records, analytics.BuildOptions{
		SplitPolicy: analytics.SplitPolicy(cfg.GrowthPolicy),
		Columns:     columns,
	})

	fmt.Fprint(os.Stdout, observability.SummaryReport(bundle))
	if cfg.Verbose {
		printer.PrintBundle(bundle)
	}

	// Step 5: Write the bundle artifact and the dashboard exports
	if err := writeBundle(bundle, cfg.Bundle); err != nil {
		return err
	}
	paths, err := export.WriteAll(bundle, cfg.OutDir)
	if err != nil {
		return fmt.Errorf("failed to write exports: %w", err)
	}

	// Step 6: Optionally persist the bundle
	if runPersist {
		ctx := context.Background()
		conn, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer conn.Close()
		if err := conn.SaveBundle(ctx, bundle); err != nil {
			return err
		}
		if cfg.Verbose {
			fmt.Fprintf(os.Stdout, "Bundle %s saved to database\n", bundle.ID)
		}
	}

	fmt.Fprintf(os.Stdout, "Bundle written: %s\n", cfg.Bundle)
	fmt.Fprintln(os.Stdout, "Generated files:")
	for _, p := range paths {
		fmt.Fprintf(os.Stdout, "- %s\n", p)
	}
	return nil
}
