package main

import (
	"fmt"
	"os"

	"github.com/jonathan/kpi-dashboard/internal/export"
	"github.com/jonathan/kpi-dashboard/internal/types"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Reshape a KPI bundle into BI-tool files",
	Long:  "Reads the bundle JSON produced by analyze and writes three flat files: a row-oriented CSV for Tableau, a nested JSON document for Power BI, and a condensed summary CSV.",
	RunE:  runExport,
}

var (
	exportBundle string
	exportOutDir string
)

func init() {
	exportCmd.Flags().StringVarP(&exportBundle, "bundle", "b", "", "Path to the KPI bundle JSON file (required)")
	exportCmd.Flags().StringVarP(&exportOutDir, "out", "o", "dashboards", "Output directory for the export files")

	if err := exportCmd.MarkFlagRequired("bundle"); err != nil {
		panic(fmt.Sprintf("failed to mark bundle flag as required: %v", err))
	}

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	bundle, err := readBundle(exportBundle)
	if err != nil {
		return err
	}

	paths, err := export.WriteAll(bundle, exportOutDir)
	if err != nil {
		return fmt.Errorf("failed to write exports: %w", err)
	}

	fmt.Fprintln(os.Stdout, "Generated files:")
	fmt.Fprintf(os.Stdout, "- %s (for Tableau)\n", paths[0])
	fmt.Fprintf(os.Stdout, "- %s (for Power BI)\n", paths[1])
	fmt.Fprintf(os.Stdout, "- %s (summary table)\n", paths[2])
	return nil
}

func readBundle(path string) (*types.KPIBundle, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle file %s: %w", path, err)
	}
	bundle, err := types.LoadBundle(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bundle %s: %w", path, err)
	}
	return bundle, nil
}
