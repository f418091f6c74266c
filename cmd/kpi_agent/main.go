// Package main provides the entry point for the KPI dashboard pipeline CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kpi_agent",
	Short: "Business KPI analytics pipeline",
	Long:  "kpi_agent computes business KPIs (NPS, CSAT, conversion rate, sales metrics) from a tabular dataset and exports them in formats consumable by BI tools such as Tableau and Power BI.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
