// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/kpi-dashboard/internal/analytics"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Input  string `json:"input,omitempty"`   // Path to the input CSV or Excel dataset
	Bundle string `json:"bundle,omitempty"`  // Path for the analyzer's bundle JSON artifact
	OutDir string `json:"out_dir,omitempty"` // Directory for the dashboard export files

	// Analysis
	GrowthPolicy string `json:"growth_policy,omitempty"` // Sales growth split policy: "halves" or "by-date"

	// Database (optional record source / bundle persistence)
	DatabaseURL  string `json:"database_url,omitempty"`  // PostgreSQL connection URL
	RecordsTable string `json:"records_table,omitempty"` // Table to load records from

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed progress information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are checked by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.GrowthPolicy != "" && !analytics.SplitPolicy(c.GrowthPolicy).Valid() {
		return fmt.Errorf("config error: 'growth_policy' must be %q or %q, got %q",
			analytics.SplitHalves, analytics.SplitByDate, c.GrowthPolicy)
	}
	if c.RecordsTable != "" && c.DatabaseURL == "" {
		return fmt.Errorf("config error: 'records_table' requires 'database_url'")
	}
	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Bundle == "" {
		result.Bundle = defaults.Bundle
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.GrowthPolicy == "" {
		result.GrowthPolicy = defaults.GrowthPolicy
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RecordsTable == "" {
		result.RecordsTable = defaults.RecordsTable
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
