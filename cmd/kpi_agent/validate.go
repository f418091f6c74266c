package main

import (
	"fmt"
	"os"

	"github.com/jonathan/kpi-dashboard/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a KPI bundle against its JSON schema",
	Long:  "Checks that a bundle JSON file conforms to schemas/kpi_bundle.schema.json, so downstream consumers can rely on its shape.",
	RunE:  runValidate,
}

var (
	validateBundle string
	validateSchema string
)

func init() {
	validateCmd.Flags().StringVarP(&validateBundle, "bundle", "b", "", "Path to the KPI bundle JSON file (required)")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Path to the schema file (defaults to the bundled kpi_bundle.schema.json)")

	if err := validateCmd.MarkFlagRequired("bundle"); err != nil {
		panic(fmt.Sprintf("failed to mark bundle flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	schemaPath := validateSchema
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(schemas.BundleSchema)
		if schemaPath == "" {
			return fmt.Errorf("could not locate %s; pass --schema explicitly", schemas.BundleSchema)
		}
	}

	if err := schemas.ValidateJSON(schemaPath, validateBundle); err != nil {
		return fmt.Errorf("bundle validation failed: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Bundle is valid: %s\n", validateBundle)
	return nil
}
