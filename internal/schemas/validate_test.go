package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["value"],
	"properties": {
		"value": {"type": "number", "minimum": 0, "maximum": 100}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"value": 42.5}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	err := ValidateJSONString(testSchema, `{}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidateJSONString_OutOfRange(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"value": 250}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "value")
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": `, `{"value": 1}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "test.schema.json")
	jsonPath := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0644))
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"value": 10}`), 0644))

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "test.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0644))

	err := ValidateJSON(schemaPath, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")

	err = ValidateJSON(filepath.Join(dir, "missing.schema.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("does/not/exist.schema.json"))
}
