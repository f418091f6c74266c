package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadExcel_FullRow(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"date", "nps_score", "satisfaction_score", "converted", "visitors", "sales", "status"},
		{"2024-01-15", "9", "5", "true", "120", "1500.50", "Active"},
	})

	ds, err := LoadExcel(path)
	require.NoError(t, err)
	require.Len(t, ds.Records, 1)

	rec := ds.Records[0]
	assert.Equal(t, "2024-01-15", rec.Date.Format("2006-01-02"))
	require.NotNil(t, rec.NPSScore)
	assert.Equal(t, 9, *rec.NPSScore)
	require.NotNil(t, rec.Sales)
	assert.Equal(t, 1500.50, *rec.Sales)
	assert.Equal(t,
		[]string{"date", "nps_score", "satisfaction_score", "converted", "visitors", "sales", "status"},
		ds.Columns)
}

func TestLoadExcel_MissingFileIsSourceError(t *testing.T) {
	_, err := LoadExcel(filepath.Join(t.TempDir(), "missing.xlsx"))
	var srcErr *SourceError
	require.ErrorAs(t, err, &srcErr)
}

func TestLoadExcel_NoRecognizedColumnsIsSchemaError(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"foo", "bar"},
		{"1", "2"},
	})

	_, err := LoadExcel(path)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Error(), "no recognized columns")
}

func TestLoadExcel_UnparseableFieldBecomesNil(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"nps_score", "sales"},
		{"not-a-number", "250.0"},
	})

	ds, err := LoadExcel(path)
	require.NoError(t, err)
	require.Len(t, ds.Records, 1)
	assert.Nil(t, ds.Records[0].NPSScore)
	require.NotNil(t, ds.Records[0].Sales)
	assert.Equal(t, 250.0, *ds.Records[0].Sales)
}

func TestLoad_DispatchesOnExtension(t *testing.T) {
	xlsxPath := writeWorkbook(t, [][]interface{}{
		{"nps_score"},
		{"8"},
	})
	ds, err := Load(xlsxPath)
	require.NoError(t, err)
	assert.Len(t, ds.Records, 1)

	csvPath := writeCSV(t, "nps_score\n8\n")
	ds, err = Load(csvPath)
	require.NoError(t, err)
	assert.Len(t, ds.Records, 1)
}
