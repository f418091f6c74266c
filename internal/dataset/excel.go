package dataset

import (
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Load reads a dataset file, picking the loader from the file extension:
// .xlsx/.xlsm workbooks go through LoadExcel, everything else is treated
// as CSV.
func Load(path string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xls":
		return LoadExcel(path)
	default:
		return LoadCSV(path)
	}
}

// LoadExcel reads the first sheet of an Excel workbook into a Dataset. The
// first row is the header; rows and cells follow the same lenient parsing
// rules as the CSV loader, and the same error taxonomy applies.
func LoadExcel(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &SourceError{Path: path, Cause: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &SchemaError{Path: path, Message: "workbook has no sheets"}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &SourceError{Path: path, Cause: err}
	}
	if len(rows) == 0 {
		return nil, &SchemaError{Path: path, Message: "file is empty"}
	}

	index := columnIndex(rows[0])
	if len(index) == 0 {
		return nil, &SchemaError{Path: path, Message: "no recognized columns in header"}
	}

	ds := &Dataset{Columns: recognizedColumns(rows[0], index)}
	for _, row := range rows[1:] {
		rec, ok := parseRow(row, index)
		if !ok {
			continue
		}
		ds.Records = append(ds.Records, rec)
	}
	if len(ds.Records) == 0 {
		return nil, &SchemaError{Path: path, Message: "no parseable rows"}
	}
	return ds, nil
}
