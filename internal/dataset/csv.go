package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/kpi-dashboard/internal/types"
)

// Column names recognized in the source header. Unknown columns are ignored;
// a missing column disables the KPIs that read it rather than failing the load.
const (
	ColDate         = "date"
	ColNPSScore     = "nps_score"
	ColSatisfaction = "satisfaction_score"
	ColConverted    = "converted"
	ColVisitors     = "visitors"
	ColSales        = "sales"
	ColStatus       = "status"
)

// dateLayouts are tried in order when parsing the date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Dataset holds the loaded records plus the recognized column names in
// header order. Records keep file order; nothing downstream mutates them.
type Dataset struct {
	Records []types.Record
	Columns []string
}

var validate = validator.New()

// LoadCSV reads a CSV file into a Dataset. It returns a *SourceError when
// the file cannot be opened or read and a *SchemaError when the header
// contains no recognized columns or no row yields at least one usable field.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Cause: err}
	}
	defer f.Close()

	return parseCSV(path, f)
}

func parseCSV(path string, r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &SchemaError{Path: path, Message: "file is empty"}
	}
	if err != nil {
		return nil, &SourceError{Path: path, Cause: err}
	}

	index := columnIndex(header)
	if len(index) == 0 {
		return nil, &SchemaError{Path: path, Message: "no recognized columns in header"}
	}

	ds := &Dataset{Columns: recognizedColumns(header, index)}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row: skip it, keep the usable ones.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return nil, &SourceError{Path: path, Cause: err}
		}

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

// columnIndex maps each recognized column name to its position in the header.
func columnIndex(header []string) map[string]int {
	index := make(map[string]int)
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case ColDate, ColNPSScore, ColSatisfaction, ColConverted, ColVisitors, ColSales, ColStatus:
			index[strings.ToLower(strings.TrimSpace(name))] = i
		}
	}
	return index
}

func recognizedColumns(header []string, index map[string]int) []string {
	cols := make([]string, 0, len(index))
	for _, name := range header {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if _, ok := index[normalized]; ok {
			cols = append(cols, normalized)
		}
	}
	return cols
}

// parseRow converts one CSV row into a Record. Individual fields that fail
// to parse are left nil; the row is only rejected when nothing parses at all.
func parseRow(row []string, index map[string]int) (types.Record, bool) {
	var rec types.Record
	parsed := 0

	if v, ok := cell(row, index, ColDate); ok {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				rec.Date = t
				parsed++
				break
			}
		}
	}
	if v, ok := cell(row, index, ColNPSScore); ok {
		if n, err := strconv.Atoi(v); err == nil {
			rec.NPSScore = types.Int(n)
			parsed++
		}
	}
	if v, ok := cell(row, index, ColSatisfaction); ok {
		if n, err := strconv.Atoi(v); err == nil {
			rec.SatisfactionScore = types.Int(n)
			parsed++
		}
	}
	if v, ok := cell(row, index, ColConverted); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			rec.Converted = types.Bool(b)
			parsed++
		}
	}
	if v, ok := cell(row, index, ColVisitors); ok {
		if n, err := strconv.Atoi(v); err == nil {
			rec.Visitors = types.Int(n)
			parsed++
		}
	}
	if v, ok := cell(row, index, ColSales); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			rec.Sales = types.Float(f)
			parsed++
		}
	}
	if v, ok := cell(row, index, ColStatus); ok {
		rec.Status = types.String(v)
		parsed++
	}

	if parsed == 0 {
		return types.Record{}, false
	}
	DropOutOfRange(&rec)
	return rec, true
}

// cell returns the trimmed value of the named column, if present and non-empty.
func cell(row []string, index map[string]int, name string) (string, bool) {
	i, ok := index[name]
	if !ok || i >= len(row) {
		return "", false
	}
	v := strings.TrimSpace(row[i])
	if v == "" {
		return "", false
	}
	return v, true
}

// DropOutOfRange clears fields whose values fall outside the ranges declared
// on Record. An out-of-range value behaves exactly like an absent one. Every
// record source applies it, so downstream computations can trust the ranges.
func DropOutOfRange(rec *types.Record) {
	err := validate.Struct(rec)
	if err == nil {
		return
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return
	}
	for _, fe := range fieldErrs {
		switch fe.StructField() {
		case "NPSScore":
			rec.NPSScore = nil
		case "SatisfactionScore":
			rec.SatisfactionScore = nil
		case "Visitors":
			rec.Visitors = nil
		case "Sales":
			rec.Sales = nil
		}
	}
}
