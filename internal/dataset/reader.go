package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Read loads a tabular file, choosing the reader by file extension.
// Supported extensions are .csv and .xlsx.
func Read(path string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(path)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

// ReadCSV loads a CSV file into a Dataset. The first record is the header
// defining column names; short rows pad with missing values.
func ReadCSV(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, missing cells pad below

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV records: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file %s has no header row", path)
	}

	return fromRows(records)
}

// ReadXLSX loads an Excel workbook into a Dataset. The first populated sheet
// supplies the data; its first row is the header.
func ReadXLSX(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var records [][]string
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		if len(rows) > 0 {
			records = rows
			break
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("workbook %s has no populated sheet", path)
	}

	return fromRows(records)
}

// fromRows builds a Dataset from raw string records, header first. Header
// cells are trimmed; duplicate header names keep the first occurrence.
func fromRows(records [][]string) (*Dataset, error) {
	header := records[0]
	columns := make([]string, 0, len(header))
	seen := make(map[string]bool, len(header))
	for _, h := range header {
		name := strings.TrimSpace(h)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		columns = append(columns, name)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("header row has no usable column names")
	}

	// Map column name to its position in the raw header, first wins.
	index := make(map[string]int, len(columns))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if _, ok := index[name]; name != "" && !ok {
			index[name] = i
		}
	}

	ds := New(columns)
	for _, record := range records[1:] {
		row := make(Row, len(columns))
		for _, col := range columns {
			i := index[col]
			if i < len(record) {
				row[col] = Text(record[i])
			} else {
				row[col] = Missing()
			}
		}
		ds.Append(row)
	}
	return ds, nil
}
