// Package dataset extracts the header row from tabular loan data files.
// The matcher has no knowledge of file formats; this package is the
// ingestion boundary that turns a CSV or XLSX file into a plain sequence
// of header strings.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// HeaderRow reads the first row of a tabular file, dispatching on the
// file extension. Supported: .csv, .xlsx.
func HeaderRow(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return csvHeaderRow(path)
	case ".xlsx":
		return xlsxHeaderRow(path)
	default:
		return nil, fmt.Errorf("headers: unsupported file type %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

func csvHeaderRow(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("headers: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	// header rows in servicing tapes occasionally have ragged widths
	reader.FieldsPerRecord = -1

	record, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("headers: %s is empty (no header row)", path)
	}
	return record, nil
}

func xlsxHeaderRow(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("headers: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("headers: %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("headers: read %s: %w", path, err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("headers: %s is empty (no header row)", path)
	}
	return rows[0], nil
}
