package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"rtvm-report/internal/logger"
)

// Load reads an RTVM table from a workbook or CSV file, picked by extension.
func Load(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xls":
		return LoadWorkbook(path)
	case ".csv":
		return LoadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported input file type: %s", path)
	}
}

// LoadWorkbook reads the RTVM sheet out of an Excel workbook. The sheet is
// located by scanning for a header row that carries the known status
// columns; export tools rename sheets often enough that a fixed name can't
// be trusted.
func LoadWorkbook(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) == 0 {
			continue
		}

		headerRow := findHeaderRow(rows)
		if headerRow < 0 {
			continue
		}

		logger.Info("Found RTVM data in sheet %q (%d rows)", name, len(rows)-headerRow-1)
		t := NewTable(rows[headerRow], rows[headerRow+1:])
		t.Path = path
		return t, nil
	}

	return nil, fmt.Errorf("no sheet with RTVM status columns found in %s", path)
}

// findHeaderRow scans the leading rows for one that mentions the assigned
// documents column or at least two of the status columns.
func findHeaderRow(rows [][]string) int {
	limit := len(rows)
	if limit > 10 {
		limit = 10
	}
	for i := 0; i < limit; i++ {
		rowText := strings.ToLower(strings.Join(rows[i], " "))
		if strings.Contains(rowText, strings.ToLower(ColAssignedDocs)) {
			return i
		}
		hits := 0
		for _, col := range []string{ColObjectStatus, ColContractorStatus, ColGovernmentStatus} {
			if strings.Contains(rowText, strings.ToLower(col)) {
				hits++
			}
		}
		if hits >= 2 {
			return i
		}
	}
	return -1
}

// LoadCSV reads a comma-separated export. Non-UTF-8 files fall back to
// Windows-1252, which covers what the spreadsheet tools around here emit.
func LoadCSV(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	if !utf8.Valid(raw) {
		decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decode csv: %w", err)
		}
		raw = decoded
	}

	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv file is empty: %s", path)
	}

	headerRow := findHeaderRow(rows)
	if headerRow < 0 {
		headerRow = 0
	}

	t := NewTable(rows[headerRow], rows[headerRow+1:])
	t.Path = path
	return t, nil
}
