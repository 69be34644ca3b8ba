package compare

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Difference is one cell that differs between two workbooks.
type Difference struct {
	Row    int    // 1-based row number
	Column string // column name, e.g. "C"
	Value1 string
	Value2 string
}

// Workbooks compares two workbooks cell by cell and returns the differing
// cells. With an empty sheet name each file's first sheet is used. A cell
// missing on one side compares as empty string.
func Workbooks(path1, path2, sheet string) ([]Difference, error) {
	rows1, err := readRows(path1, sheet)
	if err != nil {
		return nil, err
	}
	rows2, err := readRows(path2, sheet)
	if err != nil {
		return nil, err
	}

	var diffs []Difference
	rowCount := len(rows1)
	if len(rows2) > rowCount {
		rowCount = len(rows2)
	}

	for r := 0; r < rowCount; r++ {
		var row1, row2 []string
		if r < len(rows1) {
			row1 = rows1[r]
		}
		if r < len(rows2) {
			row2 = rows2[r]
		}

		colCount := len(row1)
		if len(row2) > colCount {
			colCount = len(row2)
		}
		for c := 0; c < colCount; c++ {
			v1, v2 := "", ""
			if c < len(row1) {
				v1 = row1[c]
			}
			if c < len(row2) {
				v2 = row2[c]
			}
			if v1 != v2 {
				colName, _ := excelize.ColumnNumberToName(c + 1)
				diffs = append(diffs, Difference{
					Row:    r + 1,
					Column: colName,
					Value1: v1,
					Value2: v2,
				})
			}
		}
	}
	return diffs, nil
}

func readRows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %s: %w", sheet, path, err)
	}
	return rows, nil
}

// SaveResults writes the differences as a workbook with one row per
// differing cell.
func SaveResults(diffs []Difference, path1, path2, outPath string) error {
	f := excelize.NewFile()
	sheet := "Differences"
	f.NewSheet(sheet)
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		f.DeleteSheet("Sheet1")
	}

	headers := []string{"Row", "Column", filepath.Base(path1), filepath.Base(path2)}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, d := range diffs {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), d.Row)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), d.Column)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), d.Value1)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), d.Value2)
	}

	f.SetColWidth(sheet, "C", "D", 40)

	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("failed to save comparison results: %w", err)
	}
	return nil
}
