package compare

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
}

func TestWorkbooksIdentical(t *testing.T) {
	dir := t.TempDir()
	rows := [][]interface{}{
		{"DOORS SPEC ID", "Object Status"},
		{"SPEC-1", "Accepted"},
	}
	path1 := filepath.Join(dir, "a.xlsx")
	path2 := filepath.Join(dir, "b.xlsx")
	writeWorkbook(t, path1, rows)
	writeWorkbook(t, path2, rows)

	diffs, err := Workbooks(path1, path2, "")
	if err != nil {
		t.Fatalf("Workbooks failed: %v", err)
	}
	if len(diffs) != 0 {
		t.Errorf("identical workbooks produced %d diffs: %v", len(diffs), diffs)
	}
}

func TestWorkbooksFindDifferences(t *testing.T) {
	dir := t.TempDir()
	path1 := filepath.Join(dir, "before.xlsx")
	path2 := filepath.Join(dir, "after.xlsx")
	writeWorkbook(t, path1, [][]interface{}{
		{"DOORS SPEC ID", "Object Status"},
		{"SPEC-1", "Accepted"},
		{"SPEC-2", "Accepted"},
	})
	writeWorkbook(t, path2, [][]interface{}{
		{"DOORS SPEC ID", "Object Status"},
		{"SPEC-1", "Proposed Delete"},
		{"SPEC-2", "Accepted", "extra note"},
	})

	diffs, err := Workbooks(path1, path2, "")
	if err != nil {
		t.Fatalf("Workbooks failed: %v", err)
	}
	if len(diffs) != 2 {
		t.Fatalf("got %d diffs, want 2: %v", len(diffs), diffs)
	}

	first := diffs[0]
	if first.Row != 2 || first.Column != "B" {
		t.Errorf("first diff at %s%d, want B2", first.Column, first.Row)
	}
	if first.Value1 != "Accepted" || first.Value2 != "Proposed Delete" {
		t.Errorf("first diff values = %q/%q", first.Value1, first.Value2)
	}

	// The extra cell compares against an empty string.
	second := diffs[1]
	if second.Row != 3 || second.Column != "C" || second.Value1 != "" || second.Value2 != "extra note" {
		t.Errorf("unexpected second diff: %+v", second)
	}
}

func TestWorkbooksRowCountMismatch(t *testing.T) {
	dir := t.TempDir()
	path1 := filepath.Join(dir, "a.xlsx")
	path2 := filepath.Join(dir, "b.xlsx")
	writeWorkbook(t, path1, [][]interface{}{{"SPEC-1"}})
	writeWorkbook(t, path2, [][]interface{}{{"SPEC-1"}, {"SPEC-2"}})

	diffs, err := Workbooks(path1, path2, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(diffs) != 1 || diffs[0].Row != 2 || diffs[0].Value2 != "SPEC-2" {
		t.Errorf("unexpected diffs for missing row: %v", diffs)
	}
}

func TestWorkbooksMissingSheet(t *testing.T) {
	dir := t.TempDir()
	path1 := filepath.Join(dir, "a.xlsx")
	path2 := filepath.Join(dir, "b.xlsx")
	writeWorkbook(t, path1, [][]interface{}{{"x"}})
	writeWorkbook(t, path2, [][]interface{}{{"x"}})

	if _, err := Workbooks(path1, path2, "RTVM"); err == nil {
		t.Error("expected error for a sheet neither workbook has")
	}
}

func TestSaveResults(t *testing.T) {
	dir := t.TempDir()
	diffs := []Difference{
		{Row: 2, Column: "B", Value1: "Accepted", Value2: "Proposed Delete"},
	}

	outPath := filepath.Join(dir, "diffs.xlsx")
	if err := SaveResults(diffs, "/data/before.xlsx", "/data/after.xlsx", outPath); err != nil {
		t.Fatalf("SaveResults failed: %v", err)
	}

	f, err := excelize.OpenFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows("Differences")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header plus 1", len(rows))
	}
	if rows[0][2] != "before.xlsx" || rows[0][3] != "after.xlsx" {
		t.Errorf("header file names = %v", rows[0][2:])
	}
	if rows[1][0] != "2" || rows[1][1] != "B" || rows[1][3] != "Proposed Delete" {
		t.Errorf("unexpected diff row: %v", rows[1])
	}
}
