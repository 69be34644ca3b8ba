package subset

import (
	"os"
	"path/filepath"
	"testing"

	"rtvm-report/internal/dataset"
	"rtvm-report/internal/model"

	"github.com/xuri/excelize/v2"
)

func entryCell(diNumber string) string {
	return "Object Identifier: VD-X\nDI Number: " + diNumber +
		"\nGovernment Assessed Status: Agree\nContractor Assessed Status: Sat"
}

func testTable() *dataset.Table {
	headers := []string{dataset.ColSpecID, dataset.ColObjectStatus, dataset.ColAssignedDocs}
	rows := [][]string{
		{"SPEC-1", "Accepted", entryCell("100-001")},
		{"SPEC-2", "Accepted", entryCell("300-001")},
		{"SPEC-3", "Accepted", entryCell("100-002")},
		{"SPEC-4", "Accepted", ""},
	}
	return dataset.NewTable(headers, rows)
}

func testManager() *Manager {
	return NewManager(model.SWBSGroups{
		"SWBS 100": {"100-001", "100-002"},
		"SWBS 300": {"300-001"},
		"SWBS 500": {"500-001"},
	}, nil)
}

func TestCreateSubsets(t *testing.T) {
	baseDir := t.TempDir()
	mgr := testManager()

	written, err := mgr.CreateSubsets(testTable(), "", baseDir, 4)
	if err != nil {
		t.Fatalf("CreateSubsets failed: %v", err)
	}

	// SWBS 500 has no matching rows and produces no file.
	if len(written) != 2 {
		t.Fatalf("got %d subsets, want 2: %v", len(written), written)
	}

	want100 := filepath.Join(baseDir, "PMR 4", "100 SWBS", "PMR 4 - 100 SWBS Subset.xlsx")
	if written[0] != want100 {
		t.Errorf("first subset path = %q, want %q", written[0], want100)
	}

	sub, err := dataset.LoadWorkbook(want100)
	if err != nil {
		t.Fatalf("failed to load subset back: %v", err)
	}
	if len(sub.Rows) != 2 {
		t.Errorf("SWBS 100 subset has %d rows, want 2", len(sub.Rows))
	}
	if got := sub.Cell(0, dataset.ColSpecID); got != "SPEC-1" {
		t.Errorf("first subset row = %q, want SPEC-1", got)
	}
}

func TestCreateSubsetsValidation(t *testing.T) {
	mgr := testManager()
	if _, err := mgr.CreateSubsets(testTable(), "", "", 4); err == nil {
		t.Error("expected error for missing base directory")
	}
	if _, err := mgr.CreateSubsets(testTable(), "", t.TempDir(), 0); err == nil {
		t.Error("expected error for non-positive PMR number")
	}
}

func TestCreateSubsetsWithTemplate(t *testing.T) {
	baseDir := t.TempDir()

	// Template with a custom first sheet name.
	templatePath := filepath.Join(baseDir, "template.xlsx")
	tmpl := excelize.NewFile()
	idx, err := tmpl.NewSheet("Site RTVM")
	if err != nil {
		t.Fatal(err)
	}
	tmpl.SetActiveSheet(idx)
	tmpl.DeleteSheet("Sheet1")
	if err := tmpl.SaveAs(templatePath); err != nil {
		t.Fatal(err)
	}

	mgr := testManager()
	written, err := mgr.CreateSubsets(testTable(), templatePath, baseDir, 4)
	if err != nil {
		t.Fatalf("CreateSubsets failed: %v", err)
	}

	f, err := excelize.OpenFile(written[0])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if name := f.GetSheetName(0); name != "Site RTVM" {
		t.Errorf("subset sheet = %q, want the template's Site RTVM", name)
	}
}

func TestRecombine(t *testing.T) {
	baseDir := t.TempDir()
	mgr := testManager()

	if _, err := mgr.CreateSubsets(testTable(), "", baseDir, 4); err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(baseDir, "recombined.xlsx")
	combined, err := mgr.Recombine(baseDir, 4, outPath)
	if err != nil {
		t.Fatalf("Recombine failed: %v", err)
	}

	// SPEC-1, SPEC-3 from the 100 subset plus SPEC-2 from the 300 subset.
	if len(combined.Rows) != 3 {
		t.Fatalf("recombined %d rows, want 3", len(combined.Rows))
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("recombined workbook not written: %v", err)
	}
}

func TestRecombineDeduplicates(t *testing.T) {
	baseDir := t.TempDir()

	// SPEC-1 belongs to both groups; it must appear once after recombining.
	mgr := NewManager(model.SWBSGroups{
		"SWBS 100": {"100-001"},
		"SWBS 300": {"100-001"},
	}, nil)
	table := dataset.NewTable(
		[]string{dataset.ColSpecID, dataset.ColAssignedDocs},
		[][]string{{"SPEC-1", entryCell("100-001")}},
	)

	if _, err := mgr.CreateSubsets(table, "", baseDir, 1); err != nil {
		t.Fatal(err)
	}

	combined, err := mgr.Recombine(baseDir, 1, filepath.Join(baseDir, "combined.xlsx"))
	if err != nil {
		t.Fatalf("Recombine failed: %v", err)
	}
	if len(combined.Rows) != 1 {
		t.Errorf("got %d rows after dedupe, want 1", len(combined.Rows))
	}
}

func TestRecombineNoSubsets(t *testing.T) {
	mgr := testManager()
	baseDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(baseDir, "PMR 9"), 0755); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.Recombine(baseDir, 9, filepath.Join(baseDir, "out.xlsx")); err == nil {
		t.Error("expected error when no subset workbooks exist")
	}
}

func TestMergeSubset(t *testing.T) {
	baseDir := t.TempDir()
	mgr := testManager()

	main := testTable()
	written, err := mgr.CreateSubsets(main, "", baseDir, 4)
	if err != nil {
		t.Fatal(err)
	}

	// Edit the 100 subset the way a discipline lead would.
	f, err := excelize.OpenFile(written[0])
	if err != nil {
		t.Fatal(err)
	}
	if err := f.SetCellValue(f.GetSheetName(0), "B2", "Proposed Delete"); err != nil {
		t.Fatal(err)
	}
	if err := f.Save(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	merged, err := mgr.MergeSubset(main, written[0])
	if err != nil {
		t.Fatalf("MergeSubset failed: %v", err)
	}
	if merged != 2 {
		t.Errorf("merged %d rows, want 2", merged)
	}
	if got := main.Cell(0, dataset.ColObjectStatus); got != "Proposed Delete" {
		t.Errorf("main table not updated: %q", got)
	}

	// Persist the merged table and read it back.
	outPath := filepath.Join(baseDir, "merged.xlsx")
	if err := mgr.Save(main, outPath); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	saved, err := dataset.LoadWorkbook(outPath)
	if err != nil {
		t.Fatalf("failed to reload merged workbook: %v", err)
	}
	if len(saved.Rows) != len(main.Rows) {
		t.Errorf("saved %d rows, want %d", len(saved.Rows), len(main.Rows))
	}
	if got := saved.Cell(0, dataset.ColObjectStatus); got != "Proposed Delete" {
		t.Errorf("merged edit not persisted: %q", got)
	}
}
