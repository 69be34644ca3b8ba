package subset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"rtvm-report/internal/dataset"
	"rtvm-report/internal/exporter"
	"rtvm-report/internal/model"
	"rtvm-report/internal/report"
)

const sheetName = "RTVM"

// Manager splits the RTVM table into per-SWBS subset workbooks and puts
// them back together. Subsets let each discipline work its own slice of the
// matrix and recombine before submission.
type Manager struct {
	Groups model.SWBSGroups

	// Log receives human-readable progress lines.
	Log func(format string, args ...interface{})
}

// NewManager creates a Manager over the given membership table.
func NewManager(groups model.SWBSGroups, log func(string, ...interface{})) *Manager {
	return &Manager{Groups: groups, Log: log}
}

// CreateSubsets writes one workbook per SWBS group containing the rows whose
// verification entries reference a DI number in that group. Groups with no
// matching rows produce no file. When a template workbook is supplied the
// subset is written into a copy of it so site styling survives. Returns the
// written paths.
func (m *Manager) CreateSubsets(t *dataset.Table, templatePath, baseDir string, pmrNumber int) ([]string, error) {
	if pmrNumber <= 0 {
		return nil, fmt.Errorf("invalid PMR number: %d", pmrNumber)
	}
	if baseDir == "" {
		return nil, fmt.Errorf("no base output directory selected")
	}

	var written []string
	for _, label := range m.Groups.Labels() {
		rows := m.rowsForGroup(t, label)
		if len(rows) == 0 {
			continue
		}

		short := strings.TrimSpace(strings.TrimPrefix(label, "SWBS "))
		dir := filepath.Join(exporter.PMRDir(baseDir, pmrNumber), short+" SWBS")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return written, fmt.Errorf("failed to create subset directory: %w", err)
		}

		outPath := filepath.Join(dir, fmt.Sprintf("PMR %d - %s SWBS Subset.xlsx", pmrNumber, short))
		if err := m.writeSubset(t, rows, templatePath, outPath); err != nil {
			return written, err
		}
		written = append(written, outPath)
		m.logf("Created subset %s with %d rows", outPath, len(rows))
	}
	return written, nil
}

// rowsForGroup returns the indices of rows whose entries mention a DI number
// belonging to the group.
func (m *Manager) rowsForGroup(t *dataset.Table, label string) []int {
	var rows []int
	for i := range t.Rows {
		entries := report.ParseEntries(t.Cell(i, dataset.ColAssignedDocs))
		for _, e := range entries {
			if m.Groups.Contains(label, e.DINumber) {
				rows = append(rows, i)
				break
			}
		}
	}
	return rows
}

// writeSubset writes the selected rows into a new workbook, or into a copy
// of the template when one is configured.
func (m *Manager) writeSubset(t *dataset.Table, rows []int, templatePath, outPath string) error {
	var f *excelize.File
	var sheet string
	var err error

	if templatePath != "" {
		f, err = excelize.OpenFile(templatePath)
		if err != nil {
			return fmt.Errorf("failed to open template: %w", err)
		}
		sheet = f.GetSheetName(0)
	} else {
		f = excelize.NewFile()
		sheet = sheetName
		f.NewSheet(sheet)
		if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
			f.DeleteSheet("Sheet1")
		}
	}
	defer f.Close()

	for c, h := range t.Headers {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for r, rowIdx := range rows {
		for c := range t.Headers {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			value := ""
			if c < len(t.Rows[rowIdx]) {
				value = t.Rows[rowIdx][c]
			}
			f.SetCellValue(sheet, cell, value)
		}
	}

	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("failed to save subset: %w", err)
	}
	return nil
}

// Recombine gathers every subset workbook under the PMR directory back into
// one table, deduplicating rows by their first-column spec ID (first subset
// wins), and writes the combined workbook to outPath.
func (m *Manager) Recombine(baseDir string, pmrNumber int, outPath string) (*dataset.Table, error) {
	pmrDir := exporter.PMRDir(baseDir, pmrNumber)

	var subsetPaths []string
	err := filepath.WalkDir(pmrDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), "SWBS Subset.xlsx") {
			subsetPaths = append(subsetPaths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan for subsets: %w", err)
	}
	if len(subsetPaths) == 0 {
		return nil, fmt.Errorf("no subset workbooks found under %s", pmrDir)
	}
	sort.Strings(subsetPaths)

	var headers []string
	var combined [][]string
	seen := make(map[string]bool)

	for _, path := range subsetPaths {
		t, err := dataset.LoadWorkbook(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load subset %s: %w", path, err)
		}
		if headers == nil {
			headers = t.Headers
		}
		for _, row := range t.Rows {
			id := ""
			if len(row) > 0 {
				id = strings.TrimSpace(row[0])
			}
			if id != "" && seen[id] {
				continue
			}
			if id != "" {
				seen[id] = true
			}
			combined = append(combined, row)
		}
		m.logf("Recombined %s (%d rows)", filepath.Base(path), len(t.Rows))
	}

	result := dataset.NewTable(headers, combined)
	if err := m.writeSubset(result, allRows(result), "", outPath); err != nil {
		return nil, err
	}
	m.logf("Wrote recombined RTVM with %d rows to %s", len(combined), outPath)
	return result, nil
}

// MergeSubset overlays a single subset's rows onto the main table, matching
// by first-column spec ID, and reports how many rows were replaced.
func (m *Manager) MergeSubset(main *dataset.Table, subsetPath string) (int, error) {
	sub, err := dataset.LoadWorkbook(subsetPath)
	if err != nil {
		return 0, fmt.Errorf("failed to load subset: %w", err)
	}

	byID := make(map[string]int, len(main.Rows))
	for i, row := range main.Rows {
		if len(row) > 0 && strings.TrimSpace(row[0]) != "" {
			byID[strings.TrimSpace(row[0])] = i
		}
	}

	merged := 0
	for _, row := range sub.Rows {
		if len(row) == 0 {
			continue
		}
		id := strings.TrimSpace(row[0])
		if idx, ok := byID[id]; ok {
			main.Rows[idx] = row
			merged++
		}
	}
	m.logf("Merged %d rows from %s", merged, filepath.Base(subsetPath))
	return merged, nil
}

// Save writes the table as a workbook at outPath, headers plus every row.
// The merge flow uses it to persist the main table after an overlay.
func (m *Manager) Save(t *dataset.Table, outPath string) error {
	return m.writeSubset(t, allRows(t), "", outPath)
}

func allRows(t *dataset.Table) []int {
	rows := make([]int, len(t.Rows))
	for i := range rows {
		rows[i] = i
	}
	return rows
}

func (m *Manager) logf(format string, args ...interface{}) {
	if m.Log != nil {
		m.Log(format, args...)
	}
}
