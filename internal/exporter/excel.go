package exporter

import (
	"fmt"
	"os"

	"rtvm-report/internal/model"

	"github.com/xuri/excelize/v2"
)

const rawDataSheet = "Raw Data"

// RawDataExporter writes a dataset's label/count pairs as a spreadsheet.
type RawDataExporter struct {
	// Stateless
}

// NewRawDataExporter creates a new RawDataExporter.
func NewRawDataExporter() *RawDataExporter {
	return &RawDataExporter{}
}

// Export writes the raw-data workbook for one dataset, overwriting any
// previous export at the same path.
func (e *RawDataExporter) Export(ds *model.ChartDataset, pmrNumber int, baseDir string) error {
	dir := GroupDir(baseDir, pmrNumber, ds.Group)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create group directory: %w", err)
	}

	f := excelize.NewFile()
	styler, err := NewStyler(f)
	if err != nil {
		return err
	}

	f.NewSheet(rawDataSheet)

	// Header row
	headers := []string{ds.LabelColumn(), "Count"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(rawDataSheet, cell, h)
		f.SetCellStyle(rawDataSheet, cell, cell, styler.HeaderStyle)
	}

	for i, label := range ds.Labels {
		row := i + 2
		labelCell := fmt.Sprintf("A%d", row)
		countCell := fmt.Sprintf("B%d", row)
		f.SetCellValue(rawDataSheet, labelCell, label)
		f.SetCellValue(rawDataSheet, countCell, ds.Counts[i])
		f.SetCellStyle(rawDataSheet, labelCell, labelCell, styler.LabelStyle)
		f.SetCellStyle(rawDataSheet, countCell, countCell, styler.CountStyle)
	}

	f.SetColWidth(rawDataSheet, "A", "A", 40)
	f.SetColWidth(rawDataSheet, "B", "B", 12)

	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		f.DeleteSheet("Sheet1")
	}

	outPath := ArtifactPath(baseDir, pmrNumber, ds, "xlsx")
	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("failed to save raw data export: %w", err)
	}
	return nil
}
