package exporter

import (
	"fmt"
	"os"
	"strings"

	"rtvm-report/internal/model"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// PieExporter renders a dataset as a pie-chart PNG.
type PieExporter struct {
	Width  int
	Height int
}

// NewPieExporter creates a PieExporter with the standard report size.
func NewPieExporter() *PieExporter {
	return &PieExporter{Width: 600, Height: 600}
}

// Export renders the pie chart into the dataset's group directory,
// overwriting any previous export.
func (e *PieExporter) Export(ds *model.ChartDataset, pmrNumber int, baseDir string) error {
	dir := GroupDir(baseDir, pmrNumber, ds.Group)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create group directory: %w", err)
	}

	values := make([]chart.Value, 0, len(ds.Labels))
	for i, label := range ds.Labels {
		v := chart.Value{
			Label: fmt.Sprintf("%s (%d)", label, ds.Counts[i]),
			Value: float64(ds.Counts[i]),
		}
		if hex, ok := ds.Colors[label]; ok {
			v.Style = chart.Style{FillColor: drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))}
		}
		values = append(values, v)
	}

	pie := chart.PieChart{
		Title:  fmt.Sprintf("%s - %s", ds.Group, ds.Kind),
		Width:  e.Width,
		Height: e.Height,
		Values: values,
	}

	outPath := ArtifactPath(baseDir, pmrNumber, ds, "png")
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := pie.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render pie chart %q: %w", outPath, err)
	}
	return nil
}
