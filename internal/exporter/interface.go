package exporter

import (
	"rtvm-report/internal/model"
)

// Exporter writes one artifact for a chart dataset into its group directory.
type Exporter interface {
	Export(ds *model.ChartDataset, pmrNumber int, baseDir string) error
}
