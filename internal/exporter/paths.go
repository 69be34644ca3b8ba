package exporter

import (
	"fmt"
	"path/filepath"

	"rtvm-report/internal/model"
	"rtvm-report/internal/report"
)

// PMRDir returns the per-report directory under the base output location.
func PMRDir(baseDir string, pmrNumber int) string {
	return filepath.Join(baseDir, fmt.Sprintf("PMR %d", pmrNumber))
}

// GroupDir returns the directory a group's artifacts go into. The reserved
// "Overall Status" label maps to a top-level folder; every SWBS group gets a
// "<group> SWBS/Status Photos" subtree.
func GroupDir(baseDir string, pmrNumber int, group string) string {
	pmrDir := PMRDir(baseDir, pmrNumber)
	if group == report.OverallGroup {
		return filepath.Join(pmrDir, report.OverallGroup)
	}
	return filepath.Join(pmrDir, group+" SWBS", "Status Photos")
}

// FileName builds the deterministic artifact name for a dataset. Repeated
// exports with the same inputs produce the same name and overwrite.
func FileName(pmrNumber int, ds *model.ChartDataset, ext string) string {
	return fmt.Sprintf("PMR %d - SWBS %s - %s.%s", pmrNumber, ds.Group, ds.Kind, ext)
}

// ArtifactPath is the full path for one dataset artifact.
func ArtifactPath(baseDir string, pmrNumber int, ds *model.ChartDataset, ext string) string {
	return filepath.Join(GroupDir(baseDir, pmrNumber, ds.Group), FileName(pmrNumber, ds, ext))
}
