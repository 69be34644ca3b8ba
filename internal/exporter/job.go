package exporter

import (
	"errors"
	"fmt"

	"rtvm-report/internal/model"
)

// Job exports report artifacts on a background worker. Exports are not
// transactional: a failure partway through leaves already written files in
// place, and the job keeps going so one bad dataset does not lose the rest.
// The caller keeps only one export job in flight per target directory.
type Job struct {
	PMRNumber int
	BaseDir   string
	Formats   []string

	// Progress receives (current, total) as datasets are exported.
	Progress func(current, total int)
	// Log receives human-readable progress lines.
	Log func(format string, args ...interface{})
}

// Run exports every dataset in every requested format. Validation failures
// abort before anything is written; per-dataset failures are logged and
// collected.
func (j *Job) Run(datasets []*model.ChartDataset) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("export job panicked: %v", r)
		}
	}()

	if j.PMRNumber <= 0 {
		return fmt.Errorf("invalid PMR number: %d", j.PMRNumber)
	}
	if j.BaseDir == "" {
		return errors.New("no base output directory selected")
	}
	if len(datasets) == 0 {
		return errors.New("no report generated; create the summary report first")
	}

	exporters := GetExporters(j.Formats)
	if len(exporters) == 0 {
		return fmt.Errorf("no valid export formats in %v", j.Formats)
	}

	j.logf("Exporting %d charts to %s...", len(datasets), PMRDir(j.BaseDir, j.PMRNumber))

	var failures []error
	for i, ds := range datasets {
		for _, exp := range exporters {
			if expErr := exp.Export(ds, j.PMRNumber, j.BaseDir); expErr != nil {
				j.logf("Export failed for %s - %s: %v", ds.Group, ds.Kind, expErr)
				failures = append(failures, expErr)
			}
		}
		if j.Progress != nil {
			j.Progress(i+1, len(datasets))
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("one or more exports failed: %d errors", len(failures))
	}
	j.logf("Exported %d charts", len(datasets))
	return nil
}

// Start launches Run on a new goroutine and delivers the outcome on the
// returned channel.
func (j *Job) Start(datasets []*model.ChartDataset) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- j.Run(datasets)
	}()
	return done
}

func (j *Job) logf(format string, args ...interface{}) {
	if j.Log != nil {
		j.Log(format, args...)
	}
}
