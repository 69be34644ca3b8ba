package report

import (
	"errors"
	"fmt"

	"rtvm-report/internal/model"
)

// Job generates a summary report on a background worker while the
// interactive surface stays responsive. Progress and Log are optional
// observers; the caller is responsible for keeping only one job in flight
// against a given target. A job runs to completion or failure, there is no
// cancellation.
type Job struct {
	PMRNumber int
	Groups    model.SWBSGroups

	// Progress receives (current, total) as cells are processed.
	Progress func(current, total int)
	// Log receives human-readable progress lines.
	Log func(format string, args ...interface{})
}

// Result carries the outcome of an asynchronous run.
type Result struct {
	Datasets []*model.ChartDataset
	Err      error
}

// Run parses the verification cells and builds the report datasets. Any
// panic inside the worker is caught at this boundary and surfaced as an
// error.
func (j *Job) Run(cells []string) (datasets []*model.ChartDataset, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("report job panicked: %v", r)
		}
	}()

	if j.PMRNumber <= 0 {
		return nil, fmt.Errorf("invalid PMR number: %d", j.PMRNumber)
	}
	if len(cells) == 0 {
		return nil, errors.New("no Assigned Verification Documents data found")
	}

	j.logf("Creating summary report for PMR %d...", j.PMRNumber)

	entries := ParseCells(cells, j.Progress)
	if len(entries) == 0 {
		return nil, errors.New("no Assigned Verification Documents data found")
	}

	datasets = BuildReport(entries, j.Groups)
	j.logf("Summary report created with %d charts", len(datasets))
	return datasets, nil
}

// Start launches Run on a new goroutine and delivers the outcome on the
// returned channel.
func (j *Job) Start(cells []string) <-chan Result {
	done := make(chan Result, 1)
	go func() {
		datasets, err := j.Run(cells)
		done <- Result{Datasets: datasets, Err: err}
	}()
	return done
}

func (j *Job) logf(format string, args ...interface{}) {
	if j.Log != nil {
		j.Log(format, args...)
	}
}
