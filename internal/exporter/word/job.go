package word

import (
	"errors"
	"fmt"
	"strings"

	"rtvm-report/internal/dataset"
	"rtvm-report/internal/model"
	"rtvm-report/internal/report"
	"rtvm-report/internal/status"
)

// Job creates the batch of formal disagreement reports for a loaded RTVM
// table: one document per verification document whose rows the government
// assessed as Disagree while the object is Accepted. Runs on a background
// worker; same observer and single-flight rules as the chart export job.
type Job struct {
	Builder *Builder
	Groups  model.SWBSGroups
	OutDir  string

	Progress func(current, total int)
	Log      func(format string, args ...interface{})
}

// Run writes the reports and returns the written paths. A verification
// document is skipped when any of its rows carries an Agree assessment,
// since a partially agreed document is handled row by row instead.
func (j *Job) Run(t *dataset.Table) (written []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("disagreement job panicked: %v", r)
		}
	}()

	if j.OutDir == "" {
		return nil, errors.New("no disagreement reports folder selected")
	}

	records := t.StatusRecords()
	disagreements := status.FindDisagreements(records)
	if len(disagreements) == 0 {
		j.logf("No disagreements found.")
		return nil, nil
	}
	j.logf("Found %d rows with disagreements.", len(disagreements))

	// Group by verification document (case-insensitive); rows without one
	// are reported alone. display keeps the first-seen spelling.
	grouped := make(map[string][]int)
	display := make(map[string]string)
	var order []string
	for _, r := range disagreements {
		raw := strings.TrimSpace(t.Cell(r.RowIndex, dataset.ColVeriDocNumber))
		if raw == "" {
			raw = fmt.Sprintf("row %d", r.RowIndex)
		}
		veridoc := strings.ToLower(raw)
		if _, seen := grouped[veridoc]; !seen {
			order = append(order, veridoc)
			display[veridoc] = raw
		}
		grouped[veridoc] = append(grouped[veridoc], r.RowIndex)
	}

	agreed := veridocsWithAgreement(t, records)

	for i, veridoc := range order {
		if j.Progress != nil {
			j.Progress(i+1, len(order))
		}
		if agreed[veridoc] {
			j.logf("Skipping %s because some rows have an Agree status", veridoc)
			continue
		}

		row := grouped[veridoc][0]
		d := j.buildDisagreement(t, row, display[veridoc])

		path, expErr := j.Builder.Export(d, j.OutDir)
		if expErr != nil {
			j.logf("Failed to create report for %s: %v", veridoc, expErr)
			continue
		}
		written = append(written, path)
		j.logf("Created report for %s in %s", veridoc, d.SWBSGroup)
	}

	j.logf("Created %d disagreement reports", len(written))
	return written, nil
}

// buildDisagreement assembles the report data for one representative row.
func (j *Job) buildDisagreement(t *dataset.Table, row int, veridoc string) Disagreement {
	cellText := t.Cell(row, dataset.ColAssignedDocs)

	group := report.DefaultGroup
	if entries := report.ParseEntries(cellText); len(entries) > 0 && j.Groups != nil {
		if label, ok := j.Groups.GroupFor(entries[0].DINumber); ok {
			group = label
		}
	}
	if group == report.DefaultGroup {
		group = report.ClassifyByKeyword(cellText)
	}

	return Disagreement{
		SpecID:           t.Cell(row, dataset.ColSpecID),
		VeriDocNumber:    veridoc,
		SWBSGroup:        group,
		SpecText:         t.Cell(row, dataset.ColSpecText),
		ObjectStatus:     t.Cell(row, dataset.ColObjectStatus),
		GovernmentStatus: t.Cell(row, dataset.ColGovernmentStatus),
		ContractorStatus: t.Cell(row, dataset.ColContractorStatus),
	}
}

// veridocsWithAgreement flags the verification documents that have at least
// one Agree assessment among all their status mentions.
func veridocsWithAgreement(t *dataset.Table, records []model.StatusRecord) map[string]bool {
	agreed := make(map[string]bool)
	for _, r := range records {
		if strings.ToLower(strings.TrimSpace(r.GovernmentStatus)) != "agree" {
			continue
		}
		veridoc := strings.ToLower(strings.TrimSpace(t.Cell(r.RowIndex, dataset.ColVeriDocNumber)))
		if veridoc != "" {
			agreed[veridoc] = true
		}
	}
	return agreed
}

func (j *Job) logf(format string, args ...interface{}) {
	if j.Log != nil {
		j.Log(format, args...)
	}
}
