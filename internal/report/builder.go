package report

import (
	"strings"

	"rtvm-report/internal/model"
	"rtvm-report/internal/status"
)

// OverallGroup is the reserved group label for the full-dataset section.
const OverallGroup = "Overall Status"

// BuildReport produces the chart datasets for a summary report: three charts
// over the full entry set under the reserved OverallGroup label, then the
// same three charts for every configured SWBS group with at least one
// matching entry. Groups with zero matching entries produce no section.
func BuildReport(entries []model.VerificationEntry, groups model.SWBSGroups) []*model.ChartDataset {
	datasets := groupCharts(OverallGroup, entries)

	for _, label := range groups.Labels() {
		var subset []model.VerificationEntry
		for _, e := range entries {
			if groups.Contains(label, e.DINumber) {
				subset = append(subset, e)
			}
		}
		if len(subset) == 0 {
			continue
		}
		// Folder and file names carry only the group number.
		short := strings.TrimSpace(strings.TrimPrefix(label, "SWBS "))
		datasets = append(datasets, groupCharts(short, subset)...)
	}
	return datasets
}

// groupCharts builds the three per-section charts over one entry subset.
func groupCharts(group string, entries []model.VerificationEntry) []*model.ChartDataset {
	return []*model.ChartDataset{
		countEntries(group, model.ChartGovernmentStatus, entries, func(e model.VerificationEntry) string { return e.GovernmentStatus }, true),
		countEntries(group, model.ChartContractorStatus, entries, func(e model.VerificationEntry) string { return e.ContractorStatus }, true),
		countEntries(group, model.ChartDINumber, entries, func(e model.VerificationEntry) string { return e.DINumber }, false),
	}
}

// countEntries counts distinct values in first-seen order. An empty subset
// yields the synthetic "No Data" entry so the pie renderer always has a
// non-zero total.
func countEntries(group string, kind model.ChartKind, entries []model.VerificationEntry, value func(model.VerificationEntry) string, colored bool) *model.ChartDataset {
	ds := model.NewChartDataset(group, kind)

	if len(entries) == 0 {
		ds.Add(status.NoDataLabel, 1)
		return ds
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, e := range entries {
		v := value(e)
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	if colored {
		ds.Colors = make(map[string]string, len(order))
	}
	for _, label := range order {
		ds.Add(label, counts[label])
		if colored {
			ds.Colors[label] = status.ColorFor(label)
		}
	}
	return ds
}
