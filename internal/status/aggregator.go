package status

import (
	"strings"

	"rtvm-report/internal/model"
)

// NoDataLabel is the synthetic label emitted when a count has no input, so
// downstream chart rendering never receives an empty dataset.
const NoDataLabel = "No Data"

// Rank table for deriving one overall status per logical row. Lower rank
// wins; statuses outside the table rank last.
var statusRank = map[string]int{
	"agree":          1,
	"disagree":       2,
	"pending review": 3,
	"awaiting input": 4,
}

const unrankedStatus = 100

// FilterRecords returns the records whose fields exactly match every
// non-empty filter value. An empty filter matches everything.
func FilterRecords(records []model.StatusRecord, objectFilter, contractorFilter, governmentFilter string) []model.StatusRecord {
	filtered := make([]model.StatusRecord, 0, len(records))
	for _, r := range records {
		if objectFilter != "" && r.ObjectStatus != objectFilter {
			continue
		}
		if contractorFilter != "" && r.ContractorStatus != contractorFilter {
			continue
		}
		if governmentFilter != "" && r.GovernmentStatus != governmentFilter {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// CountByField counts occurrences of each distinct value of the given status
// dimension. Labels keep first-seen order. An empty record set yields the
// single NoDataLabel entry with count 1.
func CountByField(records []model.StatusRecord, field model.StatusField) *model.ChartDataset {
	ds := model.NewChartDataset("", model.ChartKind(field))

	if len(records) == 0 {
		ds.Add(NoDataLabel, 1)
		return ds
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, r := range records {
		value := r.Field(field)
		if _, seen := counts[value]; !seen {
			order = append(order, value)
		}
		counts[value]++
	}

	ds.Colors = make(map[string]string, len(order))
	for _, label := range order {
		ds.Add(label, counts[label])
		ds.Colors[label] = ColorFor(label)
	}
	return ds
}

// OverallStatusPerRow reduces multiple status mentions per logical row to a
// single government status per row. Statuses are trimmed and lower-cased,
// then the lowest rank wins; the strict less-than scan means the first-seen
// status wins ties. Rows with no usable status are skipped. Output statuses
// are capitalized to match the display vocabulary.
func OverallStatusPerRow(records []model.StatusRecord) []string {
	grouped := make(map[int][]string)
	rowOrder := make([]int, 0)
	for _, r := range records {
		if _, seen := grouped[r.RowIndex]; !seen {
			rowOrder = append(rowOrder, r.RowIndex)
		}
		grouped[r.RowIndex] = append(grouped[r.RowIndex], r.GovernmentStatus)
	}

	overall := make([]string, 0, len(rowOrder))
	for _, row := range rowOrder {
		best := ""
		bestRank := 0
		for _, raw := range grouped[row] {
			s := strings.ToLower(strings.TrimSpace(raw))
			if s == "" {
				continue
			}
			rank, ok := statusRank[s]
			if !ok {
				rank = unrankedStatus
			}
			if best == "" || rank < bestRank {
				best = s
				bestRank = rank
			}
		}
		if best == "" {
			continue
		}
		overall = append(overall, Capitalize(best))
	}
	return overall
}

// CountsTable builds the (status, filtered-count, total-count) rows feeding
// the tabular counts view. Statuses come from the full record set in
// first-seen order so the view stays stable while filters change.
func CountsTable(all, filtered []model.StatusRecord, field model.StatusField) []model.StatusCount {
	totals := make(map[string]int)
	order := make([]string, 0)
	for _, r := range all {
		value := r.Field(field)
		if _, seen := totals[value]; !seen {
			order = append(order, value)
		}
		totals[value]++
	}

	filteredCounts := make(map[string]int)
	for _, r := range filtered {
		filteredCounts[r.Field(field)]++
	}

	rows := make([]model.StatusCount, 0, len(order))
	for _, value := range order {
		rows = append(rows, model.StatusCount{
			Status:   value,
			Filtered: filteredCounts[value],
			Total:    totals[value],
		})
	}
	return rows
}

// Capitalize upper-cases the first letter of a status for display.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
