package dataset

import (
	"errors"
	"strings"

	"rtvm-report/internal/logger"
	"rtvm-report/internal/model"
	"rtvm-report/internal/report"
)

// errNoEntryFields marks a verification entry whose block carried none of
// the recognized "Key: Value" lines.
var errNoEntryFields = errors.New("verification entry has no recognized fields")

// RTVM column names the loader recognizes.
const (
	ColSpecID           = "DOORS SPEC ID"
	ColSpecText         = "Specification Text"
	ColObjectStatus     = "Object Status"
	ColContractorStatus = "Contractor Assessed Status"
	ColGovernmentStatus = "Government Assessed Status"
	ColVeriDocNumber    = "VeriDoc Number"
	ColAssignedDocs     = "Assigned Verification Documents"
)

// Table is the in-memory RTVM dataset: one header row plus data rows of
// strings. Rows keep their source order; RowIndex values refer to positions
// in Rows.
type Table struct {
	Path    string
	Headers []string
	Rows    [][]string

	columns map[string]int
}

// NewTable builds a table from headers and rows.
func NewTable(headers []string, rows [][]string) *Table {
	t := &Table{Headers: headers, Rows: rows}
	t.columns = make(map[string]int, len(headers))
	for i, h := range headers {
		t.columns[normalizeHeader(h)] = i
	}
	return t
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// ColumnIndex returns the index of a named column, or -1 when absent.
// Matching is case-insensitive and ignores surrounding whitespace.
func (t *Table) ColumnIndex(name string) int {
	if idx, ok := t.columns[normalizeHeader(name)]; ok {
		return idx
	}
	return -1
}

// Cell returns the named column's value for a row, or "" when the row is
// short or the column absent.
func (t *Table) Cell(row int, name string) string {
	idx := t.ColumnIndex(name)
	if idx < 0 || row < 0 || row >= len(t.Rows) {
		return ""
	}
	cells := t.Rows[row]
	if idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

// Column returns every value of a named column, one per row. A missing
// column degrades to an empty result with a log line rather than failing.
func (t *Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		logger.Warn("Column %q not found in the loaded table", name)
		return nil
	}
	values := make([]string, len(t.Rows))
	for i, cells := range t.Rows {
		if idx < len(cells) {
			values[i] = cells[idx]
		}
	}
	return values
}

// VerificationCells returns the Assigned Verification Documents column.
func (t *Table) VerificationCells() []string {
	return t.Column(ColAssignedDocs)
}

// StatusRecords extracts the status-mentions view: one record per
// verification entry found in a row's cell, carrying the row-level object
// status alongside the entry's government and contractor assessments. A row
// without parseable entries still yields one record from its own status
// columns, so every row stays visible to the aggregator.
func (t *Table) StatusRecords() []model.StatusRecord {
	records := make([]model.StatusRecord, 0, len(t.Rows))
	for i := range t.Rows {
		object := t.Cell(i, ColObjectStatus)

		entries := report.ParseEntries(t.Cell(i, ColAssignedDocs))
		if len(entries) == 0 {
			records = append(records, model.StatusRecord{
				RowIndex:         i,
				ObjectStatus:     object,
				ContractorStatus: t.Cell(i, ColContractorStatus),
				GovernmentStatus: t.Cell(i, ColGovernmentStatus),
			})
			continue
		}

		for _, e := range entries {
			if e.ObjectIdentifier == "" && e.DINumber == "" && e.GovernmentStatus == "" && e.ContractorStatus == "" {
				// The row still counts under the empty label; the detail
				// stays in the log file for later review.
				logger.LogCellError(i, errNoEntryFields, ColAssignedDocs)
			}
			records = append(records, model.StatusRecord{
				RowIndex:         i,
				ObjectStatus:     object,
				ContractorStatus: e.ContractorStatus,
				GovernmentStatus: e.GovernmentStatus,
			})
		}
	}
	return records
}
