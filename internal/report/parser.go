package report

import (
	"strings"

	"rtvm-report/internal/model"
)

// entryDelimiter separates verification entries inside one cell. The RTVM
// authoring convention is a line of underscores between documents.
const entryDelimiter = "______________________"

// Known "Key: Value" field names inside a verification entry.
const (
	keyObjectIdentifier = "Object Identifier"
	keyDINumber         = "DI Number"
	keyGovernmentStatus = "Government Assessed Status"
	keyContractorStatus = "Contractor Assessed Status"
)

// ParseEntries parses one "Assigned Verification Documents" cell into its
// verification entries. Blank cells and spreadsheet NaN artifacts produce no
// entries. Each delimited block becomes one entry; lines are split on the
// first colon and trimmed, and a repeated key keeps its last value. Fields
// without a matching line stay empty, and such entries are still returned so
// they count under the empty label downstream.
func ParseEntries(cellText string) []model.VerificationEntry {
	trimmed := strings.TrimSpace(cellText)
	if trimmed == "" || strings.EqualFold(trimmed, "nan") {
		return nil
	}

	var entries []model.VerificationEntry
	for _, block := range strings.Split(cellText, entryDelimiter) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		var entry model.VerificationEntry
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			idx := strings.Index(line, ":")
			if idx < 0 {
				continue
			}
			key := strings.TrimSpace(line[:idx])
			value := strings.TrimSpace(line[idx+1:])
			switch key {
			case keyObjectIdentifier:
				entry.ObjectIdentifier = value
			case keyDINumber:
				entry.DINumber = value
			case keyGovernmentStatus:
				entry.GovernmentStatus = value
			case keyContractorStatus:
				entry.ContractorStatus = value
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// ParseCells parses every cell of the Assigned Verification Documents
// column, reporting per-cell progress when a callback is supplied.
func ParseCells(cells []string, progress func(current, total int)) []model.VerificationEntry {
	var entries []model.VerificationEntry
	for i, cell := range cells {
		entries = append(entries, ParseEntries(cell)...)
		if progress != nil {
			progress(i+1, len(cells))
		}
	}
	return entries
}
