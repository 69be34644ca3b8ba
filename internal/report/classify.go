package report

import (
	"regexp"

	"rtvm-report/internal/model"
)

// DefaultGroup is the classification when no group can be determined.
const DefaultGroup = "Default SWBS"

var swbsPattern = regexp.MustCompile(`SWBS\s+\d+`)

// ClassifyGroup resolves the SWBS group for a DI number. With a membership
// table present the first group (in sorted label order) containing the
// identifier wins. Without one there is nothing to match against and the
// default label is returned; callers falling back to free text should use
// ClassifyByKeyword instead.
func ClassifyGroup(diNumber string, groups model.SWBSGroups) string {
	if len(groups) > 0 {
		if label, ok := groups.GroupFor(diNumber); ok {
			return label
		}
	}
	return DefaultGroup
}

// ClassifyByKeyword is the secondary classification mode for when no
// membership table is configured: scan free text for a "SWBS <number>"
// marker and use it as the group label.
func ClassifyByKeyword(text string) string {
	if match := swbsPattern.FindString(text); match != "" {
		return match
	}
	return DefaultGroup
}
