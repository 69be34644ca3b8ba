package status

import (
	"strings"

	"rtvm-report/internal/model"
)

// FindDisagreements returns the records where the government assessed the
// row as a disagreement while the object itself is accepted. These rows feed
// the formal disagreement reports.
func FindDisagreements(records []model.StatusRecord) []model.StatusRecord {
	found := make([]model.StatusRecord, 0)
	for _, r := range records {
		gov := strings.ToLower(strings.TrimSpace(r.GovernmentStatus))
		obj := strings.ToLower(strings.TrimSpace(r.ObjectStatus))
		if gov == "disagree" && obj == "accepted" {
			found = append(found, r)
		}
	}
	return found
}
