package model

import "sort"

// SWBSGroups maps a SWBS group label (e.g. "SWBS 100") to the set of
// DI numbers belonging to it. Read-only input to grouping; supplied by
// configuration.
type SWBSGroups map[string][]string

// Labels returns the group labels in ascending order. Go maps are unordered,
// so report sections always iterate in sorted label order.
func (g SWBSGroups) Labels() []string {
	labels := make([]string, 0, len(g))
	for label := range g {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Contains reports whether the DI number belongs to the named group.
func (g SWBSGroups) Contains(label, diNumber string) bool {
	for _, member := range g[label] {
		if member == diNumber {
			return true
		}
	}
	return false
}

// GroupFor returns the first group (in sorted label order) whose membership
// set contains the DI number.
func (g SWBSGroups) GroupFor(diNumber string) (string, bool) {
	for _, label := range g.Labels() {
		if g.Contains(label, diNumber) {
			return label, true
		}
	}
	return "", false
}
