package model

import "testing"

func TestLabelsSorted(t *testing.T) {
	g := SWBSGroups{
		"SWBS 300": {"300-001"},
		"SWBS 000": {"040-001"},
		"SWBS 100": {"100-001"},
	}

	labels := g.Labels()
	want := []string{"SWBS 000", "SWBS 100", "SWBS 300"}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("Labels() = %v, want %v", labels, want)
		}
	}
}

func TestGroupFor(t *testing.T) {
	g := SWBSGroups{
		"SWBS 100": {"100-001"},
		"SWBS 300": {"300-001"},
	}

	if label, ok := g.GroupFor("300-001"); !ok || label != "SWBS 300" {
		t.Errorf("GroupFor(300-001) = %q, %v", label, ok)
	}
	if _, ok := g.GroupFor("999-999"); ok {
		t.Error("GroupFor(999-999) should not match")
	}
}

func TestGroupForFirstSortedWins(t *testing.T) {
	// Shared membership resolves to the first group in sorted label order.
	g := SWBSGroups{
		"SWBS 300": {"100-001"},
		"SWBS 100": {"100-001"},
	}
	if label, _ := g.GroupFor("100-001"); label != "SWBS 100" {
		t.Errorf("GroupFor = %q, want SWBS 100", label)
	}
}
