package status

import (
	"testing"

	"rtvm-report/internal/model"
)

func TestFilterRecords(t *testing.T) {
	records := []model.StatusRecord{
		{RowIndex: 0, ObjectStatus: "Accepted", ContractorStatus: "Sat", GovernmentStatus: "Agree"},
		{RowIndex: 1, ObjectStatus: "Accepted", ContractorStatus: "Unsat", GovernmentStatus: "Disagree"},
		{RowIndex: 2, ObjectStatus: "Proposed Add", ContractorStatus: "Sat", GovernmentStatus: "Agree"},
	}

	tests := []struct {
		name       string
		object     string
		contractor string
		government string
		want       int
	}{
		{"no filters", "", "", "", 3},
		{"object only", "Accepted", "", "", 2},
		{"all three", "Accepted", "Sat", "Agree", 1},
		{"no match", "Accepted", "Unsat", "Agree", 0},
		{"case sensitive", "accepted", "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterRecords(records, tt.object, tt.contractor, tt.government)
			if len(got) != tt.want {
				t.Errorf("FilterRecords(%q, %q, %q) = %d records, want %d",
					tt.object, tt.contractor, tt.government, len(got), tt.want)
			}
		})
	}
}

func TestCountByFieldEmptyInput(t *testing.T) {
	ds := CountByField(nil, model.FieldGovernmentStatus)
	if len(ds.Labels) != 1 || ds.Labels[0] != NoDataLabel {
		t.Fatalf("expected single %q label, got %v", NoDataLabel, ds.Labels)
	}
	if ds.Counts[0] != 1 {
		t.Errorf("expected count 1 for empty input, got %d", ds.Counts[0])
	}
}

func TestCountByField(t *testing.T) {
	records := []model.StatusRecord{
		{GovernmentStatus: "Agree"},
		{GovernmentStatus: "Disagree"},
		{GovernmentStatus: "Agree"},
		{GovernmentStatus: "Pending Review"},
	}

	ds := CountByField(records, model.FieldGovernmentStatus)

	// Labels keep first-seen order.
	wantLabels := []string{"Agree", "Disagree", "Pending Review"}
	if len(ds.Labels) != len(wantLabels) {
		t.Fatalf("got %d labels, want %d", len(ds.Labels), len(wantLabels))
	}
	for i, want := range wantLabels {
		if ds.Labels[i] != want {
			t.Errorf("label[%d] = %q, want %q", i, ds.Labels[i], want)
		}
	}

	// Counts sum to the number of records.
	sum := 0
	for _, c := range ds.Counts {
		sum += c
	}
	if sum != len(records) {
		t.Errorf("counts sum to %d, want %d", sum, len(records))
	}

	if ds.Colors["Agree"] != "#008000" {
		t.Errorf("Agree color = %q, want #008000", ds.Colors["Agree"])
	}
}

func TestOverallStatusPerRow(t *testing.T) {
	records := []model.StatusRecord{
		// Row 0: disagree outranks pending review.
		{RowIndex: 0, GovernmentStatus: "Pending Review"},
		{RowIndex: 0, GovernmentStatus: "Disagree"},
		// Row 1: agree beats everything.
		{RowIndex: 1, GovernmentStatus: "Awaiting Input"},
		{RowIndex: 1, GovernmentStatus: "agree"},
		// Row 2: unknown statuses rank last, first seen wins the tie.
		{RowIndex: 2, GovernmentStatus: "Widget"},
		{RowIndex: 2, GovernmentStatus: "Gadget"},
		// Row 3: empty statuses only, row dropped.
		{RowIndex: 3, GovernmentStatus: ""},
		{RowIndex: 3, GovernmentStatus: "   "},
	}

	got := OverallStatusPerRow(records)
	want := []string{"Disagree", "Agree", "Widget"}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d overall = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOverallStatusPerRowTrimsAndCapitalizes(t *testing.T) {
	records := []model.StatusRecord{
		{RowIndex: 5, GovernmentStatus: "  DISAGREE  "},
	}
	got := OverallStatusPerRow(records)
	if len(got) != 1 || got[0] != "Disagree" {
		t.Fatalf("expected [Disagree], got %v", got)
	}
}

func TestCountsTable(t *testing.T) {
	all := []model.StatusRecord{
		{GovernmentStatus: "Agree"},
		{GovernmentStatus: "Disagree"},
		{GovernmentStatus: "Agree"},
	}
	filtered := all[:1]

	rows := CountsTable(all, filtered, model.FieldGovernmentStatus)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Status != "Agree" || rows[0].Filtered != 1 || rows[0].Total != 2 {
		t.Errorf("Agree row = %+v, want {Agree 1 2}", rows[0])
	}
	if rows[1].Status != "Disagree" || rows[1].Filtered != 0 || rows[1].Total != 1 {
		t.Errorf("Disagree row = %+v, want {Disagree 0 1}", rows[1])
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"agree", "Agree"},
		{"pending review", "Pending review"},
		{"Agree", "Agree"},
	}
	for _, tt := range tests {
		if got := Capitalize(tt.in); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFindDisagreements(t *testing.T) {
	records := []model.StatusRecord{
		{RowIndex: 0, ObjectStatus: "Accepted", GovernmentStatus: "Disagree"},
		{RowIndex: 1, ObjectStatus: "Accepted", GovernmentStatus: "Agree"},
		{RowIndex: 2, ObjectStatus: "Proposed Add", GovernmentStatus: "Disagree"},
		{RowIndex: 3, ObjectStatus: " accepted ", GovernmentStatus: " DISAGREE "},
	}

	got := FindDisagreements(records)
	if len(got) != 2 {
		t.Fatalf("got %d disagreements, want 2", len(got))
	}
	if got[0].RowIndex != 0 || got[1].RowIndex != 3 {
		t.Errorf("unexpected rows: %+v", got)
	}
}
