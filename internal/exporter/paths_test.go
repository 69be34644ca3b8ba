package exporter

import (
	"path/filepath"
	"testing"

	"rtvm-report/internal/model"
	"rtvm-report/internal/report"
)

func TestGroupDir(t *testing.T) {
	tests := []struct {
		group string
		want  string
	}{
		{report.OverallGroup, filepath.Join("out", "PMR 3", "Overall Status")},
		{"100", filepath.Join("out", "PMR 3", "100 SWBS", "Status Photos")},
		{"560", filepath.Join("out", "PMR 3", "560 SWBS", "Status Photos")},
	}
	for _, tt := range tests {
		if got := GroupDir("out", 3, tt.group); got != tt.want {
			t.Errorf("GroupDir(out, 3, %q) = %q, want %q", tt.group, got, tt.want)
		}
	}
}

func TestArtifactPathDeterministic(t *testing.T) {
	ds := model.NewChartDataset("100", model.ChartGovernmentStatus)

	first := ArtifactPath("out", 12, ds, "png")
	second := ArtifactPath("out", 12, ds, "png")
	if first != second {
		t.Errorf("repeated exports must target the same path: %q vs %q", first, second)
	}

	wantName := "PMR 12 - SWBS 100 - Government Assessed Status.png"
	if filepath.Base(first) != wantName {
		t.Errorf("artifact name = %q, want %q", filepath.Base(first), wantName)
	}
}
