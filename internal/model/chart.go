package model

// ChartKind identifies what a chart dataset counts.
type ChartKind string

const (
	ChartObjectStatus     ChartKind = "Object Status"
	ChartGovernmentStatus ChartKind = "Government Assessed Status"
	ChartContractorStatus ChartKind = "Contractor Assessed Status"
	ChartDINumber         ChartKind = "DI Number Distribution"
)

// ChartDataset is the data behind one rendered pie chart and its raw-data
// spreadsheet. Labels and Counts are parallel slices in first-seen order.
// Datasets are recomputed on every filter or report change, never mutated
// in place once handed to a renderer.
type ChartDataset struct {
	// Group is the report section this chart belongs to: the reserved
	// "Overall Status" label or a SWBS group number such as "100".
	Group string
	Kind  ChartKind

	Labels []string
	Counts []int

	// Colors maps a label to its display color (hex). Nil when the kind
	// carries no fixed palette (DI number distributions).
	Colors map[string]string
}

// NewChartDataset creates an empty dataset for the given group and kind.
func NewChartDataset(group string, kind ChartKind) *ChartDataset {
	return &ChartDataset{
		Group:  group,
		Kind:   kind,
		Labels: make([]string, 0),
		Counts: make([]int, 0),
	}
}

// Add appends a label/count pair, keeping Labels and Counts parallel.
func (d *ChartDataset) Add(label string, count int) {
	d.Labels = append(d.Labels, label)
	d.Counts = append(d.Counts, count)
}

// Total returns the sum of all counts.
func (d *ChartDataset) Total() int {
	total := 0
	for _, c := range d.Counts {
		total += c
	}
	return total
}

// LabelColumn returns the header for the label column in a raw-data export.
func (d *ChartDataset) LabelColumn() string {
	if d.Kind == ChartDINumber {
		return "DI Number"
	}
	return "Status"
}
