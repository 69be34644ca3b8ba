package status

import "strings"

// NeutralColor is the fallback for labels outside the known vocabulary.
const NeutralColor = "#808080"

// statusColors is the fixed display palette, keyed by lower-cased label.
// Covers both government statuses and object/contractor vocabulary.
var statusColors = map[string]string{
	"agree":           "#008000", // green
	"disagree":        "#FF0000", // red
	"awaiting input":  "#FFFF00", // yellow
	"pending review":  "#0000FF", // blue
	"sat":             "#008000",
	"unsat":           "#FF0000",
	"tbd":             "#808080",
	"accepted":        "#ADD8E6", // light blue
	"depreciated":     "#A9A9A9", // dark gray
	"proposed add":    "#FFA500", // orange
	"proposed delete": "#800080", // purple
}

// ColorFor resolves the display color for a status label. Lookup is
// case-insensitive so "disagree" and "Disagree" render identically.
func ColorFor(label string) string {
	if color, ok := statusColors[strings.ToLower(strings.TrimSpace(label))]; ok {
		return color
	}
	return NeutralColor
}
