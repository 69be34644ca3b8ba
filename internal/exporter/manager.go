package exporter

import (
	"strings"
)

// GetExporters returns the exporters for the requested artifact formats.
func GetExporters(formats []string) []Exporter {
	exporters := []Exporter{}
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		fmtStr = strings.ToLower(strings.TrimSpace(fmtStr))
		if seen[fmtStr] {
			continue
		}
		seen[fmtStr] = true

		switch fmtStr {
		case "png", "image", "chart":
			exporters = append(exporters, NewPieExporter())
		case "excel", "xlsx":
			exporters = append(exporters, NewRawDataExporter())
		}
	}

	return exporters
}
