// Package report writes the two-unit-system statistics workbook.
package report

import "time"

// SheetName is the only sheet of a report.
const SheetName = "Sheet1"

// Fixed labels written into the report.
const (
	AvgLabel         = "AVG"
	StdevLabel       = "STDEV"
	ImperialMarker   = "FREEDOM UNITS!"
	ProvenanceMarker = "Processed Files:"
)

// DecimalFormat is the number format of every statistics value cell.
const DecimalFormat = "0.000"

// Region is a named block of the sheet anchored at a 1-based cell.
type Region struct {
	Row  int
	Col  int
	Rows int // extent in rows; 0 means open-ended
}

// Layout is the sheet geometry. The metric table sits at the top, the
// imperial table follows a gap of blank rows, and the provenance list
// follows another gap. The imperial marker shares row 6 with the
// imperial header: it sits in column A, left of the first header cell.
var Layout = struct {
	MetricHeader     Region
	MetricLabels     Region
	MetricValues     Region
	ImperialMarker   Region
	ImperialHeader   Region
	ImperialLabels   Region
	ImperialValues   Region
	ProvenanceMarker Region
	ProvenanceList   Region
}{
	MetricHeader:     Region{Row: 1, Col: 2, Rows: 1},
	MetricLabels:     Region{Row: 2, Col: 1, Rows: 2},
	MetricValues:     Region{Row: 2, Col: 2, Rows: 2},
	ImperialMarker:   Region{Row: 6, Col: 1, Rows: 1},
	ImperialHeader:   Region{Row: 6, Col: 2, Rows: 1},
	ImperialLabels:   Region{Row: 7, Col: 1, Rows: 2},
	ImperialValues:   Region{Row: 7, Col: 2, Rows: 2},
	ProvenanceMarker: Region{Row: 12, Col: 2, Rows: 1},
	ProvenanceList:   Region{Row: 13, Col: 1},
}

// DefaultColumnWidth is the width applied to every used column.
const DefaultColumnWidth = 20.0

// FilePrefix starts every report file name.
const FilePrefix = "surf_stats_data_"

// FileName returns the report file name for a save at now.
func FileName(now time.Time) string {
	return FilePrefix + now.Format("20060102_150405") + ".xlsx"
}
