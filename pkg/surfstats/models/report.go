package models

// ReportData is the content of a produced report as read back by
// `surfstats inspect`.
type ReportData struct {
	// BookName is the report file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet holding the report.
	SheetName string `json:"sheet_name"`
	// UsedRange is the bounding range of the non-empty cells.
	UsedRange string `json:"used_range,omitempty"`
	// Rows contains the non-empty rows.
	Rows []CellRow `json:"rows,omitempty"`
	// PrintAreas contains the print areas defined for the sheet.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
}
