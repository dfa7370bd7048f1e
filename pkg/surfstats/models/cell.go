package models

// CellRow is one non-empty row of a report read back from disk.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps the column letter to the cell value.
	C map[string]interface{} `json:"c"`
}
