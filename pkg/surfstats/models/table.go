package models

import "time"

// Identity column headers that lead every measurement table.
const (
	DateTimeColumn        = "Date_Time"
	MeasurementFileColumn = "Measurement File"
)

// Timestamp is the combined date and time of one measurement event.
type Timestamp struct {
	// Raw is the "<date> <time>" text as exported.
	Raw string `json:"raw"`
	// Time is the parsed value; zero if Raw matched no known layout.
	Time time.Time `json:"time"`
}

// MeasurementTable is one parsed instrument export. Rows are kept in
// recording order.
type MeasurementTable struct {
	// Path is the source file.
	Path string
	// Timestamps holds the Date_Time column.
	Timestamps []Timestamp
	// Sources holds the Measurement File column.
	Sources []string
	// Columns holds the parameter columns.
	Columns Columns
}

// Len returns the number of rows.
func (t *MeasurementTable) Len() int {
	return len(t.Sources)
}

// ColumnNames returns every header, identity columns first.
func (t *MeasurementTable) ColumnNames() []string {
	return append([]string{DateTimeColumn, MeasurementFileColumn}, t.Columns.Names()...)
}

// ProcessedFiles returns the provenance list: the Measurement File
// column in row order.
func (t *MeasurementTable) ProcessedFiles() []string {
	out := make([]string, len(t.Sources))
	copy(out, t.Sources)
	return out
}

// Clone returns a table sharing no backing storage with t.
func (t *MeasurementTable) Clone() *MeasurementTable {
	c := &MeasurementTable{
		Path:       t.Path,
		Timestamps: make([]Timestamp, len(t.Timestamps)),
		Sources:    make([]string, len(t.Sources)),
		Columns:    t.Columns.Clone(),
	}
	copy(c.Timestamps, t.Timestamps)
	copy(c.Sources, t.Sources)
	return c
}
