package models

// Row labels of a statistics table.
const (
	MeanLabel = "mean"
	StdLabel  = "std"
)

// StatsTable holds the mean and standard deviation of each parameter
// column. Every column carries exactly two values: mean then std.
type StatsTable struct {
	Columns Columns
}

// Labels returns the row labels in order.
func (s *StatsTable) Labels() []string {
	return []string{MeanLabel, StdLabel}
}

// Mean returns the mean row.
func (s *StatsTable) Mean() []float64 {
	return s.row(0)
}

// Std returns the standard deviation row.
func (s *StatsTable) Std() []float64 {
	return s.row(1)
}

func (s *StatsTable) row(i int) []float64 {
	out := make([]float64, len(s.Columns))
	for j, c := range s.Columns {
		out[j] = c.Values[i]
	}
	return out
}
