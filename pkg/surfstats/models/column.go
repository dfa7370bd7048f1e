package models

// Column is one parameter column of a measurement or statistics table.
type Column struct {
	// Param is the parameter name from the preamble (e.g. "Sa").
	Param string
	// Unit is the unit text (e.g. "µm").
	Unit string
	// Tag is the unit classification assigned at load time.
	Tag UnitTag
	// Values holds one value per row.
	Values []float64
}

// Name returns the unit-qualified column header "<Param>, <Unit>".
func (c Column) Name() string {
	return c.Param + ", " + c.Unit
}

// Clone returns a copy of the column with its own value slice.
func (c Column) Clone() Column {
	values := make([]float64, len(c.Values))
	copy(values, c.Values)
	c.Values = values
	return c
}

// Columns is an ordered set of parameter columns.
type Columns []Column

// Clone deep-copies every column.
func (cs Columns) Clone() Columns {
	out := make(Columns, len(cs))
	for i, c := range cs {
		out[i] = c.Clone()
	}
	return out
}

// Names returns the unit-qualified header of every column in order.
func (cs Columns) Names() []string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name()
	}
	return names
}

// Index returns the position of the column with the given header, or -1.
func (cs Columns) Index(name string) int {
	for i, c := range cs {
		if c.Name() == name {
			return i
		}
	}
	return -1
}
