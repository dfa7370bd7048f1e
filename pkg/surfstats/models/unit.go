package models

import "strings"

// Unit strings as they appear in the instrument's unit row.
const (
	UnitMicrometer = "µm"
	UnitMicroinch  = "µin"
	UnitPercent    = "%"
)

// RatioMarker identifies the relative material ratio parameter family.
const RatioMarker = "Rmr"

// UnitTag classifies a parameter column by the unit system of its values.
type UnitTag int

const (
	// UnitOther is a column with no convertible length unit.
	UnitOther UnitTag = iota
	// UnitMetric is a length column in micrometers.
	UnitMetric
	// UnitImperial is a length column in micro-inches.
	UnitImperial
	// UnitRatio is a percentage column (Rmr family). Never converted.
	UnitRatio
)

// String returns the tag name.
func (t UnitTag) String() string {
	switch t {
	case UnitMetric:
		return "metric"
	case UnitImperial:
		return "imperial"
	case UnitRatio:
		return "ratio"
	default:
		return "other"
	}
}

// ClassifyUnit tags a parameter from its name and the unit text in the
// unit row. Rmr parameters are ratios whatever their unit says.
func ClassifyUnit(param, unit string) UnitTag {
	switch {
	case strings.Contains(param, RatioMarker):
		return UnitRatio
	case strings.Contains(unit, UnitMicroinch):
		return UnitImperial
	case strings.Contains(unit, UnitMicrometer):
		return UnitMetric
	case strings.TrimSpace(unit) == UnitPercent:
		return UnitRatio
	default:
		return UnitOther
	}
}
