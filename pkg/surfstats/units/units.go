// Package units converts length-valued parameter columns between the
// metric (µm) and imperial (µin) unit systems.
package units

import (
	"strings"

	"github.com/ukaji3/surfstats-go/pkg/surfstats/models"
)

// MicronsPerMicroinch is the number of micrometers in one micro-inch.
const MicronsPerMicroinch = 0.0254

// ToMetric returns a copy of cols in which every imperial column is
// scaled to micrometers and its unit renamed µin -> µm. Ratio and
// other columns are copied untouched.
func ToMetric(cols models.Columns) models.Columns {
	return convert(cols, models.UnitImperial, models.UnitMetric, models.UnitMicroinch, models.UnitMicrometer,
		func(v float64) float64 { return v * MicronsPerMicroinch })
}

// ToStandard returns a copy of cols in which every metric column is
// scaled to micro-inches and its unit renamed µm -> µin.
func ToStandard(cols models.Columns) models.Columns {
	return convert(cols, models.UnitMetric, models.UnitImperial, models.UnitMicrometer, models.UnitMicroinch,
		func(v float64) float64 { return v / MicronsPerMicroinch })
}

func convert(cols models.Columns, from, to models.UnitTag, oldUnit, newUnit string, scale func(float64) float64) models.Columns {
	out := cols.Clone()
	for i := range out {
		c := &out[i]
		if c.Tag != from {
			continue
		}
		for j, v := range c.Values {
			c.Values[j] = scale(v)
		}
		c.Unit = strings.ReplaceAll(c.Unit, oldUnit, newUnit)
		c.Tag = to
	}
	return out
}

// TableToMetric returns a metric copy of t. t is not modified.
func TableToMetric(t *models.MeasurementTable) *models.MeasurementTable {
	out := t.Clone()
	out.Columns = ToMetric(t.Columns)
	return out
}

// StatsToStandard returns the imperial mirror of a metric statistics table.
func StatsToStandard(s *models.StatsTable) *models.StatsTable {
	return &models.StatsTable{Columns: ToStandard(s.Columns)}
}
