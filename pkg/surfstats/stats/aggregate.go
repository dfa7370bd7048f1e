// Package stats reduces measurement columns to rounded summary statistics.
package stats

import (
	"fmt"
	"math"
	"strconv"

	mstats "github.com/montanaflynn/stats"
	"github.com/ukaji3/surfstats-go/pkg/surfstats/models"
)

// DefaultSigFigs is the default number of significant figures.
const DefaultSigFigs = 3

// Aggregate computes the mean and sample standard deviation (N-1) of
// every parameter column of t, each rounded to sigFigs significant
// figures. Missing values are skipped. A column with a single value
// has a NaN standard deviation; an empty column has NaN for both.
func Aggregate(t *models.MeasurementTable, sigFigs int) (*models.StatsTable, error) {
	if sigFigs < 1 {
		return nil, fmt.Errorf("significant figures must be at least 1, got %d", sigFigs)
	}

	out := &models.StatsTable{Columns: make(models.Columns, len(t.Columns))}
	for i, c := range t.Columns {
		mean, std := summarize(present(c.Values))
		out.Columns[i] = models.Column{
			Param:  c.Param,
			Unit:   c.Unit,
			Tag:    c.Tag,
			Values: []float64{RoundSig(mean, sigFigs), RoundSig(std, sigFigs)},
		}
	}
	return out, nil
}

// summarize returns the mean and sample standard deviation of data.
func summarize(data []float64) (mean, std float64) {
	mean, std = math.NaN(), math.NaN()
	if len(data) == 0 {
		return
	}
	if m, err := mstats.Mean(data); err == nil {
		mean = m
	}
	if len(data) < 2 {
		return
	}
	if s, err := mstats.StandardDeviationSample(data); err == nil {
		std = s
	}
	return
}

// present drops NaN values.
func present(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// RoundSig formats v with sigFigs significant digits in general
// notation and parses the text back, so the result carries no more
// precision than was displayed.
func RoundSig(v float64, sigFigs int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', sigFigs, 64), 64)
	if err != nil {
		return v
	}
	return r
}
