// Package plot renders per-parameter inspection plots of a measurement
// table. Plots are a visual aid only and never feed the report.
package plot

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/stat"

	"github.com/ukaji3/surfstats-go/pkg/surfstats/models"
)

// rangePadding is the share of the data range added above and below.
const rangePadding = 0.1

// Summary is the five-number summary of one column.
type Summary struct {
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Panel is the plot of one parameter column.
type Panel struct {
	Column  string
	Summary Summary
	Chart   chart.Chart
}

// Figure holds one panel per plotted column.
type Figure struct {
	Panels []Panel
}

// BoxPlots builds a box-style panel for every parameter column with at
// least one value: the samples in recording order, quartile lines and
// min/max whiskers.
func BoxPlots(t *models.MeasurementTable, width, height int) (*Figure, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid plot size %dx%d", width, height)
	}

	fig := &Figure{}
	for _, c := range t.Columns {
		values := present(c.Values)
		if len(values) == 0 {
			continue
		}
		s := Summarize(values)
		fig.Panels = append(fig.Panels, Panel{
			Column:  c.Name(),
			Summary: s,
			Chart:   panelChart(c.Name(), values, s, width, height),
		})
	}
	return fig, nil
}

// Summarize computes the five-number summary of values (no NaNs).
func Summarize(values []float64) Summary {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return Summary{
		Min:    sorted[0],
		Q1:     stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}
}

// YRange returns the padded axis bounds for s.
func YRange(s Summary) (float64, float64) {
	buffer := rangePadding * (s.Max - s.Min)
	if buffer == 0 {
		buffer = math.Max(math.Abs(s.Max)*rangePadding, 1)
	}
	return s.Min - buffer, s.Max + buffer
}

func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    col,
	}
}

func lineStyle(col drawing.Color, width float64) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: width,
	}
}

func panelChart(name string, values []float64, s Summary, width, height int) chart.Chart {
	xs := make([]float64, len(values))
	for i := range values {
		xs[i] = float64(i + 1)
	}
	ys := values
	// go-chart needs two points per series
	if len(values) == 1 {
		xs = []float64{1, 2}
		ys = []float64{values[0], values[0]}
	}
	left, right := 0.5, float64(len(xs))+0.5

	level := func(label string, y float64, st chart.Style) chart.Series {
		return chart.ContinuousSeries{
			Name:    label,
			XValues: []float64{left, right},
			YValues: []float64{y, y},
			Style:   st,
		}
	}

	lo, hi := YRange(s)
	return chart.Chart{
		Title:  name,
		Width:  width,
		Height: height,
		XAxis:  chart.XAxis{Name: "sample"},
		YAxis:  chart.YAxis{Name: name, Range: &chart.ContinuousRange{Min: lo, Max: hi}},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "samples", XValues: xs, YValues: ys, Style: pointStyle(chart.ColorBlue)},
			level("min", s.Min, lineStyle(chart.ColorAlternateGray, 1)),
			level("Q1", s.Q1, lineStyle(chart.ColorBlack, 2)),
			level("median", s.Median, lineStyle(chart.ColorRed, 2)),
			level("Q3", s.Q3, lineStyle(chart.ColorBlack, 2)),
			level("max", s.Max, lineStyle(chart.ColorAlternateGray, 1)),
		},
	}
}

// SavePNG renders every panel to dir as <base>_<n>.png and returns the
// written paths.
func (f *Figure) SavePNG(dir, base string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	var files []string
	for i, p := range f.Panels {
		var buf bytes.Buffer
		if err := p.Chart.Render(chart.PNG, &buf); err != nil {
			return files, fmt.Errorf("render %q: %w", p.Column, err)
		}
		name := filepath.Join(dir, fmt.Sprintf("%s_%d.png", base, i+1))
		if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
			return files, err
		}
		files = append(files, name)
	}
	return files, nil
}

func present(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
