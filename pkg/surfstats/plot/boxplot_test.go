package plot

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/surfstats-go/pkg/surfstats/models"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{5, 1, 4, 2, 3})
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 3.0, s.Median)
	assert.Equal(t, 5.0, s.Max)
	assert.Equal(t, 2.0, s.Q1)
	assert.Equal(t, 4.0, s.Q3)
}

func TestYRange(t *testing.T) {
	lo, hi := YRange(Summary{Min: 10, Max: 20})
	assert.InDelta(t, 9.0, lo, 1e-12)
	assert.InDelta(t, 21.0, hi, 1e-12)

	// flat data still gets a non-empty range
	lo, hi = YRange(Summary{Min: 0, Max: 0})
	assert.Less(t, lo, hi)
}

func TestBoxPlots(t *testing.T) {
	table := &models.MeasurementTable{
		Path:    "run.csv",
		Sources: []string{"a", "b", "c"},
		Columns: models.Columns{
			{Param: "Sa", Unit: "µm", Values: []float64{1, 2, 3}},
			{Param: "Sq", Unit: "µm", Values: []float64{math.NaN(), math.NaN(), math.NaN()}},
			{Param: "Sz", Unit: "µm", Values: []float64{math.NaN(), 4, math.NaN()}},
		},
	}

	fig, err := BoxPlots(table, 320, 240)
	require.NoError(t, err)
	require.Len(t, fig.Panels, 2)
	assert.Equal(t, "Sa, µm", fig.Panels[0].Column)
	assert.Equal(t, "Sz, µm", fig.Panels[1].Column)

	files, err := fig.SavePNG(t.TempDir(), "run")
	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestBoxPlotsInvalidSize(t *testing.T) {
	_, err := BoxPlots(&models.MeasurementTable{}, 0, 10)
	assert.Error(t, err)
}
