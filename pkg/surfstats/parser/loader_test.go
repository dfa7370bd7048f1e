package parser

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/surfstats-go/pkg/surfstats/models"
	"golang.org/x/text/encoding/charmap"
)

const sampleExport = `Template export,,,,,,
Date,Time,File,Sa,Sq,Rmr(1 µm),
,,,µin,µm,%,
03/07/2024,09:15:02,part1.sur,10,1.5,42,
03/07/2024,09:16:40,part2.sur,20,2.5,44,
03/07/2024,09:18:11,part3.sur,30,,46,
`

// writeExport writes content to dir encoded as ISO-8859-1, the way the
// instrument software does.
func writeExport(t *testing.T, dir, name, content string) string {
	t.Helper()
	encoded, err := charmap.ISO8859_1.NewEncoder().String(content)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(encoded), 0644))
	return path
}

func TestReadPreamble(t *testing.T) {
	path := writeExport(t, t.TempDir(), "run.csv", sampleExport)

	pre, err := ReadPreamble(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Time", "File", "Sa", "Sq", "Rmr(1 µm)", ""}, pre.Params)
	assert.Equal(t, []string{"", "", "", "µin", "µm", "%", ""}, pre.Units)
	assert.Equal(t, []string{"Date", "Time", "Measurement File", "Sa", "Sq", "Rmr(1 µm)", ""}, pre.Header())
}

func TestReadPreambleMalformed(t *testing.T) {
	path := writeExport(t, t.TempDir(), "short.csv", "title\nDate,Time,File,Sa\n")

	_, err := ReadPreamble(path)
	var malformed *MalformedHeaderError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 2, malformed.Rows)
}

func TestLoadMeasurements(t *testing.T) {
	path := writeExport(t, t.TempDir(), "run.csv", sampleExport)

	table, err := LoadMeasurements(path)
	require.NoError(t, err)

	paramRow := 7
	assert.Len(t, table.Columns, paramRow-3-1)
	assert.Len(t, table.ColumnNames(), paramRow-2)
	assert.Equal(t, []string{"Date_Time", "Measurement File", "Sa, µin", "Sq, µm", "Rmr(1 µm), %"}, table.ColumnNames())

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, []string{"part1.sur", "part2.sur", "part3.sur"}, table.ProcessedFiles())
	assert.Equal(t, []float64{10, 20, 30}, table.Columns[0].Values)

	assert.Equal(t, models.UnitImperial, table.Columns[0].Tag)
	assert.Equal(t, models.UnitMetric, table.Columns[1].Tag)
	assert.Equal(t, models.UnitRatio, table.Columns[2].Tag)

	// empty field is a missing value
	assert.True(t, math.IsNaN(table.Columns[1].Values[2]))

	assert.Equal(t, "03/07/2024 09:15:02", table.Timestamps[0].Raw)
	assert.Equal(t, time.Date(2024, 3, 7, 9, 15, 2, 0, time.UTC), table.Timestamps[0].Time)
}

func TestLoadMeasurementsUnknownDateLayout(t *testing.T) {
	content := "t\nDate,Time,File,Sa,\n,,,µm,\nday one,noon,a.sur,1,\n"
	path := writeExport(t, t.TempDir(), "run.csv", content)

	table, err := LoadMeasurements(path)
	require.NoError(t, err)
	assert.Equal(t, "day one noon", table.Timestamps[0].Raw)
	assert.True(t, table.Timestamps[0].Time.IsZero())
}

func TestLoadMeasurementsNoInput(t *testing.T) {
	_, err := LoadMeasurements("")
	assert.ErrorIs(t, err, ErrNoInputSelected)
}

func TestLoadMeasurementsMalformedHeader(t *testing.T) {
	path := writeExport(t, t.TempDir(), "short.csv", "title\nDate,Time,File,Sa\n")

	_, err := LoadMeasurements(path)
	var malformed *MalformedHeaderError
	assert.True(t, errors.As(err, &malformed))
	var fpe *FileProcessingError
	assert.False(t, errors.As(err, &fpe))
}

func TestLoadMeasurementsFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"non-numeric value", "t\nDate,Time,File,Sa,\n,,,µm,\n1/2/2024,10:00:00,a.sur,abc,\n"},
		{"short row", "t\nDate,Time,File,Sa,Sq,\n,,,µm,µm,\n1/2/2024,10:00:00,a.sur,1,\n"},
		{"long row", "t\nDate,Time,File,Sa,\n,,,µm,\n1/2/2024,10:00:00,a.sur,1,2,3\n"},
		{"missing unit", "t\nDate,Time,File,Sa,Sq,\n,,,µm\n1/2/2024,10:00:00,a.sur,1,2,\n"},
		{"no parameters", "t\nDate,Time,File\n,,\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeExport(t, t.TempDir(), "bad.csv", tt.content)

			table, err := LoadMeasurements(path)
			assert.Nil(t, table)
			var fpe *FileProcessingError
			require.True(t, errors.As(err, &fpe), "got %v", err)
			assert.Equal(t, path, fpe.Path)
			assert.Contains(t, fpe.Hint(), "apply a template")
		})
	}
}

func TestLoadMeasurementsMissingFile(t *testing.T) {
	_, err := LoadMeasurements(filepath.Join(t.TempDir(), "gone.csv"))
	var fpe *FileProcessingError
	require.True(t, errors.As(err, &fpe))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestTrailingColumnIgnored(t *testing.T) {
	// the trailing column may hold anything
	content := "t\nDate,Time,File,Sa,junk\n,,,µm,?\n1/2/2024,10:00:00,a.sur,1.25,not-a-number\n"
	path := writeExport(t, t.TempDir(), "run.csv", content)

	table, err := LoadMeasurements(path)
	require.NoError(t, err)
	require.Len(t, table.Columns, 1)
	assert.Equal(t, "Sa, µm", table.Columns[0].Name())
	assert.Equal(t, []float64{1.25}, table.Columns[0].Values)
}
