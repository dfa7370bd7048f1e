package report

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/ukaji3/surfstats-go/pkg/surfstats/models"
	"github.com/ukaji3/surfstats-go/pkg/surfstats/units"
	"github.com/xuri/excelize/v2"
)

// styles holds the style ids registered on a report workbook.
type styles struct {
	wrap     int
	boldWrap int
	decimal  int
	bold     int
}

// ErrReportExists is returned when the report name is already taken.
// Existing reports are never replaced.
var ErrReportExists = errors.New("report already exists")

// Write lays out the metric statistics, their imperial mirror and the
// provenance list into a new workbook saved at path. The file appears
// at path only once it has been written completely, and Write fails
// with ErrReportExists if path is already present.
func Write(path string, metric *models.StatsTable, processed []string, width float64) error {
	f, err := Build(metric, processed, width)
	if err != nil {
		return err
	}
	defer f.Close()

	return save(f, path)
}

// WriteNew saves the report in dir under the timestamped name for now.
// When that name is taken it moves on to the next free second, so
// reports produced within the same second never replace each other.
// It returns the path written.
func WriteNew(dir string, now time.Time, metric *models.StatsTable, processed []string, width float64) (string, error) {
	f, err := Build(metric, processed, width)
	if err != nil {
		return "", err
	}
	defer f.Close()

	tmpName, err := writeTemp(f, dir)
	if err != nil {
		return "", err
	}
	defer os.Remove(tmpName)

	for i := 0; i < maxNameAttempts; i++ {
		path := filepath.Join(dir, FileName(now.Add(time.Duration(i)*time.Second)))
		err := place(tmpName, path)
		if errors.Is(err, ErrReportExists) {
			continue
		}
		if err != nil {
			return "", err
		}
		return path, nil
	}
	return "", fmt.Errorf("%w: no free name in %s after %d attempts", ErrReportExists, dir, maxNameAttempts)
}

// Build creates the report workbook in memory.
func Build(metric *models.StatsTable, processed []string, width float64) (*excelize.File, error) {
	if width <= 0 {
		return nil, fmt.Errorf("column width must be positive, got %v", width)
	}

	f := excelize.NewFile()
	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	imperial := units.StatsToStandard(metric)
	// The provenance marker column is always part of the used range,
	// even when there are fewer parameter columns.
	lastCol := max(Layout.MetricValues.Col+len(metric.Columns)-1, Layout.ProvenanceMarker.Col)

	if err := layoutSheet(f, st, metric, imperial, processed, lastCol, width); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func layoutSheet(f *excelize.File, st styles, metric, imperial *models.StatsTable, processed []string, lastCol int, width float64) error {
	if err := writeTable(f, metric, Layout.MetricHeader, Layout.MetricLabels, Layout.MetricValues); err != nil {
		return err
	}
	if err := writeTable(f, imperial, Layout.ImperialHeader, Layout.ImperialLabels, Layout.ImperialValues); err != nil {
		return err
	}
	if err := setCell(f, Layout.ImperialMarker.Col, Layout.ImperialMarker.Row, ImperialMarker); err != nil {
		return err
	}
	if err := setCell(f, Layout.ProvenanceMarker.Col, Layout.ProvenanceMarker.Row, ProvenanceMarker); err != nil {
		return err
	}
	if err := writeProvenance(f, processed); err != nil {
		return err
	}
	if err := applyStyles(f, st, lastCol); err != nil {
		return err
	}
	if err := setWidths(f, lastCol, width); err != nil {
		return err
	}
	return setPrintArea(f, lastCol, len(processed))
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error
	decimal := DecimalFormat

	if st.wrap, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true},
	}); err != nil {
		return st, err
	}
	if st.boldWrap, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{WrapText: true},
	}); err != nil {
		return st, err
	}
	if st.decimal, err = f.NewStyle(&excelize.Style{
		Alignment:    &excelize.Alignment{WrapText: true},
		CustomNumFmt: &decimal,
	}); err != nil {
		return st, err
	}
	st.bold, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	return st, err
}

// writeTable writes one header row plus the AVG and STDEV rows.
func writeTable(f *excelize.File, s *models.StatsTable, header, labels, values Region) error {
	for i, name := range s.Columns.Names() {
		if err := setCell(f, header.Col+i, header.Row, name); err != nil {
			return err
		}
	}

	rows := [][]float64{s.Mean(), s.Std()}
	for r, label := range []string{AvgLabel, StdevLabel} {
		if err := setCell(f, labels.Col, labels.Row+r, label); err != nil {
			return err
		}
		for c, v := range rows[r] {
			// empty cell rather than an invalid numeric literal
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if err := setCell(f, values.Col+c, values.Row+r, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeProvenance(f *excelize.File, processed []string) error {
	for i, file := range processed {
		if err := setCell(f, Layout.ProvenanceList.Col, Layout.ProvenanceList.Row+i, file); err != nil {
			return err
		}
	}
	return nil
}

// applyStyles wraps every cell above the provenance marker, bolds the
// headers and markers, and gives value rows the decimal format.
func applyStyles(f *excelize.File, st styles, lastCol int) error {
	if err := styleRows(f, 1, Layout.ProvenanceMarker.Row-1, lastCol, st.wrap); err != nil {
		return err
	}
	for _, r := range []Region{Layout.MetricValues, Layout.ImperialValues} {
		if err := styleRows(f, r.Row, r.Row+r.Rows-1, lastCol, st.decimal); err != nil {
			return err
		}
	}
	for _, r := range []Region{Layout.MetricHeader, Layout.ImperialHeader} {
		if err := styleRows(f, r.Row, r.Row, lastCol, st.boldWrap); err != nil {
			return err
		}
	}
	marker, err := excelize.CoordinatesToCellName(Layout.ProvenanceMarker.Col, Layout.ProvenanceMarker.Row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(SheetName, marker, marker, st.bold)
}

func styleRows(f *excelize.File, firstRow, lastRow, lastCol, style int) error {
	first, err := excelize.CoordinatesToCellName(1, firstRow)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(lastCol, lastRow)
	if err != nil {
		return err
	}
	return f.SetCellStyle(SheetName, first, last, style)
}

func setWidths(f *excelize.File, lastCol int, width float64) error {
	lastName, err := excelize.ColumnNumberToName(lastCol)
	if err != nil {
		return err
	}
	return f.SetColWidth(SheetName, "A", lastName, width)
}

func setPrintArea(f *excelize.File, lastCol, files int) error {
	lastRow := Layout.ProvenanceMarker.Row
	if files > 0 {
		lastRow = Layout.ProvenanceList.Row + files - 1
	}
	lastName, err := excelize.ColumnNumberToName(lastCol)
	if err != nil {
		return err
	}
	return f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: fmt.Sprintf("%s!$A$1:$%s$%d", SheetName, lastName, lastRow),
		Scope:    SheetName,
	})
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(SheetName, cell, value)
}

// maxNameAttempts bounds how many successive seconds WriteNew tries
// before giving up on finding a free report name.
const maxNameAttempts = 3600

// writeTemp writes f to a new temporary file in dir and returns its name.
func writeTemp(f *excelize.File, dir string) (string, error) {
	tmp, err := os.CreateTemp(dir, ".surf_stats_*.xlsx")
	if err != nil {
		return "", fmt.Errorf("failed to create temp report: %w", err)
	}
	tmpName := tmp.Name()

	if err := f.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return tmpName, nil
}

// place publishes tmpName at path without replacing an existing file.
// A hard link fails atomically when path exists; filesystems without
// hard links fall back to a stat check followed by a rename.
func place(tmpName, path string) error {
	err := os.Link(tmpName, path)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s", ErrReportExists, path)
	}
	if _, statErr := os.Lstat(path); statErr == nil {
		return fmt.Errorf("%w: %s", ErrReportExists, path)
	}
	tmp, copyErr := copyTemp(tmpName)
	if copyErr != nil {
		return fmt.Errorf("failed to save report: %w", copyErr)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// copyTemp duplicates tmpName beside itself so the original survives a
// rename and can be retried under another name.
func copyTemp(tmpName string) (string, error) {
	data, err := os.ReadFile(tmpName)
	if err != nil {
		return "", err
	}
	dup, err := os.CreateTemp(filepath.Dir(tmpName), ".surf_stats_*.xlsx")
	if err != nil {
		return "", err
	}
	name := dup.Name()
	if _, err := dup.Write(data); err != nil {
		dup.Close()
		os.Remove(name)
		return "", err
	}
	if err := dup.Close(); err != nil {
		os.Remove(name)
		return "", err
	}
	if err := os.Chmod(name, 0644); err != nil {
		os.Remove(name)
		return "", err
	}
	return name, nil
}

// save writes f beside path and publishes it there, failing with
// ErrReportExists rather than replacing an existing file.
func save(f *excelize.File, path string) error {
	tmpName, err := writeTemp(f, filepath.Dir(path))
	if err != nil {
		return err
	}
	defer os.Remove(tmpName)

	return place(tmpName, path)
}
