package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/surfstats-go/pkg/surfstats/models"
)

// timestampLayouts are tried in order against "<date> <time>".
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"1/2/2006 15:04:05",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 15:04",
	"1/2/2006 3:04 PM",
	"02.01.2006 15:04:05",
	"2006-01-02 15:04",
}

// LoadMeasurements parses the export at path into a MeasurementTable.
//
// An empty path yields ErrNoInputSelected and a truncated preamble a
// *MalformedHeaderError. Every other failure is reported as a
// *FileProcessingError.
func LoadMeasurements(path string) (*models.MeasurementTable, error) {
	if path == "" {
		return nil, ErrNoInputSelected
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, NewFileProcessingError(path, err)
	}
	defer f.Close()

	r := newRecordReader(f)
	pre, err := readPreamble(r, path)
	if err != nil {
		var malformed *MalformedHeaderError
		if errors.As(err, &malformed) {
			return nil, err
		}
		return nil, NewFileProcessingError(path, err)
	}

	table, err := loadRows(r, path, pre)
	if err != nil {
		return nil, NewFileProcessingError(path, err)
	}
	return table, nil
}

// loadRows reads the data rows following the preamble.
func loadRows(r *csv.Reader, path string, pre *Preamble) (*models.MeasurementTable, error) {
	header := pre.Header()
	// The export always ends with one unused column.
	if len(header) <= len(identityHeaders) {
		return nil, fmt.Errorf("parameter row has %d fields, want at least %d", len(pre.Params), placeholderFields+1)
	}
	params := header[len(identityHeaders) : len(header)-1]

	columns := make(models.Columns, len(params))
	for i, param := range params {
		pos := placeholderFields + i
		if pos >= len(pre.Units) {
			return nil, fmt.Errorf("unit row has no entry for parameter %q", param)
		}
		param = strings.TrimSpace(param)
		unit := strings.TrimSpace(pre.Units[pos])
		columns[i] = models.Column{
			Param: param,
			Unit:  unit,
			Tag:   models.ClassifyUnit(param, unit),
		}
	}

	table := &models.MeasurementTable{Path: path}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read data row: %w", err)
		}
		line, _ := r.FieldPos(0)
		if len(rec) != len(header) {
			return nil, fmt.Errorf("line %d has %d fields, want %d", line, len(rec), len(header))
		}

		table.Timestamps = append(table.Timestamps, parseTimestamp(rec[0], rec[1]))
		table.Sources = append(table.Sources, rec[2])
		for i := range columns {
			v, err := parseValue(rec[len(identityHeaders)+i])
			if err != nil {
				return nil, fmt.Errorf("line %d, column %q: %w", line, columns[i].Name(), err)
			}
			columns[i].Values = append(columns[i].Values, v)
		}
	}

	table.Columns = columns
	return table, nil
}

// parseTimestamp merges the date and time fields. Text that matches no
// known layout is kept raw with a zero Time.
func parseTimestamp(date, clock string) models.Timestamp {
	raw := strings.TrimSpace(strings.TrimSpace(date) + " " + strings.TrimSpace(clock))
	ts := models.Timestamp{Raw: raw}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			ts.Time = t
			break
		}
	}
	return ts
}

// parseValue parses a numeric field. An empty field is a missing value.
func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
