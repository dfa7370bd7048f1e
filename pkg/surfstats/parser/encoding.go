// Package parser reads instrument CSV exports and produced reports.
package parser

import (
	"encoding/csv"
	"io"

	"golang.org/x/text/encoding/charmap"
)

// newRecordReader returns a CSV reader over an ISO-8859-1 stream. The
// instrument writes the micro sign as the single byte 0xB5, which is
// not valid UTF-8.
func newRecordReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}
