package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

const (
	// preambleRows is the number of header rows before the data.
	preambleRows = 3
	// placeholderFields is the number of leading placeholder entries
	// (date, time, file) in the parameter and unit rows.
	placeholderFields = 3
)

// identityHeaders are the raw leading columns of every data row.
var identityHeaders = []string{"Date", "Time", "Measurement File"}

// Preamble holds the parameter-name and unit rows of an export.
type Preamble struct {
	// Params is row 2. The first three entries are placeholders.
	Params []string
	// Units is row 3, aligned with Params.
	Units []string
}

// Header returns the raw data-row header: the three identity columns
// followed by every parameter name, trailing placeholder included.
func (p *Preamble) Header() []string {
	header := append([]string{}, identityHeaders...)
	if len(p.Params) > placeholderFields {
		header = append(header, p.Params[placeholderFields:]...)
	}
	return header
}

// ReadPreamble reads the parameter-name and unit rows of the export at path.
func ReadPreamble(path string) (*Preamble, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	defer f.Close()

	return readPreamble(newRecordReader(f), path)
}

// readPreamble consumes the first three records of r.
func readPreamble(r *csv.Reader, path string) (*Preamble, error) {
	rows := make([][]string, 0, preambleRows)
	for len(rows) < preambleRows {
		rec, err := r.Read()
		if err == io.EOF {
			return nil, NewMalformedHeaderError(path, len(rows))
		}
		if err != nil {
			return nil, fmt.Errorf("read preamble: %w", err)
		}
		rows = append(rows, rec)
	}

	return &Preamble{Params: rows[1], Units: rows[2]}, nil
}
