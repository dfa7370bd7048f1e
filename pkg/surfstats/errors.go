package surfstats

import (
	"errors"
	"fmt"

	"github.com/ukaji3/surfstats-go/pkg/surfstats/parser"
)

// ErrNoInputSelected indicates no input file was supplied.
var ErrNoInputSelected = parser.ErrNoInputSelected

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the file is not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// MalformedHeaderError indicates an export without parameter and unit rows.
type MalformedHeaderError = parser.MalformedHeaderError

// FileProcessingError indicates an export that could not be parsed.
type FileProcessingError = parser.FileProcessingError

// StageError represents a failure after loading, in one pipeline stage.
type StageError struct {
	Source string
	Stage  string // "aggregate", "plot", "report"
	Err    error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed for %q: %v", e.Stage, e.Source, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(source, stage string, err error) *StageError {
	return &StageError{
		Source: source,
		Stage:  stage,
		Err:    err,
	}
}

// Hint returns the remediation hint carried by err, if any.
func Hint(err error) string {
	var fpe *FileProcessingError
	if errors.As(err, &fpe) {
		return fpe.Hint()
	}
	return ""
}
