package parser

import (
	"errors"
	"fmt"
)

// ErrNoInputSelected indicates no input file was supplied, typically
// because the selection was cancelled upstream.
var ErrNoInputSelected = errors.New("no input file selected")

// exportHint is the remediation attached to every FileProcessingError.
const exportHint = "ensure the chosen file was produced by the Mountains software 'apply a template' function"

// MalformedHeaderError indicates the file ends before the parameter
// and unit rows of the preamble.
type MalformedHeaderError struct {
	Path string
	Rows int // rows actually present
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("malformed header in %q: found %d of %d preamble rows", e.Path, e.Rows, preambleRows)
}

// NewMalformedHeaderError creates a new MalformedHeaderError.
func NewMalformedHeaderError(path string, rows int) *MalformedHeaderError {
	return &MalformedHeaderError{Path: path, Rows: rows}
}

// FileProcessingError represents any failure while loading an export:
// I/O, decoding, row shape or numeric parsing.
type FileProcessingError struct {
	Path string
	Err  error
}

func (e *FileProcessingError) Error() string {
	return fmt.Sprintf("failed to process %q: %v (the file is probably not an instrument template export)", e.Path, e.Err)
}

func (e *FileProcessingError) Unwrap() error {
	return e.Err
}

// Hint returns the remediation shown to the user.
func (e *FileProcessingError) Hint() string {
	return exportHint
}

// NewFileProcessingError creates a new FileProcessingError.
func NewFileProcessingError(path string, err error) *FileProcessingError {
	return &FileProcessingError{Path: path, Err: err}
}
