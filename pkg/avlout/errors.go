package avlout

import (
	"errors"
	"fmt"

	"github.com/aerotools/avlout/pkg/avlout/parser"
)

// ErrFileNotFound indicates the output file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrTableNotFound indicates a required table is missing from an output file.
var ErrTableNotFound = parser.ErrTableNotFound

// ErrMalformedTable indicates a table row does not match its header.
var ErrMalformedTable = parser.ErrMalformedTable

// TableNotFoundError reports a required table that could not be located.
type TableNotFoundError = parser.TableNotFoundError

// MalformedTableError reports a row whose value count does not match the header.
type MalformedTableError = parser.MalformedTableError

// RunError represents an error while reading one output of a run.
type RunError struct {
	Case   int
	Output string // "Totals", "StripForces", ...
	Err    error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("run case %d (%s): %v", e.Case, e.Output, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// NewRunError creates a new RunError.
func NewRunError(caseNumber int, output string, err error) *RunError {
	return &RunError{
		Case:   caseNumber,
		Output: output,
		Err:    err,
	}
}
