package parser

import (
	"errors"
	"fmt"
)

// ErrTableNotFound indicates a required table or marker is missing from the file.
var ErrTableNotFound = errors.New("table not found")

// ErrMalformedTable indicates a row does not match its table header.
var ErrMalformedTable = errors.New("malformed table")

// TableNotFoundError reports a required table that could not be located.
type TableNotFoundError struct {
	File   string
	Format string
	Table  string // header pattern or marker text
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("%s (%s): table %q not found", e.File, e.Format, e.Table)
}

func (e *TableNotFoundError) Unwrap() error {
	return ErrTableNotFound
}

// MalformedTableError reports a row whose value count does not match the header.
type MalformedTableError struct {
	File   string
	Format string
	Table  string
	Line   int
	Want   int
	Got    int
}

func (e *MalformedTableError) Error() string {
	return fmt.Sprintf("%s (%s): line %d of table %q has %d values, expected %d",
		e.File, e.Format, e.Line, e.Table, e.Got, e.Want)
}

func (e *MalformedTableError) Unwrap() error {
	return ErrMalformedTable
}

func (d *Doc) notFound(table string) *TableNotFoundError {
	return &TableNotFoundError{File: d.File, Format: d.Format, Table: table}
}

func (d *Doc) malformed(table string, line Line, want, got int) *MalformedTableError {
	return &MalformedTableError{File: d.File, Format: d.Format, Table: table, Line: line.No, Want: want, Got: got}
}
