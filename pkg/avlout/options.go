// Package avlout parses the text output files written by the AVL vortex lattice solver.
package avlout

import (
	"runtime"

	"github.com/aerotools/avlout/pkg/avlout/parser"
	"go.uber.org/zap"
)

// Strictness controls how rows with fewer values than header columns are treated.
type Strictness = parser.Strictness

const (
	// Strict fails the parse with a MalformedTableError on a short row.
	Strict = parser.Strict
	// Lenient pads a short row with NaN and records a warning.
	Lenient = parser.Lenient
)

// Options configures parsing behavior.
type Options struct {
	// Strictness overrides the strictness per format. Formats not listed are strict.
	Strictness map[Format]Strictness
	// Logger receives warnings. If nil, log output is discarded.
	Logger *zap.Logger
	// Concurrency limits the number of files parsed at once by ParseDir and ReadRun.
	// If zero, defaults to GOMAXPROCS.
	Concurrency int
}

// DefaultOptions returns default parse options.
func DefaultOptions() Options {
	return Options{}
}

// StrictnessFor returns the strictness applied to format f.
func (o Options) StrictnessFor(f Format) Strictness {
	if s, ok := o.Strictness[f]; ok && s != "" {
		return s
	}
	return Strict
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) concurrency() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}
