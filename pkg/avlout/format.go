package avlout

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/aerotools/avlout/pkg/avlout/models"
	"github.com/aerotools/avlout/pkg/avlout/parser"
)

// Format identifies an AVL output file kind by its extension (without dot).
type Format string

const (
	FormatTotals               Format = "ft"
	FormatSurfaceForces        Format = "fn"
	FormatStripForces          Format = "fs"
	FormatElementForces        Format = "fe"
	FormatStabilityDerivatives Format = "st"
	FormatBodyAxisDerivatives  Format = "sb"
	FormatHingeMoments         Format = "hm"
	FormatStripShearMoments    Format = "vm"
	FormatSystemMatrix         Format = "sys"
	FormatEigenvalues          Format = "eig"
)

// extractor parses a Doc into the matching field of a Result.
type extractor func(d *parser.Doc, r *models.Result) error

type formatSpec struct {
	output string
	parse  extractor
}

// formatTable maps each known extension to its output name and extractor.
var formatTable = map[Format]formatSpec{
	FormatTotals: {"Totals", func(d *parser.Doc, r *models.Result) (err error) {
		r.Scalars, err = parser.ParseTotals(d)
		return err
	}},
	FormatSurfaceForces: {"SurfaceForces", func(d *parser.Doc, r *models.Result) (err error) {
		r.Surfaces, err = parser.ParseSurfaceForces(d)
		return err
	}},
	FormatStripForces: {"StripForces", func(d *parser.Doc, r *models.Result) (err error) {
		r.Strips, err = parser.ParseStripForces(d)
		return err
	}},
	FormatElementForces: {"ElementForces", func(d *parser.Doc, r *models.Result) (err error) {
		r.Elements, err = parser.ParseElementForces(d)
		return err
	}},
	FormatStabilityDerivatives: {"StabilityDerivatives", func(d *parser.Doc, r *models.Result) (err error) {
		r.Scalars, err = parser.ParseStabilityDerivatives(d)
		return err
	}},
	FormatBodyAxisDerivatives: {"BodyAxisDerivatives", func(d *parser.Doc, r *models.Result) (err error) {
		r.Scalars, err = parser.ParseBodyDerivatives(d)
		return err
	}},
	FormatHingeMoments: {"HingeMoments", func(d *parser.Doc, r *models.Result) (err error) {
		r.Scalars, err = parser.ParseHingeMoments(d)
		return err
	}},
	FormatStripShearMoments: {"StripShearMoments", func(d *parser.Doc, r *models.Result) (err error) {
		r.Strips, err = parser.ParseStripShearMoments(d)
		return err
	}},
	FormatSystemMatrix: {"SystemMatrix", func(d *parser.Doc, r *models.Result) (err error) {
		r.Columns, err = parser.ParseSystemMatrix(d)
		return err
	}},
	FormatEigenvalues: {"Eigenvalues", func(d *parser.Doc, r *models.Result) (err error) {
		r.Eigenvalues, err = parser.ParseEigenvalues(d)
		return err
	}},
}

// FormatOf returns the format selected by the extension of path.
func FormatOf(path string) (Format, bool) {
	f := Format(strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")))
	return f, f.Known()
}

// FormatByOutput looks a format up by its output name, ignoring case.
func FormatByOutput(name string) (Format, bool) {
	for f, spec := range formatTable {
		if strings.EqualFold(spec.output, name) {
			return f, true
		}
	}
	return "", false
}

// Formats returns all known formats sorted by extension.
func Formats() []Format {
	formats := make([]Format, 0, len(formatTable))
	for f := range formatTable {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// SessionFormats returns the outputs AVL writes for every run case, in session order.
// The system matrix and eigenvalues are written on request only.
func SessionFormats() []Format {
	return []Format{
		FormatTotals,
		FormatSurfaceForces,
		FormatStripForces,
		FormatElementForces,
		FormatStabilityDerivatives,
		FormatBodyAxisDerivatives,
		FormatHingeMoments,
		FormatStripShearMoments,
	}
}

// Known reports whether f has an extractor.
func (f Format) Known() bool {
	_, ok := formatTable[f]
	return ok
}

// Output returns the output name of f, e.g. "Totals", or "" for unknown formats.
func (f Format) Output() string {
	return formatTable[f].output
}
