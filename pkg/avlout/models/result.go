// Package models defines data structures for parsed AVL output files.
package models

// Result is the parsed content of one output file.
// Exactly one of the table fields is set, depending on Format.
type Result struct {
	// File is the base name of the parsed file.
	File string `json:"file"`
	// Format is the file extension the extractor was selected by (e.g. "ft").
	Format string `json:"format"`
	// Output is the session output name (e.g. "Totals"), empty for unknown files.
	Output string `json:"output,omitempty"`
	// Scalars holds totals, derivatives and hinge moments.
	Scalars Scalars `json:"scalars,omitempty"`
	// Surfaces holds the surface forces table keyed by surface name.
	Surfaces SurfaceScalars `json:"surfaces,omitempty"`
	// Strips holds strip forces and strip shear/moments keyed by surface name.
	Strips SurfaceColumns `json:"strips,omitempty"`
	// Elements holds element forces keyed by surface name, then strip index.
	Elements ElementColumns `json:"elements,omitempty"`
	// Columns holds the system matrix keyed by column name.
	Columns Columns `json:"columns,omitempty"`
	// Eigenvalues holds eigenvalue pairs keyed by run case index.
	Eigenvalues Eigenvalues `json:"eigenvalues,omitempty"`
	// Raw is the unparsed file content for unknown formats.
	Raw string `json:"raw,omitempty"`
	// Warnings lists data-quality issues recovered while parsing.
	Warnings []Warning `json:"warnings,omitempty"`
}
