package models

// Scalars maps a variable name to its value.
type Scalars map[string]float64

// Columns maps a column header to the values of that column, top to bottom.
type Columns map[string][]float64

// SurfaceScalars maps a surface name to one row of a table.
type SurfaceScalars map[string]Scalars

// SurfaceColumns maps a surface name to its per-strip table.
type SurfaceColumns map[string]Columns

// ElementColumns maps a surface name and strip index to the element table of that strip.
type ElementColumns map[string]map[int]Columns

// Eigenvalue is one complex eigenvalue.
type Eigenvalue struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// Eigenvalues maps a run case index to its eigenvalues in file order.
type Eigenvalues map[string][]Eigenvalue

// Len returns the number of rows, taken from the longest column.
func (c Columns) Len() int {
	n := 0
	for _, values := range c {
		if len(values) > n {
			n = len(values)
		}
	}
	return n
}
