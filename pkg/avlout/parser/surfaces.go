package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aerotools/avlout/pkg/avlout/models"
)

// ParseSurfaceForces reads the surface forces (.fn) table keyed by the surface name
// at the end of each row. Rows of a duplicated surface are summed into the base surface.
func ParseSurfaceForces(d *Doc) (models.SurfaceScalars, error) {
	table := SurfaceHeaderRe.String()
	headerLine, body, ok := findTable(d.Lines, SurfaceHeaderRe)
	if !ok {
		return nil, d.notFound(table)
	}
	header := SplitHeader(headerLine.Text, true)

	result := make(models.SurfaceScalars)
	for _, row := range body {
		values, end := d.decodeFields(row)
		name := strings.TrimSpace(row.Text[end:])
		if len(values) > 0 {
			values = values[1:]
		}
		values, err := d.fitRow(table, row, values, len(header))
		if err != nil {
			return nil, err
		}
		if IsDuplicate(name) {
			name = BaseName(name)
		}
		if entry, ok := result[name]; ok {
			for i, key := range header {
				entry[key] += values[i]
			}
			continue
		}
		entry := make(models.Scalars, len(header))
		for i, key := range header {
			entry[key] = values[i]
		}
		result[name] = entry
	}
	return result, nil
}

// ParseStripForces reads the strip forces (.fs) tables, one per surface.
// Duplicated surfaces are dropped.
func ParseStripForces(d *Doc) (models.SurfaceColumns, error) {
	return d.surfaceTables(SurfaceRe, StripHeaderRe, true)
}

// ParseStripShearMoments reads the strip shear/moment (.vm) tables, one per surface.
// The first column is kept as data. Duplicated surfaces are dropped.
func ParseStripShearMoments(d *Doc) (models.SurfaceColumns, error) {
	return d.surfaceTables(ShearSurfaceRe, ShearHeaderRe, false)
}

func (d *Doc) surfaceTables(marker, header *regexp.Regexp, dropFirst bool) (models.SurfaceColumns, error) {
	table := header.String()
	result := make(models.SurfaceColumns)
	found := false
	for _, b := range SplitBlocks(d.Lines, marker) {
		headerLine, body, ok := findTable(b.Lines, header)
		if !ok {
			continue
		}
		found = true
		if IsDuplicate(b.Name) {
			continue
		}
		columns, err := d.decodeColumns(table, headerLine, body, dropFirst)
		if err != nil {
			return nil, err
		}
		result[b.Name] = columns
	}
	if !found {
		return nil, d.notFound(table)
	}
	return result, nil
}

// ParseElementForces reads the element forces (.fe) tables, keyed by surface and strip.
// Strips of a duplicated surface are merged into the base surface.
func ParseElementForces(d *Doc) (models.ElementColumns, error) {
	table := ElementHeaderRe.String()
	result := make(models.ElementColumns)
	found := false
	for _, surface := range SplitBlocks(d.Lines, SurfaceRe) {
		name := surface.Name
		if IsDuplicate(name) {
			name = BaseName(name)
		}
		strips, ok := result[name]
		if !ok {
			strips = make(map[int]models.Columns)
			result[name] = strips
		}
		for _, strip := range SplitBlocks(surface.Lines, StripRe) {
			index, err := strconv.Atoi(strip.Name)
			if err != nil {
				continue
			}
			headerLine, body, ok := findTable(strip.Lines, ElementHeaderRe)
			if !ok {
				continue
			}
			found = true
			columns, err := d.decodeColumns(table, headerLine, body, true)
			if err != nil {
				return nil, err
			}
			strips[index] = columns
		}
	}
	if !found {
		return nil, d.notFound(table)
	}
	return result, nil
}
