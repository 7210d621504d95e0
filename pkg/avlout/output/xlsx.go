package output

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/aerotools/avlout/pkg/avlout/models"
	"github.com/xuri/excelize/v2"
)

// maxSheetName is the Excel limit on sheet name length.
const maxSheetName = 31

// ToXLSX writes results to a workbook at path, one sheet per file.
func ToXLSX(results map[string]*models.Result, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	// Sheet1 exists in a new workbook and is removed once results are written.
	used := map[string]bool{"sheet1": true}
	for _, name := range names {
		sheet := sheetName(name, used)
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		if err := writeResult(f, sheet, results[name]); err != nil {
			return fmt.Errorf("sheet %q: %w", sheet, err)
		}
	}
	if len(names) > 0 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

// sheetWriter appends rows to one sheet.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
}

func (w *sheetWriter) write(values ...interface{}) error {
	w.row++
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	return w.f.SetSheetRow(w.sheet, cell, &values)
}

func (w *sheetWriter) skip() {
	w.row++
}

func writeResult(f *excelize.File, sheet string, r *models.Result) error {
	w := &sheetWriter{f: f, sheet: sheet}
	switch {
	case r.Scalars != nil:
		return writeScalars(w, r.Scalars)
	case r.Surfaces != nil:
		return writeSurfaces(w, r.Surfaces)
	case r.Strips != nil:
		for _, surface := range sortedKeys(r.Strips) {
			if err := w.write(surface); err != nil {
				return err
			}
			if err := writeColumns(w, r.Strips[surface]); err != nil {
				return err
			}
			w.skip()
		}
	case r.Elements != nil:
		for _, surface := range sortedKeys(r.Elements) {
			strips := r.Elements[surface]
			indices := make([]int, 0, len(strips))
			for i := range strips {
				indices = append(indices, i)
			}
			sort.Ints(indices)
			for _, i := range indices {
				if err := w.write(surface, "Strip", i); err != nil {
					return err
				}
				if err := writeColumns(w, strips[i]); err != nil {
					return err
				}
				w.skip()
			}
		}
	case r.Columns != nil:
		return writeColumns(w, r.Columns)
	case r.Eigenvalues != nil:
		if err := w.write("Case", "Re", "Im"); err != nil {
			return err
		}
		for _, c := range sortedKeys(r.Eigenvalues) {
			for _, e := range r.Eigenvalues[c] {
				if err := w.write(c, cellValue(e.Re), cellValue(e.Im)); err != nil {
					return err
				}
			}
		}
	default:
		for _, line := range strings.Split(r.Raw, "\n") {
			if err := w.write(line); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeScalars(w *sheetWriter, s models.Scalars) error {
	if err := w.write("Name", "Value"); err != nil {
		return err
	}
	for _, key := range sortedKeys(s) {
		if err := w.write(key, cellValue(s[key])); err != nil {
			return err
		}
	}
	return nil
}

func writeSurfaces(w *sheetWriter, s models.SurfaceScalars) error {
	keySet := make(map[string]bool)
	for _, row := range s {
		for key := range row {
			keySet[key] = true
		}
	}
	keys := sortedKeys(keySet)
	header := []interface{}{"Surface"}
	for _, key := range keys {
		header = append(header, key)
	}
	if err := w.write(header...); err != nil {
		return err
	}
	for _, surface := range sortedKeys(s) {
		row := []interface{}{surface}
		for _, key := range keys {
			v, ok := s[surface][key]
			if !ok {
				row = append(row, nil)
				continue
			}
			row = append(row, cellValue(v))
		}
		if err := w.write(row...); err != nil {
			return err
		}
	}
	return nil
}

func writeColumns(w *sheetWriter, c models.Columns) error {
	keys := sortedKeys(c)
	header := make([]interface{}, len(keys))
	for i, key := range keys {
		header[i] = key
	}
	if err := w.write(header...); err != nil {
		return err
	}
	for i := 0; i < c.Len(); i++ {
		row := make([]interface{}, len(keys))
		for j, key := range keys {
			if i < len(c[key]) {
				row[j] = cellValue(c[key][i])
			}
		}
		if err := w.write(row...); err != nil {
			return err
		}
	}
	return nil
}

// cellValue leaves overflowed values as empty cells.
func cellValue(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

// sheetName derives a unique, valid sheet name from a file name.
func sheetName(name string, used map[string]bool) string {
	clean := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, name)
	if clean == "" {
		clean = "result"
	}
	clean = truncateRunes(clean, maxSheetName)
	candidate := clean
	for i := 2; used[strings.ToLower(candidate)]; i++ {
		suffix := fmt.Sprintf("~%d", i)
		candidate = truncateRunes(clean, maxSheetName-len(suffix)) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

// truncateRunes shortens s to at most n characters.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
