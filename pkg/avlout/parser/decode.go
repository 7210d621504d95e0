package parser

import (
	"fmt"
	"math"
	"strconv"

	"github.com/aerotools/avlout/pkg/avlout/models"
)

// DecodeRow converts the numeric fields of a data row to floats.
// Overflow fields become NaN; the first one in a Doc is reported as a warning.
func (d *Doc) DecodeRow(line Line) []float64 {
	values, _ := d.decodeFields(line)
	return values
}

// decodeFields decodes a row and returns the byte offset just past its last field.
func (d *Doc) decodeFields(line Line) ([]float64, int) {
	spans := fieldSpans(line.Text)
	values := make([]float64, 0, len(spans))
	end := 0
	for _, m := range spans {
		values = append(values, d.parseField(line, line.Text[m[0]:m[1]]))
		end = m[1]
	}
	return values, end
}

func (d *Doc) parseField(line Line, field string) float64 {
	if OverflowRe.MatchString(field) {
		d.Warn(models.WarningOverflow, line,
			"AVL returned unreadable output, most likely a value wider than the output format supports")
		return math.NaN()
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		// Out of float64 range; the pattern guarantees the syntax.
		return math.NaN()
	}
	return v
}

// fitRow checks a decoded row against the header width.
// Surplus values are always an error. Short rows are an error in strict mode
// and are padded with NaN in lenient mode.
func (d *Doc) fitRow(table string, line Line, values []float64, width int) ([]float64, error) {
	switch {
	case len(values) > width:
		return nil, d.malformed(table, line, width, len(values))
	case len(values) == width:
		return values, nil
	case d.Strictness != Lenient:
		return nil, d.malformed(table, line, width, len(values))
	}
	d.Warn(models.WarningShortRow, line,
		fmt.Sprintf("row has %d values for %d columns, padding with NaN", len(values), width))
	padded := make([]float64, width)
	copy(padded, values)
	for i := len(values); i < width; i++ {
		padded[i] = math.NaN()
	}
	return padded, nil
}

// decodeColumns decodes the body rows of a table into columns keyed by header.
func (d *Doc) decodeColumns(table string, headerLine Line, body []Line, dropFirst bool) (models.Columns, error) {
	header := SplitHeader(headerLine.Text, dropFirst)
	columns := make(models.Columns, len(header))
	for _, key := range header {
		columns[key] = []float64{}
	}
	for _, row := range body {
		values := d.DecodeRow(row)
		if dropFirst && len(values) > 0 {
			values = values[1:]
		}
		values, err := d.fitRow(table, row, values, len(header))
		if err != nil {
			return nil, err
		}
		for i, key := range header {
			columns[key] = append(columns[key], values[i])
		}
	}
	return columns, nil
}
