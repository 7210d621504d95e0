package parser

import (
	"strings"

	"github.com/aerotools/avlout/pkg/avlout/models"
)

const (
	matrixTable = "system matrix"
	eigenTable  = "eigenvalues"
)

// ParseSystemMatrix reads a system matrix dump. The first content line is the
// header, with column names separated by '|' or whitespace.
func ParseSystemMatrix(d *Doc) (models.Columns, error) {
	var content []Line
	for _, l := range d.Lines {
		if IsBlank(l.Text) || IsSeparator(l.Text) || IsComment(l.Text) {
			continue
		}
		content = append(content, l)
	}
	if len(content) == 0 {
		return nil, d.notFound(matrixTable)
	}

	var header []string
	for _, field := range MatrixHeaderSplitRe.Split(content[0].Text, -1) {
		if field != "" {
			header = append(header, field)
		}
	}
	columns := make(models.Columns, len(header))
	for _, key := range header {
		columns[key] = []float64{}
	}
	for _, row := range content[1:] {
		values, err := d.fitRow(matrixTable, row, d.DecodeRow(row), len(header))
		if err != nil {
			return nil, err
		}
		for i, key := range header {
			columns[key] = append(columns[key], values[i])
		}
	}
	return columns, nil
}

// ParseEigenvalues reads an eigenvalue listing: each line holds a run case
// index followed by the real and imaginary parts.
func ParseEigenvalues(d *Doc) (models.Eigenvalues, error) {
	result := make(models.Eigenvalues)
	for _, l := range d.Lines {
		if IsBlank(l.Text) || IsComment(l.Text) {
			continue
		}
		index := strings.Fields(l.Text)[0]
		values := d.DecodeRow(l)
		if len(values) > 0 {
			values = values[1:]
		}
		values, err := d.fitRow(eigenTable, l, values, 2)
		if err != nil {
			return nil, err
		}
		result[index] = append(result[index], models.Eigenvalue{Re: values[0], Im: values[1]})
	}
	return result, nil
}
