package parser

import (
	"strconv"
	"strings"

	"github.com/aerotools/avlout/pkg/avlout/models"
)

// ParseTotals reads every "key = value" pair of a totals (.ft) file.
func ParseTotals(d *Doc) (models.Scalars, error) {
	return d.scanKeyValues(d.Lines), nil
}

// ParseStabilityDerivatives reads the stability-axis derivatives (.st),
// from the block header through the neutral point line, with control names applied.
func ParseStabilityDerivatives(d *Doc) (models.Scalars, error) {
	start := indexOf(d.Lines, StabilityStartMarker, 0)
	if start < 0 {
		return nil, d.notFound(StabilityStartMarker)
	}
	end := indexOf(d.Lines, StabilityEndMarker, start)
	if end < 0 {
		return nil, d.notFound(StabilityEndMarker)
	}
	vars := d.scanKeyValues(d.Lines[start : end+1])
	return ApplyControlLegend(vars, ControlLegend(d.Lines)), nil
}

// ParseBodyDerivatives reads the body-axis derivatives (.sb) from the
// geometry-axis block header to the end of the file, with control names applied.
func ParseBodyDerivatives(d *Doc) (models.Scalars, error) {
	start := indexOf(d.Lines, BodyStartMarker, 0)
	if start < 0 {
		return nil, d.notFound(BodyStartMarker)
	}
	vars := d.scanKeyValues(d.Lines[start:])
	return ApplyControlLegend(vars, ControlLegend(d.Lines)), nil
}

// ParseHingeMoments reads "name value" lines of a hinge moment (.hm) file.
func ParseHingeMoments(d *Doc) (models.Scalars, error) {
	result := make(models.Scalars)
	for _, l := range d.Lines {
		m := HingeRe.FindStringSubmatch(l.Text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		result[m[1]] = v
	}
	return result, nil
}

// ControlLegend maps control tokens (d1, d2, ...) to control names.
// The legend may appear anywhere in the file; the last entry for a token wins.
func ControlLegend(lines []Line) map[string]string {
	text := strings.Join(Texts(lines), "\n")
	legend := make(map[string]string)
	for _, m := range ControlLegendRe.FindAllStringSubmatch(text, -1) {
		legend[m[2]] = m[1]
	}
	return legend
}

// ApplyControlLegend renames keys holding a control token, e.g. CLd1 -> CLflap.
// Keys whose token is missing from the legend are kept as they are.
func ApplyControlLegend(vars models.Scalars, legend map[string]string) models.Scalars {
	out := make(models.Scalars, len(vars))
	for key, v := range vars {
		token := ControlTokenRe.FindString(key)
		if name, ok := legend[token]; token != "" && ok {
			key = strings.ReplaceAll(key, token, name)
		}
		out[key] = v
	}
	return out
}

func (d *Doc) scanKeyValues(lines []Line) models.Scalars {
	result := make(models.Scalars)
	for _, l := range lines {
		for _, m := range KeyValueRe.FindAllStringSubmatch(l.Text, -1) {
			result[m[1]] = d.parseField(l, m[2])
		}
	}
	return result
}

func indexOf(lines []Line, marker string, from int) int {
	for i := from; i < len(lines); i++ {
		if strings.Contains(lines[i].Text, marker) {
			return i
		}
	}
	return -1
}
