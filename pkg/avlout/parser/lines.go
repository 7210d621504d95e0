// Package parser provides extractors for AVL text output files.
package parser

import (
	"regexp"
	"strings"
)

// floatExpr matches a plain or exponent-notation number. A decimal point is optional.
const floatExpr = `[-+]?(?:\d+\.\d*|\.\d+|\d+)(?:[eE][-+]?\d+)?`

// overflowExpr matches the asterisk run AVL prints for a value wider than its column.
const overflowExpr = `\*+`

// Patterns used to find tables in the output files.
var (
	// FieldRe also matches digits inside words such as d1; use fieldSpans to tokenize rows.
	FieldRe    = regexp.MustCompile(floatExpr + `|` + overflowExpr)
	OverflowRe = regexp.MustCompile(`^` + overflowExpr + `$`)

	KeyValueRe = regexp.MustCompile(`(\S+)\s+=\s+(` + floatExpr + `|` + overflowExpr + `)`)
	HingeRe    = regexp.MustCompile(`(\w+)\s+(` + floatExpr + `)`)

	SurfaceRe      = regexp.MustCompile(`Surface\s+#\s*\d+(?:\s+(.*))?`)
	ShearSurfaceRe = regexp.MustCompile(`Surface:\s*\d+(?:\s+(.*))?`)
	StripRe        = regexp.MustCompile(`Strip\s+#\s+(\d+)`)

	SurfaceHeaderRe = regexp.MustCompile(`n\s+Area\s+CL`)
	StripHeaderRe   = regexp.MustCompile(`j\s+Yle\s+Chord`)
	ElementHeaderRe = regexp.MustCompile(`I\s+X\s+Y\s+Z`)
	ShearHeaderRe   = regexp.MustCompile(`2Y.*\s+Vz`)

	ControlLegendRe = regexp.MustCompile(`(\S+)\s+(d\d+)`)
	ControlTokenRe  = regexp.MustCompile(`d\d+`)

	// Column names may contain single spaces ("c cl"), never double ones.
	HeaderSplitRe       = regexp.MustCompile(`\s{2,}`)
	MatrixHeaderSplitRe = regexp.MustCompile(`[|\s]+`)
)

// Marker lines bounding the derivative blocks.
const (
	StabilityStartMarker = "Stability-axis derivatives..."
	StabilityEndMarker   = "Neutral point"
	BodyStartMarker      = "Geometry-axis derivatives..."
)

// DuplicateMarker is appended by AVL to the name of a YDUPLICATE'd surface.
const DuplicateMarker = "(YDUP)"

// IsComment reports whether the first non-indentation character is '!' or '#'.
func IsComment(line string) bool {
	s := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(s, "!") || strings.HasPrefix(s, "#")
}

// IsBlank reports whether the line holds only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// IsSeparator reports whether the line is a run of '-' characters.
func IsSeparator(line string) bool {
	s := strings.TrimSpace(line)
	return s != "" && strings.Trim(s, "-") == ""
}

// IsDuplicate reports whether name refers to a mirrored surface.
func IsDuplicate(name string) bool {
	return strings.Contains(name, DuplicateMarker)
}

// BaseName strips the duplicate marker from a surface name.
func BaseName(name string) string {
	return strings.TrimSpace(strings.ReplaceAll(name, DuplicateMarker, ""))
}

// fieldSpans returns the byte ranges of numeric and overflow fields in s.
// Digits glued to a letter (d1, Wing2, CLa2) are part of a word, not a field.
// The exponent letter belongs to the number and is consumed by the match itself.
func fieldSpans(s string) [][]int {
	all := FieldRe.FindAllStringIndex(s, -1)
	spans := all[:0]
	for _, m := range all {
		if m[0] > 0 && isWordByte(s[m[0]-1]) && s[m[0]] != '*' {
			continue
		}
		if m[1] < len(s) && isLetter(s[m[1]]) && s[m[1]-1] != '*' {
			continue
		}
		spans = append(spans, m)
	}
	return spans
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isWordByte(b byte) bool {
	return isLetter(b) || b == '_'
}
