package models

// WarningKind classifies a recovered data-quality issue.
type WarningKind string

const (
	// WarningOverflow marks a field printed as a run of asterisks, decoded as NaN.
	WarningOverflow WarningKind = "overflow_value"
	// WarningShortRow marks a row with fewer values than header columns, padded with NaN.
	WarningShortRow WarningKind = "short_row"
	// WarningUnknownFormat marks a file whose extension has no extractor.
	WarningUnknownFormat WarningKind = "unknown_format"
)

// Warning is a data-quality issue that was recovered locally.
type Warning struct {
	// Kind is the warning class.
	Kind WarningKind `json:"kind"`
	// Line is the 1-based line number, 0 when not tied to a line.
	Line int `json:"line,omitempty"`
	// Text is the offending raw line, if any.
	Text string `json:"text,omitempty"`
	// Message is a human readable description.
	Message string `json:"message"`
}
