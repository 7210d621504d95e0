package parser

import (
	"strings"

	"github.com/aerotools/avlout/pkg/avlout/models"
	"go.uber.org/zap"
)

// Strictness controls how a table extractor treats rows with fewer values than header columns.
type Strictness string

const (
	// Strict rejects short rows with a MalformedTableError.
	Strict Strictness = "strict"
	// Lenient pads short rows with NaN and records a warning.
	Lenient Strictness = "lenient"
)

// Line is one line of an output file with its 1-based line number.
type Line struct {
	No   int
	Text string
}

// Doc holds the lines of one output file and the state of a single parse.
// A Doc must not be shared between parses.
type Doc struct {
	// File is the file name used in errors and warnings.
	File string
	// Format is the extension the file is parsed as.
	Format string
	// Lines holds the file content.
	Lines []Line
	// Strictness applies to every table of the file.
	Strictness Strictness
	// Warnings collects the warnings raised during the parse.
	Warnings []models.Warning

	logger *zap.Logger
	warned map[models.WarningKind]bool
}

// NewDoc splits content into lines and prepares the parse state.
// A nil logger discards log output.
func NewDoc(file, format, content string, strictness Strictness, logger *zap.Logger) *Doc {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strictness == "" {
		strictness = Strict
	}
	return &Doc{
		File:       file,
		Format:     format,
		Lines:      SplitLines(content),
		Strictness: strictness,
		logger:     logger,
		warned:     make(map[models.WarningKind]bool),
	}
}

// SplitLines splits text into numbered lines, dropping CR line endings.
func SplitLines(content string) []Line {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	raw := strings.Split(content, "\n")
	lines := make([]Line, len(raw))
	for i, text := range raw {
		lines[i] = Line{No: i + 1, Text: strings.TrimSuffix(text, "\r")}
	}
	return lines
}

// Texts returns the text of each line.
func Texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

// Warn records a warning of the given kind. Only the first warning of each kind is kept per Doc.
func (d *Doc) Warn(kind models.WarningKind, line Line, message string) {
	if d.warned[kind] {
		return
	}
	d.warned[kind] = true
	d.Warnings = append(d.Warnings, models.Warning{
		Kind:    kind,
		Line:    line.No,
		Text:    line.Text,
		Message: message,
	})
	d.logger.Warn(message,
		zap.String("file", d.File),
		zap.String("kind", string(kind)),
		zap.Int("line", line.No),
		zap.String("text", line.Text))
}
