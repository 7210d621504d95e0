package parser

import (
	"regexp"
	"strings"
)

// LocateTable finds the table starting at the last header match before a terminator.
// The table ends at the first blank line after the header (exclusive) or at the end of lines.
// ok is false when the header never matches.
func LocateTable(lines []Line, header *regexp.Regexp) (start, end int, ok bool) {
	start = -1
	for i, l := range lines {
		if header.MatchString(l.Text) {
			start = i
			continue
		}
		if start >= 0 && IsBlank(l.Text) {
			return start, i, true
		}
	}
	if start < 0 {
		return 0, 0, false
	}
	return start, len(lines), true
}

// Block is a named run of lines.
type Block struct {
	Name  string
	Lines []Line
}

// SplitBlocks partitions lines into blocks starting at each marker match.
// The marker's first capture group names the block. An empty name takes the
// name from the next non-blank line. Lines before the first marker are dropped.
// Blocks are returned in file order; a repeated name replaces the earlier block.
func SplitBlocks(lines []Line, marker *regexp.Regexp) []Block {
	var blocks []Block
	index := make(map[string]int)
	current := -1
	pending := false

	open := func(name string, first Line) {
		if i, ok := index[name]; ok {
			blocks[i].Lines = []Line{first}
			current = i
			return
		}
		index[name] = len(blocks)
		current = len(blocks)
		blocks = append(blocks, Block{Name: name, Lines: []Line{first}})
	}

	for _, l := range lines {
		if m := marker.FindStringSubmatch(l.Text); m != nil {
			name := ""
			if len(m) > 1 {
				name = strings.TrimSpace(m[1])
			}
			if name == "" {
				pending = true
				continue
			}
			pending = false
			open(name, l)
			continue
		}
		switch {
		case pending:
			if IsBlank(l.Text) {
				continue
			}
			pending = false
			open(strings.TrimSpace(l.Text), l)
		case current >= 0:
			blocks[current].Lines = append(blocks[current].Lines, l)
		}
	}
	return blocks
}

// SplitHeader splits a header line on runs of two or more spaces.
// The row-label column is dropped when dropFirst is set.
func SplitHeader(line string, dropFirst bool) []string {
	var header []string
	for _, field := range HeaderSplitRe.Split(line, -1) {
		if field = strings.TrimSpace(field); field != "" {
			header = append(header, field)
		}
	}
	if dropFirst && len(header) > 0 {
		header = header[1:]
	}
	return header
}

// findTable locates a table in lines and returns its header line and body rows.
func findTable(lines []Line, header *regexp.Regexp) (Line, []Line, bool) {
	start, end, ok := LocateTable(lines, header)
	if !ok {
		return Line{}, nil, false
	}
	return lines[start], lines[start+1 : end], true
}
