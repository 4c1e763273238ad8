// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package host provides the editor-side operations around the docblock
// engine: locating the line to document, inserting the block and writing
// the result back to disk.
package host

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/petar-djukic/go-docblock/pkg/types"
)

// DefaultLookahead is how many lines past a blank line are searched for
// something to document.
const DefaultLookahead = 3

var (
	// ErrLineOutOfRange is returned when a requested line does not exist.
	ErrLineOutOfRange = errors.New("line out of range")

	// ErrBlankLines is returned when only blank lines were found within the
	// lookahead window, or the document ended first.
	ErrBlankLines = errors.New("no non-blank line to document")
)

// Line is one line of a document, without its terminator.
type Line struct {
	Number int    // 1-based line number
	Offset int    // Byte offset of the line start
	Text   string // Line content
}

// Blank reports whether the line holds only whitespace.
func (l Line) Blank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// Document is a text buffer split on its line ending.
type Document struct {
	Text       string
	LineEnding string
	lines      []Line
}

// NewDocument splits text into lines. An empty lineEnding is detected from
// the text.
func NewDocument(text, lineEnding string) *Document {
	if lineEnding == "" {
		lineEnding = DetectLineEnding(text)
	}
	return &Document{Text: text, LineEnding: lineEnding, lines: splitLines(text, lineEnding)}
}

// ReadDocument loads a document from path.
func ReadDocument(path, lineEnding string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return NewDocument(string(content), lineEnding), nil
}

// DetectLineEnding returns the first line ending found in text, or LF when
// the text has none.
func DetectLineEnding(text string) string {
	i := strings.IndexAny(text, "\r\n")
	switch {
	case i < 0:
		return types.LF
	case text[i] == '\n':
		return types.LF
	case i+1 < len(text) && text[i+1] == '\n':
		return types.CRLF
	default:
		return types.CR
	}
}

// Lines returns the document's lines. A trailing line ending does not start
// a new line.
func (d *Document) Lines() []Line {
	return d.lines
}

// LineAt returns line n (1-based).
func (d *Document) LineAt(n int) (Line, error) {
	if n < 1 || n > len(d.lines) {
		return Line{}, errors.Wrapf(ErrLineOutOfRange, "line %d of %d", n, len(d.lines))
	}
	return d.lines[n-1], nil
}

// FindSignature returns line n, or when it is blank, the first non-blank
// line among the next lookahead lines.
func (d *Document) FindSignature(n, lookahead int) (Line, error) {
	line, err := d.LineAt(n)
	if err != nil {
		return Line{}, err
	}

	for tries := lookahead; tries > 0 && line.Blank(); tries-- {
		if line.Number >= len(d.lines) {
			return Line{}, errors.Wrapf(ErrBlankLines, "end of document after line %d", line.Number)
		}
		line = d.lines[line.Number]
	}

	if line.Blank() {
		return Line{}, errors.Wrapf(ErrBlankLines, "lines %d-%d", n, line.Number)
	}
	return line, nil
}

// InsertBefore returns the document text with text inserted at the start
// of line, leaving the line itself untouched.
func (d *Document) InsertBefore(line Line, text string) string {
	return d.Text[:line.Offset] + text + d.Text[line.Offset:]
}

func splitLines(text, lineEnding string) []Line {
	if text == "" {
		return nil
	}

	parts := strings.Split(text, lineEnding)
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	lines := make([]Line, len(parts))
	offset := 0
	for i, p := range parts {
		lines[i] = Line{Number: i + 1, Offset: offset, Text: p}
		offset += len(p) + len(lineEnding)
	}
	return lines
}
