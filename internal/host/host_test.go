// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package host

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/go-docblock/pkg/types"
)

func TestDetectLineEnding(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"lf", "a\nb", types.LF},
		{"crlf", "a\r\nb\r\n", types.CRLF},
		{"cr", "a\rb", types.CR},
		{"trailing cr", "a\r", types.CR},
		{"none", "abc", types.LF},
		{"empty", "", types.LF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLineEnding(tt.text))
		})
	}
}

func TestDocument_Lines(t *testing.T) {
	doc := NewDocument("<?php\r\n\r\nfunction foo()\r\n", "")
	assert.Equal(t, types.CRLF, doc.LineEnding)

	lines := doc.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, Line{Number: 1, Offset: 0, Text: "<?php"}, lines[0])
	assert.Equal(t, Line{Number: 2, Offset: 7, Text: ""}, lines[1])
	assert.Equal(t, Line{Number: 3, Offset: 9, Text: "function foo()"}, lines[2])

	assert.Empty(t, NewDocument("", "").Lines())
}

func TestDocument_LineAt(t *testing.T) {
	doc := NewDocument("one\ntwo", "")

	line, err := doc.LineAt(2)
	require.NoError(t, err)
	assert.Equal(t, "two", line.Text)

	for _, n := range []int{0, 3, -1} {
		_, err := doc.LineAt(n)
		assert.True(t, errors.Is(err, ErrLineOutOfRange), "line %d", n)
	}
}

func TestDocument_FindSignature(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		line      int
		lookahead int
		wantLine  int
		wantErr   error
	}{
		{
			name:      "non-blank line is used as is",
			text:      "<?php\nfunction foo()\n",
			line:      2,
			lookahead: 3,
			wantLine:  2,
		},
		{
			name:      "skips blank lines",
			text:      "<?php\n\n   \nfunction foo()\n",
			line:      2,
			lookahead: 3,
			wantLine:  4,
		},
		{
			name:      "lookahead exhausted",
			text:      "\n\n\n\n\nfunction foo()\n",
			line:      1,
			lookahead: 3,
			wantErr:   ErrBlankLines,
		},
		{
			name:      "end of document",
			text:      "function foo()\n\n",
			line:      2,
			lookahead: 3,
			wantErr:   ErrBlankLines,
		},
		{
			name:      "no lookahead",
			text:      "\nfunction foo()\n",
			line:      1,
			lookahead: 0,
			wantErr:   ErrBlankLines,
		},
		{
			name:      "out of range",
			text:      "function foo()\n",
			line:      5,
			lookahead: 3,
			wantErr:   ErrLineOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := NewDocument(tt.text, "").FindSignature(tt.line, tt.lookahead)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLine, line.Number)
		})
	}
}

func TestDocument_InsertBefore(t *testing.T) {
	doc := NewDocument("<?php\nfunction foo()\n", "")
	line, err := doc.LineAt(2)
	require.NoError(t, err)

	got := doc.InsertBefore(line, "/** doc */\n")
	assert.Equal(t, "<?php\n/** doc */\nfunction foo()\n", got)
	assert.Equal(t, "<?php\nfunction foo()\n", doc.Text)
}

func TestExtractInsertionPoint(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantIP InsertionPoint
		wantOK bool
	}{
		{
			name:   "selection",
			text:   "a$$IP$$bc$$d",
			want:   "abcd",
			wantIP: InsertionPoint{Offset: 1, Length: 2},
			wantOK: true,
		},
		{
			name:   "missing end token",
			text:   "ab$$IP$$cd",
			want:   "abcd",
			wantIP: InsertionPoint{Offset: 2},
			wantOK: true,
		},
		{
			name:   "empty selection",
			text:   "$$IP$$$$abc",
			want:   "abc",
			wantIP: InsertionPoint{Offset: 0},
			wantOK: true,
		},
		{
			name: "no marker",
			text: "/**\n * foo\n */\n",
			want: "/**\n * foo\n */\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ip, ok := ExtractInsertionPoint(tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantIP, ip)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foo.php")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	require.NoError(t, WriteFile(path, []byte("new")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestReadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foo.php")
	require.NoError(t, os.WriteFile(path, []byte("a\r\nb\r\n"), 0o644))

	doc, err := ReadDocument(path, "")
	require.NoError(t, err)
	assert.Equal(t, types.CRLF, doc.LineEnding)
	assert.Len(t, doc.Lines(), 2)

	_, err = ReadDocument(filepath.Join(t.TempDir(), "missing.php"), "")
	assert.Error(t, err)
}

func TestDiff(t *testing.T) {
	assert.Equal(t, "", Diff("same\n", "same\n"))

	got := Diff("a\nb\n", "a\nX\nb\n")
	assert.Equal(t, "  a\n+ X\n  b\n", got)
}

func TestDiff_ElidesDistantContext(t *testing.T) {
	var before []string
	for i := 1; i <= 10; i++ {
		before = append(before, fmt.Sprintf("line%02d\n", i))
	}
	after := append(append(append([]string{}, before[:5]...), "inserted\n"), before[5:]...)

	got := Diff(strings.Join(before, ""), strings.Join(after, ""))
	assert.Contains(t, got, "+ inserted\n")
	assert.Contains(t, got, "  line05\n+ inserted\n  line06\n")
	assert.NotContains(t, got, "line01")
	assert.NotContains(t, got, "line10")
	assert.Equal(t, 2, strings.Count(got, "...\n"))
}
