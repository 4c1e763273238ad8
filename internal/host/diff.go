// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package host

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffContext is the number of unchanged lines shown around a change.
const DiffContext = 3

// Diff renders a line diff of before and after. Unchanged runs longer than
// the context window are elided with "...".
func Diff(before, after string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var buf strings.Builder
	for i, d := range diffs {
		lines := splitKeepEnds(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			writeLines(&buf, "+ ", lines)
		case diffmatchpatch.DiffDelete:
			writeLines(&buf, "- ", lines)
		default:
			writeContext(&buf, lines, i > 0, i < len(diffs)-1)
		}
	}
	return buf.String()
}

// writeContext writes the lines of an unchanged run that border a change.
func writeContext(buf *strings.Builder, lines []string, afterChange, beforeChange bool) {
	var head, tail []string
	if afterChange {
		head = lines[:min(DiffContext, len(lines))]
	}
	if beforeChange {
		tail = lines[max(0, len(lines)-DiffContext):]
	}

	if len(head)+len(tail) >= len(lines) && afterChange && beforeChange {
		writeLines(buf, "  ", lines)
		return
	}

	writeLines(buf, "  ", head)
	if len(head)+len(tail) < len(lines) {
		buf.WriteString("...\n")
	}
	writeLines(buf, "  ", tail)
}

func writeLines(buf *strings.Builder, prefix string, lines []string) {
	for _, line := range lines {
		buf.WriteString(prefix)
		buf.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			buf.WriteByte('\n')
		}
	}
}

// splitKeepEnds splits s after each "\n", keeping the terminators.
func splitKeepEnds(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
