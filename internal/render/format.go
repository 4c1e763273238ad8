// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"strings"

	"github.com/petar-djukic/go-docblock/pkg/types"
)

// Format decorates body with the configured comment delimiters, indents
// every line with whitespace and terminates the block with one line ending.
//
// Field transforms join multi-line values with the configured line ending,
// so the body is split on that ending as well as on "\n".
func Format(body, whitespace string, cfg types.Config) string {
	eol := cfg.EOL()

	var lines []string
	if cfg.Prefix != "" {
		lines = append(lines, cfg.Prefix)
	}
	for _, line := range splitBody(body, eol) {
		lines = append(lines, cfg.Infix+line)
	}
	if cfg.Suffix != "" {
		lines = append(lines, cfg.Suffix)
	}

	for i, line := range lines {
		lines[i] = whitespace + line
	}
	return strings.Join(lines, eol) + eol
}

func splitBody(body, eol string) []string {
	if eol != types.LF {
		body = strings.ReplaceAll(body, eol, types.LF)
	}
	body = strings.TrimRight(body, types.LF)
	return strings.Split(body, types.LF)
}
