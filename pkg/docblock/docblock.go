// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package docblock generates documentation comments from a single line of
// source code. It picks a language generator from a file extension, or
// tries every known generator when the language is unknown.
package docblock

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/petar-djukic/go-docblock/internal/host"
)

// LangAuto selects the generator from the file extension.
const LangAuto = "auto"

// Errors returned by the Documenter.
var (
	ErrInvalidConfig = errors.New("invalid config")

	// ErrNothingGenerated means no generator recognised the line. The
	// document must be left untouched.
	ErrNothingGenerated = errors.New("nothing to document")

	ErrLineOutOfRange = host.ErrLineOutOfRange
	ErrBlankLines     = host.ErrBlankLines
)

// Config configures a Documenter. It is copied by New and not read again.
type Config struct {
	Lang       string             // "auto" (default) or an extension alias such as "php"
	LineEnding string             // "auto" (default), "lf", "crlf" or "cr"
	Lookahead  int                // Lines searched past a blank line (default 3)
	Logger     *zap.SugaredLogger // Debug logging (default no-op)
}

// Edit describes a docblock insertion into a file.
type Edit struct {
	Path      string              // File the block belongs to
	Line      int                 // 1-based line the block documents
	Offset    int                 // Byte offset the block is inserted at
	Generator string              // Name of the generator that produced the block
	Block     string              // Inserted text, markers removed
	Cursor    host.InsertionPoint // Selection after insertion, relative to Offset
	HasCursor bool                // True when the block carried a cursor marker
	Before    string              // Document text before the edit
	After     string              // Document text after the edit
}

// Diff renders the edit as a line diff.
func (e *Edit) Diff() string {
	return host.Diff(e.Before, e.After)
}

// Apply writes the edited document back to Path.
func (e *Edit) Apply() error {
	if err := host.WriteFile(e.Path, []byte(e.After)); err != nil {
		return errors.Wrapf(err, "writing %s", e.Path)
	}
	return nil
}
