// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package host

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	ipStart = "$$IP$$"
	ipEnd   = "$$"
)

// InsertionPoint is the cursor selection to apply after inserting text,
// relative to the start of the inserted text.
type InsertionPoint struct {
	Offset int
	Length int
}

// ExtractInsertionPoint removes the first "$$IP$$ ... $$" marker from text.
// The enclosed text stays in place and becomes the selection. Without a
// closing "$$" the selection is empty. ok is false when text has no marker.
func ExtractInsertionPoint(text string) (clean string, ip InsertionPoint, ok bool) {
	start := strings.Index(text, ipStart)
	if start < 0 {
		return text, InsertionPoint{}, false
	}

	text = text[:start] + text[start+len(ipStart):]
	end := strings.Index(text[start:], ipEnd)
	if end < 0 {
		return text, InsertionPoint{Offset: start}, true
	}

	text = text[:start+end] + text[start+end+len(ipEnd):]
	return text, InsertionPoint{Offset: start, Length: end}, true
}

// WriteFile replaces path's content atomically, keeping its permissions.
func WriteFile(path string, data []byte) error {
	return atomicWrite(path, data)
}

// atomicWrite writes data to a temp file in the same directory, then renames
// it to the target path so readers never see a partial file.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)

	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	f, err := os.CreateTemp(dir, ".docblock-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpPath := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return errors.Wrap(err, "writing temp file")
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "closing temp file")
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "setting permissions")
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "renaming temp file to %s", path)
	}

	return nil
}
