// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"path/filepath"
	"strings"

	"github.com/petar-djukic/go-docblock/internal/php"
	"github.com/petar-djukic/go-docblock/pkg/types"
)

// Router maps a file extension hint to a generator. Whitelisted PHP
// extensions go to the PHP generator; everything else, including an empty
// hint, goes to the auto chain.
type Router struct {
	PHP  types.Generator // Generator for PHP extensions
	Auto types.Generator // Fallback for unknown extensions
}

// phpExtensions is the lower-cased PHP extension whitelist.
var phpExtensions = func() map[string]bool {
	m := make(map[string]bool, len(php.Extensions))
	for _, ext := range php.Extensions {
		m[ext] = true
	}
	return m
}()

// NewRouter returns a Router over the built-in generators.
func NewRouter() *Router {
	return &Router{PHP: php.New(), Auto: NewAuto()}
}

// GeneratorFor returns the generator for ext. The hint is matched without
// regard to case, with or without a leading dot.
func (r *Router) GeneratorFor(ext string) types.Generator {
	if IsPHP(ext) {
		return r.PHP
	}
	return r.Auto
}

// Generate documents signature with the generator selected by ext.
func (r *Router) Generate(signature, ext, lineEnding string) (string, bool) {
	return r.GeneratorFor(ext).Doc(signature, lineEnding)
}

// IsPHP reports whether ext is one of the PHP extension aliases.
func IsPHP(ext string) bool {
	return phpExtensions[normalizeExt(ext)]
}

// PHPExtensions returns the PHP extension aliases in declaration order.
func PHPExtensions() []string {
	return append([]string(nil), php.Extensions...)
}

// ExtensionOf returns the extension hint for a file path: the text after
// the last dot of the base name, or "" when there is none.
func ExtensionOf(path string) string {
	return normalizeExt(filepath.Ext(path))
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

// Generate documents signature using the built-in generators. It returns
// false when nothing could be generated.
func Generate(signature, ext, lineEnding string) (string, bool) {
	return defaultRouter.Generate(signature, ext, lineEnding)
}

var defaultRouter = NewRouter()
