// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package php

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/go-docblock/pkg/types"
)

func TestGenerator_Doc(t *testing.T) {
	tests := []struct {
		name      string
		signature string
		want      string
	}{
		{
			name:      "function with defaulted param",
			signature: "function foo($bar, $baz = true)",
			want: "/**\n" +
				" * foo function.\n" +
				" * \n" +
				" * @access public\n" +
				" * @param mixed $bar\n" +
				" * @param bool $baz (default: true)\n" +
				" * @return void\n" +
				" */\n",
		},
		{
			name:      "method with modifiers and no params",
			signature: "    public static function _Tbar() {",
			want: "    /**\n" +
				"     * _Tbar function.\n" +
				"     * \n" +
				"     * @access public\n" +
				"     * @static\n" +
				"     * @return void\n" +
				"     */\n",
		},
		{
			name:      "access guessed from underscore prefix",
			signature: "\tfunction _helper($x = 'a');",
			want: "\t/**\n" +
				"\t * _helper function.\n" +
				"\t * \n" +
				"\t * @access private\n" +
				"\t * @param string $x (default: 'a')\n" +
				"\t * @return void\n" +
				"\t */\n",
		},
		{
			name:      "class extends",
			signature: "class Foo extends Bar",
			want: "/**\n" +
				" * Foo class.\n" +
				" * \n" +
				" * @extends Bar\n" +
				" */\n",
		},
		{
			name:      "abstract class implements several interfaces",
			signature: "abstract class Foo implements Bar, Baz {",
			want: "/**\n" +
				" * Abstract Foo class.\n" +
				" * \n" +
				" * @abstract\n" +
				" * @implements Bar\n" +
				" * @implements Baz\n" +
				" */\n",
		},
		{
			name:      "interface extends",
			signature: "interface Countable extends Traversable",
			want: "/**\n" +
				" * Countable interface.\n" +
				" * \n" +
				" * @extends Traversable\n" +
				" */\n",
		},
		{
			name:      "member variable with default",
			signature: "    protected $_name = 'foo';",
			want: "    /**\n" +
				"     * _name\n" +
				"     * \n" +
				"     * (default value: 'foo')\n" +
				"     * \n" +
				"     * @var string\n" +
				"     * @access protected\n" +
				"     */\n",
		},
		{
			name:      "var without default",
			signature: "var $_count;",
			want: "/**\n" +
				" * _count\n" +
				" * \n" +
				" * @var mixed\n" +
				" * @access private\n" +
				" */\n",
		},
	}

	g := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.Doc(tt.signature, types.LF)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerator_DocNoMatch(t *testing.T) {
	g := New()
	for _, sig := range []string{"", "   ", "def foo(bar):", "int main(void) {", "// just a comment"} {
		_, ok := g.Doc(sig, types.LF)
		assert.False(t, ok, "signature %q", sig)
	}
}

func TestGenerator_FunctionInvariants(t *testing.T) {
	signatures := []string{
		"function foo()",
		"function foo($a)",
		"function &ref($a, $b = 2, $c = 4.5)",
		"abstract protected function build(array $opts = array());",
		"final public static function __construct($x = \"y\") { return; }",
		"private function broken($a, )",
	}

	g := New()
	for _, sig := range signatures {
		t.Run(sig, func(t *testing.T) {
			got, ok := g.Doc(sig, types.LF)
			require.True(t, ok)
			assert.Equal(t, 1, strings.Count(got, "@return void\n"))
			assert.NotRegexp(t, `%[a-zA-Z_]+%`, got)
			assert.Equal(t, ConstructFunction, g.Construct(sig))
		})
	}
}

func TestGenerator_MalformedParamsOmitted(t *testing.T) {
	got, ok := New().Doc("function foo($a, , $b)", types.LF)
	require.True(t, ok)
	assert.NotContains(t, got, "@param")
	assert.Contains(t, got, " * @access public\n * @return void\n")
}

func TestGenerator_ParamsSplitOnEveryComma(t *testing.T) {
	got, ok := New().Doc("function foo($a = array(1, 2))", types.LF)
	require.True(t, ok)
	assert.Contains(t, got, "@param array $a (default: array(1)\n")
	assert.Contains(t, got, "@param mixed 2)\n")
}

func TestGenerator_PlaceholderTextInValueIsStripped(t *testing.T) {
	got, ok := New().Doc("function f($a = '%name%')", types.LF)
	require.True(t, ok)
	assert.Contains(t, got, " * @param string $a (default: '')\n")
	assert.Contains(t, got, " * f function.\n")
}

func TestGenerator_LineEnding(t *testing.T) {
	g := New()

	got, ok := g.Doc("function foo($a, $b)", types.CRLF)
	require.True(t, ok)
	assert.Equal(t, "/**\r\n"+
		" * foo function.\r\n"+
		" * \r\n"+
		" * @access public\r\n"+
		" * @param mixed $a\r\n"+
		" * @param mixed $b\r\n"+
		" * @return void\r\n"+
		" */\r\n", got)

	// The per-call line ending does not leak into later calls.
	got, ok = g.Doc("function foo($a, $b)", types.LF)
	require.True(t, ok)
	assert.NotContains(t, got, "\r")
}

func TestGenerator_Construct(t *testing.T) {
	g := New()
	assert.Equal(t, ConstructClass, g.Construct("final class Foo"))
	assert.Equal(t, ConstructInterface, g.Construct("interface Foo"))
	assert.Equal(t, ConstructMemberVariable, g.Construct("public $foo;"))
	assert.Equal(t, "", g.Construct("def foo():"))
}

func TestGuessAccess(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"_foo", "private"},
		{"_Tfoo", "protected"},
		{"__foo", "public"},
		{"__construct", "public"},
		{"foo", "public"},
		{"", "public"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GuessAccess(tt.name))
		})
	}
}

func TestGuessType(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{`"x"`, "string"},
		{`'x'`, "string"},
		{`'true'`, "string"},
		{"array(1,2)", "array"},
		{"true", "bool"},
		{"FALSE || false", "bool"},
		{"istrue", "bool"},
		{"42", "int"},
		{"4.2", "float"},
		{"-1", "float"},
		{"1e3", "float"},
		{"", "mixed"},
		{"null", "mixed"},
		{"SOME_CONST", "mixed"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, GuessType(tt.value))
		})
	}
}
