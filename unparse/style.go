// Copyright 2018 The CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package unparse turns wisp AST nodes back into source text. It is the
// hard core of this repository — the parser, lint rules, diagnostic
// dispatch, and style detection are all external collaborators that either
// feed it AST nodes or consume the text it produces.
package unparse

// Style carries the immutable formatting preferences for one unparse job:
// indentation width, quote preference, and line-ending spelling. A Style
// value is borrowed by every Unparser created with it and never mutated.
type Style struct {
	// IndentUnit is repeated once per nesting level. Must be non-empty.
	IndentUnit string
	// Quote is the preferred string-literal quote character, '\'' or '"'.
	Quote byte
	// LineEnding is one of "\n", "\r\n", or "\r".
	LineEnding string
}

// DefaultStyle is the conventional default: four-space indent, double
// quotes, Unix line endings.
var DefaultStyle = Style{
	IndentUnit: "    ",
	Quote:      '"',
	LineEnding: "\n",
}

// withDefaults fills in any zero field of s from DefaultStyle. Callers that
// construct a Style by hand (e.g. reading only a detected indent width)
// don't have to know the full default triple.
func (s Style) withDefaults() Style {
	if s.IndentUnit == "" {
		s.IndentUnit = DefaultStyle.IndentUnit
	}
	if s.Quote == 0 {
		s.Quote = DefaultStyle.Quote
	}
	if s.LineEnding == "" {
		s.LineEnding = DefaultStyle.LineEnding
	}
	return s
}
