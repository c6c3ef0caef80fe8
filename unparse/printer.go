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

package unparse

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/wisplang/wisp/ast"
)

// Unparser owns the mutable state of a single unparse job: an output
// buffer, the current indentation depth, a pending-newline counter, and the
// "has anything been written yet" flag that suppresses leading blank
// lines. One Unparser is created per job, written to in one pass, and
// drained exactly once.
type Unparser struct {
	style Style
	buf   bytes.Buffer

	depth   int
	pending int
	initial bool

	// nestExpr is not read or updated by any method in this package; it
	// never affects emitted text.
	nestExpr int
}

// New creates an Unparser seeded with the given style. It allocates nothing
// beyond an empty output buffer.
func New(style Style) *Unparser {
	return &Unparser{style: style.withDefaults(), initial: true}
}

// Generate drains the accumulated buffer. The signature is fallible only
// because the buffer could in principle contain invalid UTF-8; since every
// write routine in this package only ever appends valid UTF-8 (ASCII
// keywords, literal text already validated by the literal package, and
// identifier text copied verbatim from the AST), this never actually
// happens — the check exists defensively for callers.
func (u *Unparser) Generate() (string, error) {
	s := u.buf.String()
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("unparse: generated output is not valid UTF-8")
	}
	return s, nil
}

// -----------------------------------------------------------------------------
// Low-level write primitives.
//
// Every other method in this package funnels text through write, so the
// invariant that pending newlines are flushed before any non-whitespace
// character is written holds by construction: there is no other path to
// the buffer.

// write flushes any pending newlines, then appends s verbatim.
func (u *Unparser) write(s string) {
	u.flushPending()
	u.buf.WriteString(s)
	u.initial = false
}

// flushPending emits the queued line separators, honoring the initial
// flag: before the very first byte of output, any pending count is
// discarded rather than written, so the file never begins with a blank
// line.
func (u *Unparser) flushPending() {
	if u.initial {
		u.pending = 0
		return
	}
	for i := 0; i < u.pending; i++ {
		u.buf.WriteString(u.style.LineEnding)
	}
	u.pending = 0
}

// requestNewlines raises the pending separator count to at least n. Using
// max rather than assignment means a statement that demands two line
// separators can't be shrunk by a neighbor that only asked for one.
func (u *Unparser) requestNewlines(n int) {
	if n > u.pending {
		u.pending = n
	}
}

// beginLine flushes pending newlines and writes the current indentation.
// It does not itself request a newline; callers that want line separation
// before calling beginLine must requestNewlines first (UnparseStmt does
// this for every statement kind; clause keywords like "else:" do it
// inline — see newlineAndIndent).
func (u *Unparser) beginLine() {
	u.flushPending()
	u.buf.WriteString(strings.Repeat(u.style.IndentUnit, u.depth))
	u.initial = false
}

// newlineAndIndent is the one-line-separator version of beginLine, used
// for clause keywords (else, elif, except, finally) that are not
// themselves Stmt nodes and so never go through UnparseStmt.
func (u *Unparser) newlineAndIndent() {
	u.requestNewlines(1)
	u.beginLine()
}

func (u *Unparser) indent()   { u.depth++ }
func (u *Unparser) unindent() { u.depth-- }

// withIndent runs body with depth increased by one, then restores it —
// even on panic — preserving invariant 2 ("indentation depth returns to
// its entry value on exit from every statement method").
func (u *Unparser) withIndent(body func()) {
	u.indent()
	defer u.unindent()
	body()
}

// blockRequirement reports the line-separator minimum a statement kind
// imposes on both sides of itself: function/class definitions want two
// separators (one blank line) between top-level siblings and one when
// nested, and everything else just wants to start on its own line.
func blockRequirement(stmt ast.Stmt, depth int) int {
	switch stmt.(type) {
	case *ast.FunctionDef, *ast.ClassDef:
		if depth == 0 {
			return 2
		}
		return 1
	}
	return 1
}
