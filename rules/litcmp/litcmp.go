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

// Package litcmp flags comparisons of the shape "x == []" / "x == {}" /
// "x == ()" (and their negations): comparing against an empty container
// literal by equality instead of by length or truthiness is almost always
// a readability smell, and for falsy-only checks it can be rewritten to a
// boolean-context test that is both faster and clearer.
package litcmp

import (
	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/diagnostics"
	"github.com/wisplang/wisp/token"
	"github.com/wisplang/wisp/unparse"
)

// Code is the diagnostic code reported for a flagged comparison.
const Code = "WISP203"

// Check reports a diagnostic when cmp is a two-operand "==" or "!="
// comparison against an empty list, tuple, dict, or set literal, with a
// Fix that rewrites it to the equivalent truthiness test.
func Check(cmp *ast.Compare, style unparse.Style) diagnostics.Error {
	if len(cmp.Ops) != 1 {
		return nil
	}
	op := cmp.Ops[0]
	if op != token.EQL && op != token.NEQ {
		return nil
	}
	right := cmp.Comparators[0]
	if !isEmptyLiteral(right) {
		return nil
	}

	replacement := cmp.Left
	if op == token.EQL {
		replacement = &ast.UnaryOp{Op: token.NOT, Operand: cmp.Left}
	}
	u := unparse.New(style)
	u.UnparseExpr(replacement)
	text, err := u.Generate()
	var fix *diagnostics.Fix
	if err == nil {
		fix = diagnostics.NewFix(cmp.Pos(), cmp.End(), text)
	}

	verb := "is always false"
	if op == token.NEQ {
		verb = "is always true unless the container is non-empty"
	}
	return diagnostics.NewfCode(cmp.Pos(), Code, fix,
		"comparison against an empty literal %s; use truthiness instead", verb)
}

// isEmptyLiteral reports whether e is a literal list/tuple/dict/set
// display with no elements.
func isEmptyLiteral(e ast.Expr) bool {
	switch v := e.(type) {
	case *ast.List:
		return len(v.Elts) == 0
	case *ast.Tuple:
		return len(v.Elts) == 0
	case *ast.SetExpr:
		// A literal "set()" call, not a display, always arrives as a Call
		// elsewhere; an empty SetExpr node models "{}" pre-disambiguation
		// only if a caller constructs one directly, so this case is kept
		// for completeness even though the unparser never emits it bare.
		return len(v.Elts) == 0
	case *ast.DictExpr:
		return len(v.Keys) == 0 && len(v.Values) == 0
	}
	return false
}
