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

// Package nativelit flags redundant native-literal constructor calls —
// "list()", "dict()", "tuple()" with no arguments, or a single
// already-literal argument — in favor of the equivalent display syntax:
// "[]", "{}", "()". The constructor call form exists for dynamic
// construction from an arbitrary iterable; called with nothing, or with an
// argument that is already the target shape, it is pure overhead.
package nativelit

import (
	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/diagnostics"
	"github.com/wisplang/wisp/unparse"
)

// Code is the diagnostic code reported for a flagged call.
const Code = "WISP302"

// Check reports a diagnostic when call is a no-argument or
// already-literal-argument list()/dict()/tuple() construction, with a Fix
// rewriting it to the equivalent display.
func Check(call *ast.Call, style unparse.Style) diagnostics.Error {
	if len(call.Keywords) != 0 || len(call.Args) > 1 {
		return nil
	}
	fn, ok := call.Func.(*ast.Ident)
	if !ok {
		return nil
	}

	var replacement ast.Expr
	switch fn.Name {
	case "list":
		replacement = listReplacement(call)
	case "dict":
		replacement = dictReplacement(call)
	case "tuple":
		replacement = tupleReplacement(call)
	default:
		return nil
	}
	if replacement == nil {
		return nil
	}

	u := unparse.New(style)
	u.UnparseExpr(replacement)
	text, err := u.Generate()
	var fix *diagnostics.Fix
	if err == nil {
		fix = diagnostics.NewFix(call.Pos(), call.End(), text)
	}

	return diagnostics.NewfCode(call.Pos(), Code, fix,
		"%s() can be rewritten as a literal", fn.Name)
}

func listReplacement(call *ast.Call) ast.Expr {
	if len(call.Args) == 0 {
		return &ast.List{}
	}
	if lit, ok := call.Args[0].(*ast.List); ok {
		return lit
	}
	return nil
}

func dictReplacement(call *ast.Call) ast.Expr {
	if len(call.Args) == 0 {
		return &ast.DictExpr{}
	}
	if lit, ok := call.Args[0].(*ast.DictExpr); ok {
		return lit
	}
	return nil
}

func tupleReplacement(call *ast.Call) ast.Expr {
	if len(call.Args) == 0 {
		return &ast.Tuple{}
	}
	if lit, ok := call.Args[0].(*ast.Tuple); ok {
		return lit
	}
	return nil
}
