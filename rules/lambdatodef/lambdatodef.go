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

// Package lambdatodef flags an assignment of a bare lambda to a single
// name, at any nesting level, e.g. "f = lambda x: x + 1": the lambda carries
// no identity or __name__ of its own, and a "def" block is both debuggable
// and extensible with a body, so the idiomatic rewrite synthesizes an
// equivalent FunctionDef.
package lambdatodef

import (
	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/diagnostics"
	"github.com/wisplang/wisp/unparse"
)

// Code is the diagnostic code reported for a flagged assignment.
const Code = "WISP301"

// Check reports a diagnostic when assign is "name = lambda ...: expr",
// with a Fix replacing the whole statement with the equivalent
// "def name(...):\n    return expr".
func Check(assign *ast.Assign, style unparse.Style) diagnostics.Error {
	if len(assign.Targets) != 1 {
		return nil
	}
	name, ok := assign.Targets[0].(*ast.Ident)
	if !ok {
		return nil
	}
	lam, ok := assign.Value.(*ast.Lambda)
	if !ok {
		return nil
	}

	replacement := &ast.FunctionDef{
		Name: name,
		Args: lam.Args,
		Body: []ast.Stmt{&ast.Return{Value: lam.Body}},
	}
	u := unparse.New(style)
	u.UnparseStmt(replacement)
	text, err := u.Generate()
	var fix *diagnostics.Fix
	if err == nil {
		fix = diagnostics.NewFix(assign.Pos(), assign.End(), text)
	}

	return diagnostics.NewfCode(assign.Pos(), Code, fix,
		"assigning a lambda to %q can be rewritten as a def", name.Name)
}
