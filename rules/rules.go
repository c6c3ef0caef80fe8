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

// Package rules dispatches a statement tree through the illustrative lint
// plugins in its subpackages, gated by a config.Config's enabled-code set.
// It owns the tree walk so each plugin package can stay a pure function
// from one matched node to an optional diagnostic.
package rules

import (
	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/diagnostics"
	"github.com/wisplang/wisp/rules/builtinimport"
	"github.com/wisplang/wisp/rules/fileperm"
	"github.com/wisplang/wisp/rules/getattrconst"
	"github.com/wisplang/wisp/rules/lambdatodef"
	"github.com/wisplang/wisp/rules/litcmp"
	"github.com/wisplang/wisp/rules/nativelit"
	"github.com/wisplang/wisp/unparse"
)

// Enabler reports whether a rule code should run. *config.Config satisfies
// this; it is spelled out as its own interface here so this package never
// has to import config (which has no reason to know about rules).
type Enabler interface {
	Enabled(code string) bool
}

// Run walks stmts and returns every diagnostic produced by an enabled
// rule, in tree-walk order.
func Run(stmts []ast.Stmt, style unparse.Style, en Enabler) []diagnostics.Error {
	var out []diagnostics.Error
	visit := func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.Call:
			if en.Enabled(getattrconst.Code) {
				if d := getattrconst.Check(v, style); d != nil {
					out = append(out, d)
				}
			}
			if en.Enabled(fileperm.Code) {
				if d := fileperm.Check(v, isOSChmod(v.Func)); d != nil {
					out = append(out, d)
				}
			}
			if en.Enabled(nativelit.Code) {
				if d := nativelit.Check(v, style); d != nil {
					out = append(out, d)
				}
			}
		case *ast.Compare:
			if en.Enabled(litcmp.Code) {
				if d := litcmp.Check(v, style); d != nil {
					out = append(out, d)
				}
			}
		case *ast.Assign:
			if en.Enabled(lambdatodef.Code) {
				if d := lambdatodef.Check(v, style); d != nil {
					out = append(out, d)
				}
			}
		case *ast.ImportFromStmt:
			if en.Enabled(builtinimport.Code) {
				if d := builtinimport.Check(v); d != nil {
					out = append(out, d)
				}
			}
		}
		return true
	}
	for _, s := range stmts {
		Walk(s, visit)
	}
	return out
}

// isOSChmod approximates "is this call os.chmod(...)" by shape alone: the
// rule set doesn't track import aliases (that's a full binder's job, out
// of scope here), so it accepts either spelling a source file commonly
// uses after "import os" or "from os import chmod".
func isOSChmod(fn ast.Expr) bool {
	switch v := fn.(type) {
	case *ast.Attribute:
		base, ok := v.Value.(*ast.Ident)
		return ok && base.Name == "os" && v.Attr == "chmod"
	case *ast.Ident:
		return v.Name == "chmod"
	}
	return false
}
