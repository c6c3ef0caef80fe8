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

package rules

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/rules/getattrconst"
	"github.com/wisplang/wisp/unparse"
)

type allEnabled struct{}

func (allEnabled) Enabled(string) bool { return true }

type noneEnabled struct{}

func (noneEnabled) Enabled(string) bool { return false }

func TestWalkVisitsNestedCalls(t *testing.T) {
	stmt := &ast.ExprStmt{
		Value: &ast.Call{
			Func: &ast.Ident{Name: "print"},
			Args: []ast.Expr{
				&ast.Call{Func: &ast.Ident{Name: "getattr"}},
			},
		},
	}
	var calls int
	Walk(stmt, func(n ast.Node) bool {
		if _, ok := n.(*ast.Call); ok {
			calls++
		}
		return true
	})
	qt.Assert(t, qt.Equals(calls, 2))
}

func TestRunFindsGetattrConstDiagnostic(t *testing.T) {
	stmts := []ast.Stmt{
		&ast.ExprStmt{Value: &ast.Call{
			Func: &ast.Ident{Name: "getattr"},
			Args: []ast.Expr{&ast.Ident{Name: "x"}, &ast.Constant{Kind: ast.ConstString, StringValue: "const"}},
		}},
	}
	out := Run(stmts, unparse.DefaultStyle, allEnabled{})
	qt.Assert(t, qt.HasLen(out, 1))
	qt.Assert(t, qt.Equals(out[0].Code(), getattrconst.Code))
}

func TestRunRespectsDisabledRules(t *testing.T) {
	stmts := []ast.Stmt{
		&ast.ExprStmt{Value: &ast.Call{
			Func: &ast.Ident{Name: "getattr"},
			Args: []ast.Expr{&ast.Ident{Name: "x"}, &ast.Constant{Kind: ast.ConstString, StringValue: "const"}},
		}},
	}
	out := Run(stmts, unparse.DefaultStyle, noneEnabled{})
	qt.Assert(t, qt.HasLen(out, 0))
}

func TestRunMatchesOSChmodAttributeForm(t *testing.T) {
	stmts := []ast.Stmt{
		&ast.ExprStmt{Value: &ast.Call{
			Func: &ast.Attribute{Value: &ast.Ident{Name: "os"}, Attr: "chmod"},
			Args: []ast.Expr{
				&ast.Ident{Name: "path"},
				&ast.Constant{Kind: ast.ConstInt, IntText: "0o777"},
			},
		}},
	}
	out := Run(stmts, unparse.DefaultStyle, allEnabled{})
	var sawFileperm bool
	for _, d := range out {
		if d.Code() == "WISP103" {
			sawFileperm = true
		}
	}
	qt.Assert(t, qt.IsTrue(sawFileperm))
}
