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

package getattrconst

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/unparse"
)

func strConst(v string) *ast.Constant {
	return &ast.Constant{Kind: ast.ConstString, StringValue: v}
}

func TestFlagsConstantIdentifierName(t *testing.T) {
	call := &ast.Call{
		Func: &ast.Ident{Name: "getattr"},
		Args: []ast.Expr{&ast.Ident{Name: "x"}, strConst("const")},
	}
	err := Check(call, unparse.DefaultStyle)
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.Equals(err.Code(), Code))
	qt.Assert(t, qt.IsNotNil(err.Fix()))
	qt.Assert(t, qt.Equals(err.Fix().Text, "x.const"))
}

func TestIgnoresNonIdentifierName(t *testing.T) {
	call := &ast.Call{
		Func: &ast.Ident{Name: "getattr"},
		Args: []ast.Expr{&ast.Ident{Name: "x"}, strConst("not an ident")},
	}
	err := Check(call, unparse.DefaultStyle)
	qt.Assert(t, qt.IsNil(err))
}

func TestIgnoresReservedKeyword(t *testing.T) {
	call := &ast.Call{
		Func: &ast.Ident{Name: "getattr"},
		Args: []ast.Expr{&ast.Ident{Name: "x"}, strConst("class")},
	}
	err := Check(call, unparse.DefaultStyle)
	qt.Assert(t, qt.IsNil(err))
}

func TestIgnoresThreeArgForm(t *testing.T) {
	call := &ast.Call{
		Func: &ast.Ident{Name: "getattr"},
		Args: []ast.Expr{&ast.Ident{Name: "x"}, strConst("const"), &ast.Constant{Kind: ast.ConstNone}},
	}
	err := Check(call, unparse.DefaultStyle)
	qt.Assert(t, qt.IsNil(err))
}

func TestIgnoresNonGetattrCall(t *testing.T) {
	call := &ast.Call{
		Func: &ast.Ident{Name: "setattr"},
		Args: []ast.Expr{&ast.Ident{Name: "x"}, strConst("const")},
	}
	err := Check(call, unparse.DefaultStyle)
	qt.Assert(t, qt.IsNil(err))
}
