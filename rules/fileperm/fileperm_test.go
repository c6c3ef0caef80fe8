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

package fileperm

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/wisplang/wisp/ast"
)

func call(args ...ast.Expr) *ast.Call {
	return &ast.Call{Func: &ast.Ident{Name: "chmod"}, Args: args}
}

func intLit(text string) *ast.Constant {
	return &ast.Constant{Kind: ast.ConstInt, IntText: text}
}

func TestFlagsWorldWritableOctal(t *testing.T) {
	c := call(&ast.Ident{Name: "path"}, intLit("0o777"))
	err := Check(c, true)
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.Equals(err.Code(), Code))
}

func TestAllowsOwnerOnlyMode(t *testing.T) {
	c := call(&ast.Ident{Name: "path"}, intLit("0o700"))
	err := Check(c, true)
	qt.Assert(t, qt.IsNil(err))
}

func TestIgnoresNonChmodCall(t *testing.T) {
	c := call(&ast.Ident{Name: "path"}, intLit("0o777"))
	err := Check(c, false)
	qt.Assert(t, qt.IsNil(err))
}

func TestResolvesStatAttributeValue(t *testing.T) {
	c := call(&ast.Ident{Name: "path"}, &ast.Attribute{Value: &ast.Ident{Name: "stat"}, Attr: "S_IWGRP"})
	err := Check(c, true)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestKeywordModeArgument(t *testing.T) {
	c := &ast.Call{
		Func: &ast.Ident{Name: "chmod"},
		Args: []ast.Expr{&ast.Ident{Name: "path"}},
		Keywords: []*ast.Keyword{
			{Name: "mode", Value: intLit("0o777")},
		},
	}
	err := Check(c, true)
	qt.Assert(t, qt.IsNotNil(err))
}
