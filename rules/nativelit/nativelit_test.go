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

package nativelit

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/unparse"
)

func callTo(name string, args ...ast.Expr) *ast.Call {
	return &ast.Call{Func: &ast.Ident{Name: name}, Args: args}
}

func TestEmptyListCallBecomesDisplay(t *testing.T) {
	err := Check(callTo("list"), unparse.DefaultStyle)
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.Equals(err.Fix().Text, "[]"))
}

func TestEmptyDictCallBecomesDisplay(t *testing.T) {
	err := Check(callTo("dict"), unparse.DefaultStyle)
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.Equals(err.Fix().Text, "{}"))
}

func TestEmptyTupleCallBecomesDisplay(t *testing.T) {
	err := Check(callTo("tuple"), unparse.DefaultStyle)
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.Equals(err.Fix().Text, "()"))
}

func TestListCallWithAlreadyLiteralArgument(t *testing.T) {
	err := Check(callTo("list", &ast.List{Elts: []ast.Expr{&ast.Ident{Name: "x"}}}), unparse.DefaultStyle)
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.Equals(err.Fix().Text, "[x]"))
}

func TestIgnoresNonLiteralArgument(t *testing.T) {
	err := Check(callTo("list", &ast.Ident{Name: "gen"}), unparse.DefaultStyle)
	qt.Assert(t, qt.IsNil(err))
}

func TestIgnoresUnrelatedCall(t *testing.T) {
	err := Check(callTo("set"), unparse.DefaultStyle)
	qt.Assert(t, qt.IsNil(err))
}
