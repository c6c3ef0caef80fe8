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

package lambdatodef

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/token"
	"github.com/wisplang/wisp/unparse"
)

func ident(name string) *ast.Ident { return &ast.Ident{Name: name} }

func TestRewritesLambdaAssignment(t *testing.T) {
	assign := &ast.Assign{
		Targets: []ast.Expr{ident("f")},
		Value: &ast.Lambda{
			Args: &ast.Arguments{Args: []*ast.Arg{{Name: "x"}}},
			Body: &ast.BinOp{Left: ident("x"), Op: token.ADD, Right: &ast.Constant{Kind: ast.ConstInt, IntText: "1"}},
		},
	}
	err := Check(assign, unparse.DefaultStyle)
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.Equals(err.Code(), Code))
	qt.Assert(t, qt.Equals(err.Fix().Text, "def f(x):\n    return (x + 1)"))
}

func TestIgnoresChainedAssignment(t *testing.T) {
	assign := &ast.Assign{
		Targets: []ast.Expr{ident("f"), ident("g")},
		Value: &ast.Lambda{
			Args: &ast.Arguments{Args: []*ast.Arg{{Name: "x"}}},
			Body: ident("x"),
		},
	}
	err := Check(assign, unparse.DefaultStyle)
	qt.Assert(t, qt.IsNil(err))
}

func TestIgnoresNonLambdaValue(t *testing.T) {
	assign := &ast.Assign{
		Targets: []ast.Expr{ident("f")},
		Value:   ident("g"),
	}
	err := Check(assign, unparse.DefaultStyle)
	qt.Assert(t, qt.IsNil(err))
}
