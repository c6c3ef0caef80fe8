package ast_test

import (
	"testing"

	qt "github.com/go-quicktest/qt"

	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/token"
)

func TestNodeInterfaces(t *testing.T) {
	var _ ast.Expr = &ast.Ident{Name: "x"}
	var _ ast.Expr = &ast.BinOp{}
	var _ ast.Stmt = &ast.IfStmt{}
	var _ ast.Stmt = &ast.FunctionDef{}
}

func TestBaseNodeSpan(t *testing.T) {
	start := token.NewPos("f.wisp", 0, 1, 1)
	end := token.NewPos("f.wisp", 3, 1, 4)
	id := &ast.Ident{BaseNode: ast.BaseNode{StartPos: start, EndPos: end}, Name: "abc"}

	qt.Assert(t, qt.Equals(id.Pos(), start))
	qt.Assert(t, qt.Equals(id.End(), end))
}

func TestDictExprSpreadEncoding(t *testing.T) {
	// {**a, "x": 1}: the spread's slot in Keys holds nil, so Keys and Values
	// keep the same length; the leading nil Key marks the spread per
	// ast.DictExpr's doc comment.
	d := &ast.DictExpr{
		Keys:   []ast.Expr{nil, &ast.Constant{Kind: ast.ConstString, StringValue: "x"}},
		Values: []ast.Expr{&ast.Ident{Name: "a"}, &ast.Constant{Kind: ast.ConstInt, IntText: "1"}},
	}
	qt.Assert(t, qt.Equals(len(d.Keys), len(d.Values)))
	qt.Assert(t, qt.IsNil(d.Keys[0]))
}
