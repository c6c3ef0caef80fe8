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

package unparse

import (
	"strings"

	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/token"
)

// UnparseSuite renders a sequence of statements in order — a function
// body, a module's top-level statement list, or any other Stmt slice.
func (u *Unparser) UnparseSuite(stmts []ast.Stmt) {
	for _, s := range stmts {
		u.UnparseStmt(s)
	}
}

// UnparseExpr renders a single expression in the loosest legal context (a
// bare tuple is allowed), for callers that have an expression outside any
// statement — e.g. a lint rule previewing a replacement value.
func (u *Unparser) UnparseExpr(e ast.Expr) {
	u.writeExpr(e, bareLevel)
}

// UnparseStmt renders one statement, including the blank-line bookkeeping
// conventionally wanted around top-level definitions. Every statement is
// preceded by flushing pending newlines, then the current indent, then the
// statement body, then (for def/class) a trailing blank-line request for
// whatever follows.
//
// MatchStmt is the one exception: structural pattern matching resolved to
// "accept the node, emit nothing" — no line, no indent, no blank-line
// request — so match statements leave no trace in the output at all.
func (u *Unparser) UnparseStmt(stmt ast.Stmt) {
	if _, ok := stmt.(*ast.MatchStmt); ok {
		return
	}

	u.requestNewlines(blockRequirement(stmt, u.depth))
	u.beginLine()
	u.emitStmt(stmt)
	u.requestNewlines(blockRequirement(stmt, u.depth))
}

// writeBody renders a nested statement block one indent level deeper than
// the caller, and always restores the depth on return.
func (u *Unparser) writeBody(body []ast.Stmt) {
	u.withIndent(func() {
		u.UnparseSuite(body)
	})
}

func (u *Unparser) emitStmt(stmt ast.Stmt) {
	switch v := stmt.(type) {
	case *ast.FunctionDef:
		u.emitFunctionDef(v)
	case *ast.ClassDef:
		u.emitClassDef(v)
	case *ast.Return:
		u.write("return")
		if v.Value != nil {
			u.write(" ")
			u.writeExpr(v.Value, atomLevel)
		}
	case *ast.Delete:
		u.write("del ")
		u.writeExprList(v.Targets, atomLevel)
	case *ast.Assign:
		for _, t := range v.Targets {
			u.writeExpr(t, token.EXPR)
			u.write(" = ")
		}
		u.writeExpr(v.Value, token.EXPR)
	case *ast.AugAssign:
		u.writeExpr(v.Target, token.EXPR)
		u.write(" " + v.Op.String() + "= ")
		u.writeExpr(v.Value, token.EXPR)
	case *ast.AnnAssign:
		u.emitAnnAssign(v)
	case *ast.ForStmt:
		u.emitForStmt(v)
	case *ast.WhileStmt:
		u.emitWhileStmt(v)
	case *ast.IfStmt:
		u.emitIfStmt(v)
	case *ast.WithStmt:
		u.emitWithStmt(v)
	case *ast.RaiseStmt:
		u.emitRaiseStmt(v)
	case *ast.TryStmt:
		u.emitTryStmt(v)
	case *ast.AssertStmt:
		u.write("assert ")
		u.writeExpr(v.Test, exprLevel)
		if v.Msg != nil {
			u.write(", ")
			u.writeExpr(v.Msg, exprLevel)
		}
	case *ast.ImportStmt:
		u.write("import ")
		u.writeAliasList(v.Names)
	case *ast.ImportFromStmt:
		u.write("from ")
		u.write(strings.Repeat(".", v.Level))
		u.write(v.Module)
		u.write(" import ")
		u.writeAliasList(v.Names)
	case *ast.GlobalStmt:
		u.write("global " + strings.Join(v.Names, ", "))
	case *ast.NonlocalStmt:
		u.write("nonlocal " + strings.Join(v.Names, ", "))
	case *ast.ExprStmt:
		u.writeExpr(v.Value, bareLevel)
	case *ast.PassStmt:
		u.write("pass")
	case *ast.BreakStmt:
		u.write("break")
	case *ast.ContinueStmt:
		u.write("continue")
	case *ast.BadStmt:
		u.write("<bad-stmt>")
	default:
		u.write("<unknown-stmt>")
	}
}

// emitFunctionDef deliberately never reads v.Decorators: decorator
// pretty-printing is out of scope, so they are carried on the node
// for callers that need them but never reach the page.
func (u *Unparser) emitFunctionDef(v *ast.FunctionDef) {
	if v.Async {
		u.write("async ")
	}
	u.write("def ")
	u.write(v.Name.Name)
	u.write("(")
	u.writeArguments(v.Args)
	u.write(")")
	if v.Returns != nil {
		u.write(" -> ")
		u.writeExpr(v.Returns, token.EXPR)
	}
	u.write(":")
	u.writeBody(v.Body)
}

func (u *Unparser) emitClassDef(v *ast.ClassDef) {
	u.write("class ")
	u.write(v.Name.Name)
	if len(v.Bases) > 0 || len(v.Keywords) > 0 {
		u.write("(")
		first := true
		for _, b := range v.Bases {
			if !first {
				u.write(", ")
			}
			first = false
			u.writeExpr(b, token.EXPR)
		}
		for _, kw := range v.Keywords {
			if !first {
				u.write(", ")
			}
			first = false
			if kw.Name == "" {
				u.write("**")
			} else {
				u.write(kw.Name + "=")
			}
			u.writeExpr(kw.Value, token.EXPR)
		}
		u.write(")")
	}
	u.write(":")
	u.writeBody(v.Body)
}

func (u *Unparser) emitAnnAssign(v *ast.AnnAssign) {
	if !v.Simple {
		u.write("(")
	}
	u.writeExpr(v.Target, atomLevel)
	if !v.Simple {
		u.write(")")
	}
	u.write(": ")
	u.writeExpr(v.Annotation, token.EXPR)
	if v.Value != nil {
		u.write(" = ")
		u.writeExpr(v.Value, token.EXPR)
	}
}

func (u *Unparser) emitForStmt(v *ast.ForStmt) {
	if v.Async {
		u.write("async ")
	}
	u.write("for ")
	u.writeExpr(v.Target, exprLevel)
	u.write(" in ")
	u.writeExpr(v.Iter, exprLevel)
	u.write(":")
	u.writeBody(v.Body)
	if len(v.Orelse) > 0 {
		u.newlineAndIndent()
		u.write("else:")
		u.writeBody(v.Orelse)
	}
}

func (u *Unparser) emitWhileStmt(v *ast.WhileStmt) {
	u.write("while ")
	u.writeExpr(v.Test, exprLevel)
	u.write(":")
	u.writeBody(v.Body)
	if len(v.Orelse) > 0 {
		u.newlineAndIndent()
		u.write("else:")
		u.writeBody(v.Orelse)
	}
}

// emitIfStmt collapses a single-IfStmt Orelse into an "elif" chain rather
// than nested "else:\n    if ...:" blocks.
func (u *Unparser) emitIfStmt(v *ast.IfStmt) {
	u.write("if ")
	u.writeExpr(v.Test, exprLevel)
	u.write(":")
	u.writeBody(v.Body)
	u.emitIfOrelse(v.Orelse)
}

func (u *Unparser) emitIfOrelse(orelse []ast.Stmt) {
	if len(orelse) == 0 {
		return
	}
	if len(orelse) == 1 {
		if nested, ok := orelse[0].(*ast.IfStmt); ok {
			u.newlineAndIndent()
			u.write("elif ")
			u.writeExpr(nested.Test, exprLevel)
			u.write(":")
			u.writeBody(nested.Body)
			u.emitIfOrelse(nested.Orelse)
			return
		}
	}
	u.newlineAndIndent()
	u.write("else:")
	u.writeBody(orelse)
}

func (u *Unparser) emitWithStmt(v *ast.WithStmt) {
	if v.Async {
		u.write("async ")
	}
	u.write("with ")
	for i, item := range v.Items {
		if i > 0 {
			u.write(", ")
		}
		u.writeExpr(item.ContextExpr, token.EXPR)
		if item.OptionalVars != nil {
			u.write(" as ")
			u.writeExpr(item.OptionalVars, token.EXPR)
		}
	}
	u.write(":")
	u.writeBody(v.Body)
}

func (u *Unparser) emitRaiseStmt(v *ast.RaiseStmt) {
	u.write("raise")
	if v.Exc != nil {
		u.write(" ")
		u.writeExpr(v.Exc, token.EXPR)
		if v.Cause != nil {
			u.write(" from ")
			u.writeExpr(v.Cause, token.EXPR)
		}
	}
}

func (u *Unparser) emitTryStmt(v *ast.TryStmt) {
	u.write("try:")
	u.writeBody(v.Body)
	for _, h := range v.Handlers {
		u.newlineAndIndent()
		u.write("except")
		if h.Type != nil {
			u.write(" ")
			u.writeExpr(h.Type, token.EXPR)
			if h.Name != "" {
				u.write(" as " + h.Name)
			}
		}
		u.write(":")
		u.writeBody(h.Body)
	}
	if len(v.Orelse) > 0 {
		u.newlineAndIndent()
		u.write("else:")
		u.writeBody(v.Orelse)
	}
	if len(v.Finalbody) > 0 {
		u.newlineAndIndent()
		u.write("finally:")
		u.writeBody(v.Finalbody)
	}
}

func (u *Unparser) writeAliasList(names []*ast.Alias) {
	for i, a := range names {
		if i > 0 {
			u.write(", ")
		}
		u.write(a.Name)
		if a.AsName != "" {
			u.write(" as " + a.AsName)
		}
	}
}
