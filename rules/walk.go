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

import "github.com/wisplang/wisp/ast"

// Walk visits node and every node reachable from it in depth-first,
// pre-order fashion. If visit returns false for a node, Walk does not
// descend into that node's children, but still visits the node's
// siblings.
func Walk(node ast.Node, visit func(ast.Node) bool) {
	if node == nil {
		return
	}
	if !visit(node) {
		return
	}
	switch v := node.(type) {
	case *ast.FunctionDef:
		walkExprs(v.Decorators, visit)
		walkExpr(v.Name, visit)
		walkArguments(v.Args, visit)
		walkExpr(v.Returns, visit)
		walkStmts(v.Body, visit)
	case *ast.ClassDef:
		walkExprs(v.Decorators, visit)
		walkExpr(v.Name, visit)
		walkExprs(v.Bases, visit)
		for _, kw := range v.Keywords {
			walkExpr(kw.Value, visit)
		}
		walkStmts(v.Body, visit)
	case *ast.Return:
		walkExpr(v.Value, visit)
	case *ast.Delete:
		walkExprs(v.Targets, visit)
	case *ast.Assign:
		walkExprs(v.Targets, visit)
		walkExpr(v.Value, visit)
	case *ast.AugAssign:
		walkExpr(v.Target, visit)
		walkExpr(v.Value, visit)
	case *ast.AnnAssign:
		walkExpr(v.Target, visit)
		walkExpr(v.Annotation, visit)
		walkExpr(v.Value, visit)
	case *ast.ForStmt:
		walkExpr(v.Target, visit)
		walkExpr(v.Iter, visit)
		walkStmts(v.Body, visit)
		walkStmts(v.Orelse, visit)
	case *ast.WhileStmt:
		walkExpr(v.Test, visit)
		walkStmts(v.Body, visit)
		walkStmts(v.Orelse, visit)
	case *ast.IfStmt:
		walkExpr(v.Test, visit)
		walkStmts(v.Body, visit)
		walkStmts(v.Orelse, visit)
	case *ast.WithStmt:
		for _, item := range v.Items {
			walkExpr(item.ContextExpr, visit)
			walkExpr(item.OptionalVars, visit)
		}
		walkStmts(v.Body, visit)
	case *ast.MatchStmt:
		walkExpr(v.Subject, visit)
		for _, c := range v.Cases {
			walkExpr(c.Pattern, visit)
			walkExpr(c.Guard, visit)
			walkStmts(c.Body, visit)
		}
	case *ast.RaiseStmt:
		walkExpr(v.Exc, visit)
		walkExpr(v.Cause, visit)
	case *ast.TryStmt:
		walkStmts(v.Body, visit)
		for _, h := range v.Handlers {
			walkExpr(h.Type, visit)
			walkStmts(h.Body, visit)
		}
		walkStmts(v.Orelse, visit)
		walkStmts(v.Finalbody, visit)
	case *ast.AssertStmt:
		walkExpr(v.Test, visit)
		walkExpr(v.Msg, visit)
	case *ast.ExprStmt:
		walkExpr(v.Value, visit)

	case *ast.BoolOp:
		walkExprs(v.Values, visit)
	case *ast.NamedExpr:
		walkExpr(v.Target, visit)
		walkExpr(v.Value, visit)
	case *ast.BinOp:
		walkExpr(v.Left, visit)
		walkExpr(v.Right, visit)
	case *ast.UnaryOp:
		walkExpr(v.Operand, visit)
	case *ast.Lambda:
		walkArguments(v.Args, visit)
		walkExpr(v.Body, visit)
	case *ast.IfExp:
		walkExpr(v.Test, visit)
		walkExpr(v.Body, visit)
		walkExpr(v.Orelse, visit)
	case *ast.SetExpr:
		walkExprs(v.Elts, visit)
	case *ast.DictExpr:
		walkExprs(v.Keys, visit)
		walkExprs(v.Values, visit)
	case *ast.List:
		walkExprs(v.Elts, visit)
	case *ast.Tuple:
		walkExprs(v.Elts, visit)
	case *ast.ListComp:
		walkExpr(v.Elt, visit)
		walkComprehensions(v.Generators, visit)
	case *ast.SetComp:
		walkExpr(v.Elt, visit)
		walkComprehensions(v.Generators, visit)
	case *ast.DictComp:
		walkExpr(v.Key, visit)
		walkExpr(v.Value, visit)
		walkComprehensions(v.Generators, visit)
	case *ast.GeneratorExp:
		walkExpr(v.Elt, visit)
		walkComprehensions(v.Generators, visit)
	case *ast.Await:
		walkExpr(v.Value, visit)
	case *ast.Yield:
		walkExpr(v.Value, visit)
	case *ast.YieldFrom:
		walkExpr(v.Value, visit)
	case *ast.Compare:
		walkExpr(v.Left, visit)
		walkExprs(v.Comparators, visit)
	case *ast.Call:
		walkExpr(v.Func, visit)
		walkExprs(v.Args, visit)
		for _, kw := range v.Keywords {
			walkExpr(kw.Value, visit)
		}
	case *ast.JoinedStr:
		walkExprs(v.Values, visit)
	case *ast.FormattedValue:
		walkExpr(v.Value, visit)
		walkExpr(v.FormatSpec, visit)
	case *ast.Attribute:
		walkExpr(v.Value, visit)
	case *ast.Subscript:
		walkExpr(v.Value, visit)
		walkExpr(v.Index, visit)
	case *ast.Slice:
		walkExpr(v.Lower, visit)
		walkExpr(v.Upper, visit)
		walkExpr(v.Step, visit)
	case *ast.Starred:
		walkExpr(v.Value, visit)
	}
}

func walkStmts(stmts []ast.Stmt, visit func(ast.Node) bool) {
	for _, s := range stmts {
		Walk(s, visit)
	}
}

func walkExprs(exprs []ast.Expr, visit func(ast.Node) bool) {
	for _, e := range exprs {
		walkExpr(e, visit)
	}
}

func walkExpr(e ast.Expr, visit func(ast.Node) bool) {
	if e == nil {
		return
	}
	Walk(e, visit)
}

func walkArguments(args *ast.Arguments, visit func(ast.Node) bool) {
	if args == nil {
		return
	}
	walkArgList(args.PosOnlyArgs, visit)
	walkArgList(args.Args, visit)
	if args.VarArg != nil {
		walkExpr(args.VarArg.Annotation, visit)
	}
	walkArgList(args.KwOnlyArgs, visit)
	if args.KwArg != nil {
		walkExpr(args.KwArg.Annotation, visit)
	}
	walkExprs(args.Defaults, visit)
	walkExprs(args.KwDefaults, visit)
}

func walkArgList(args []*ast.Arg, visit func(ast.Node) bool) {
	for _, a := range args {
		walkExpr(a.Annotation, visit)
	}
}

func walkComprehensions(gens []*ast.Comprehension, visit func(ast.Node) bool) {
	for _, g := range gens {
		walkExpr(g.Target, visit)
		walkExpr(g.Iter, visit)
		walkExprs(g.Ifs, visit)
	}
}
