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
	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/token"
)

// Precedence levels used as the minPrec argument to writeExpr at the call
// sites below. Naming them makes the grammar restriction at each position
// legible without re-deriving it from the raw token.Precedence table.
const (
	// bareLevel is the loosest context: anywhere a bare, unparenthesized
	// tuple is legal (UnparseExpr's top level, expression statements,
	// comprehension targets, subscript indices).
	bareLevel = token.TUPLE
	// exprLevel is an ordinary single-expression slot: list/dict/set
	// elements, call arguments, keyword values. Ternaries, lambdas, bool
	// chains, and comparisons all print bare; tuples do not.
	exprLevel = token.TEST
	// orTestLevel is the grammar's "or_test" restriction: comprehension
	// iterables and if-clauses, and the two operands flanking an "if" in a
	// ternary, exclude bare lambda/ifexp themselves.
	orTestLevel = token.BOOLOR
	// atomLevel requires a primary expression with no room for any binary
	// or unary operator at all: the base of an attribute/subscript/call.
	atomLevel = token.ATOM
	// cmpOperandLevel is one tick above CMP: only operands that bind
	// tighter than a comparison print bare, so an explicitly nested
	// comparison (or a "not", bool chain, lambda, or ternary) keeps its
	// parens, which distinguishes it from a flattened chain.
	cmpOperandLevel = token.BOR
)

// writeExpr renders e, parenthesizing it when its own precedence is lower
// than minPrec (a precedence-driven "group if" rule). Yield expressions and
// empty tuples are always parenthesized regardless of minPrec.
func (u *Unparser) writeExpr(e ast.Expr, minPrec token.Precedence) {
	switch v := e.(type) {
	case *ast.Yield, *ast.YieldFrom:
		u.write("(")
		u.emitExpr(v)
		u.write(")")
		return
	case *ast.Tuple:
		if len(v.Elts) == 0 {
			u.write("(")
			u.emitExpr(v)
			u.write(")")
			return
		}
	}

	prec := exprPrecedence(e)
	paren := prec < minPrec
	if paren {
		u.write("(")
	}
	u.emitExpr(e)
	if paren {
		u.write(")")
	}
}

// exprPrecedence reports the intrinsic precedence of e's outer operator, so
// writeExpr can decide whether a surrounding context needs parens around it.
func exprPrecedence(e ast.Expr) token.Precedence {
	switch v := e.(type) {
	case *ast.BoolOp:
		return v.Op.Precedence()
	case *ast.NamedExpr:
		// One notch below TUPLE (the loosest level any caller can request)
		// so a walrus expression is parenthesized unconditionally, even as
		// a bare expression statement: "(x := y)" never loses its parens.
		return token.TUPLE - 1
	case *ast.BinOp:
		return v.Op.Precedence()
	case *ast.UnaryOp:
		if v.Op == token.NOT {
			return token.NOTPREC
		}
		return token.FACTOR
	case *ast.Lambda:
		return token.TEST
	case *ast.IfExp:
		return token.TEST
	case *ast.Compare:
		return token.CMP
	case *ast.Await:
		return token.AWAIT
	case *ast.Tuple:
		return token.TUPLE
	default:
		return token.ATOM
	}
}

// emitExpr dispatches to the per-kind emission routine. It never adds
// parens itself; that is entirely writeExpr's job, so every routine here
// can be called unconditionally from a context that has already decided
// parens aren't needed.
func (u *Unparser) emitExpr(e ast.Expr) {
	switch v := e.(type) {
	case *ast.BoolOp:
		u.emitBoolOp(v)
	case *ast.NamedExpr:
		u.writeExpr(v.Target, atomLevel)
		u.write(" := ")
		u.writeExpr(v.Value, atomLevel)
	case *ast.BinOp:
		u.emitBinOp(v)
	case *ast.UnaryOp:
		u.emitUnaryOp(v)
	case *ast.Lambda:
		u.emitLambda(v)
	case *ast.IfExp:
		u.writeExpr(v.Body, orTestLevel)
		u.write(" if ")
		u.writeExpr(v.Test, orTestLevel)
		u.write(" else ")
		u.writeExpr(v.Orelse, exprLevel)
	case *ast.SetExpr:
		u.emitSetExpr(v)
	case *ast.DictExpr:
		u.emitDictExpr(v)
	case *ast.List:
		u.write("[")
		u.writeExprList(v.Elts, exprLevel)
		u.write("]")
	case *ast.Tuple:
		u.emitTupleBody(v)
	case *ast.ListComp:
		u.write("[")
		u.writeExpr(v.Elt, exprLevel)
		u.writeComprehensions(v.Generators)
		u.write("]")
	case *ast.SetComp:
		u.write("{")
		u.writeExpr(v.Elt, exprLevel)
		u.writeComprehensions(v.Generators)
		u.write("}")
	case *ast.DictComp:
		u.write("{")
		u.writeExpr(v.Key, exprLevel)
		u.write(": ")
		u.writeExpr(v.Value, exprLevel)
		u.writeComprehensions(v.Generators)
		u.write("}")
	case *ast.GeneratorExp:
		u.write("(")
		u.emitGeneratorExpBody(v)
		u.write(")")
	case *ast.Await:
		u.write("await ")
		u.writeExpr(v.Value, atomLevel)
	case *ast.Yield:
		u.write("yield")
		if v.Value != nil {
			u.write(" ")
			u.writeExpr(v.Value, exprLevel)
		}
	case *ast.YieldFrom:
		u.write("yield from ")
		u.writeExpr(v.Value, exprLevel)
	case *ast.Compare:
		u.emitCompare(v)
	case *ast.Call:
		u.emitCall(v)
	case *ast.Constant:
		u.writeConstant(v)
	case *ast.JoinedStr:
		u.writeJoinedStr(v)
	case *ast.FormattedValue:
		u.writeJoinedStr(&ast.JoinedStr{Values: []ast.Expr{v}})
	case *ast.Attribute:
		u.emitAttribute(v)
	case *ast.Subscript:
		u.emitSubscript(v)
	case *ast.Slice:
		u.writeSlice(v)
	case *ast.Starred:
		u.write("*")
		u.writeExpr(v.Value, token.EXPR)
	case *ast.Ident:
		u.write(v.Name)
	case *ast.BadExpr:
		u.write("<bad-expr>")
	default:
		u.write("<unknown-expr>")
	}
}

func (u *Unparser) emitBoolOp(v *ast.BoolOp) {
	sep := " and "
	if v.Op == token.LOR {
		sep = " or "
	}
	// Operands render one precedence tick above the operator itself: a
	// nested BoolOp of the same kind keeps its parens (a same-kind chain is
	// already one node with all operands in Values), an "or" inside an
	// "and" chain keeps its parens, and an "and" inside an "or" prints bare.
	prec := v.Op.Precedence() + 1
	for i, val := range v.Values {
		if i > 0 {
			u.write(sep)
		}
		u.writeExpr(val, prec)
	}
}

func (u *Unparser) emitBinOp(v *ast.BinOp) {
	prec := v.Op.Precedence()
	leftMin, rightMin := prec, prec+1
	if v.Op == token.POW {
		leftMin, rightMin = prec+1, prec
	}
	u.writeExpr(v.Left, leftMin)
	u.write(" " + v.Op.String() + " ")
	u.writeExpr(v.Right, rightMin)
}

func (u *Unparser) emitUnaryOp(v *ast.UnaryOp) {
	u.write(v.Op.String())
	prec := exprPrecedence(v)
	u.writeExpr(v.Operand, prec)
}

func (u *Unparser) emitLambda(v *ast.Lambda) {
	u.write("lambda")
	if hasAnyArgs(v.Args) {
		u.write(" ")
		u.writeArguments(v.Args)
	}
	u.write(": ")
	u.writeExpr(v.Body, exprLevel)
}

func (u *Unparser) emitSetExpr(v *ast.SetExpr) {
	if len(v.Elts) == 0 {
		u.write("set()")
		return
	}
	u.write("{")
	u.writeExprList(v.Elts, exprLevel)
	u.write("}")
}

func (u *Unparser) emitDictExpr(v *ast.DictExpr) {
	u.write("{")
	for i, val := range v.Values {
		if i > 0 {
			u.write(", ")
		}
		if i >= len(v.Keys) || v.Keys[i] == nil {
			u.write("**")
			u.writeExpr(val, exprLevel)
			continue
		}
		u.writeExpr(v.Keys[i], exprLevel)
		u.write(": ")
		u.writeExpr(val, exprLevel)
	}
	u.write("}")
}

// emitTupleBody writes a tuple's elements with no surrounding parens;
// writeExpr adds them when the context requires. A singleton tuple keeps
// its disambiguating trailing comma either way.
func (u *Unparser) emitTupleBody(v *ast.Tuple) {
	u.writeExprList(v.Elts, exprLevel)
	if len(v.Elts) == 1 {
		u.write(",")
	}
}

func (u *Unparser) writeExprList(elts []ast.Expr, minPrec token.Precedence) {
	for i, e := range elts {
		if i > 0 {
			u.write(", ")
		}
		u.writeExpr(e, minPrec)
	}
}

func (u *Unparser) writeComprehensions(gens []*ast.Comprehension) {
	for _, g := range gens {
		if g.IsAsync {
			u.write(" async for ")
		} else {
			u.write(" for ")
		}
		u.writeExpr(g.Target, bareLevel)
		u.write(" in ")
		u.writeExpr(g.Iter, orTestLevel)
		for _, cond := range g.Ifs {
			u.write(" if ")
			u.writeExpr(cond, orTestLevel)
		}
	}
}

func (u *Unparser) emitGeneratorExpBody(v *ast.GeneratorExp) {
	u.writeExpr(v.Elt, exprLevel)
	u.writeComprehensions(v.Generators)
}

func (u *Unparser) emitCompare(v *ast.Compare) {
	u.writeExpr(v.Left, cmpOperandLevel)
	for i, op := range v.Ops {
		u.write(" " + op.String() + " ")
		u.writeExpr(v.Comparators[i], cmpOperandLevel)
	}
}

func (u *Unparser) emitCall(v *ast.Call) {
	u.writeExpr(v.Func, atomLevel)
	u.write("(")
	// Generator-expression elision: f(x for x in y) rather than the
	// doubly-parenthesized f((x for x in y)).
	if len(v.Keywords) == 0 && len(v.Args) == 1 {
		if gen, ok := v.Args[0].(*ast.GeneratorExp); ok {
			u.emitGeneratorExpBody(gen)
			u.write(")")
			return
		}
	}
	first := true
	for _, a := range v.Args {
		if !first {
			u.write(", ")
		}
		first = false
		u.writeExpr(a, exprLevel)
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
		u.writeExpr(kw.Value, exprLevel)
	}
	u.write(")")
}

// emitAttribute applies the integer-attribute space rule: "1.real" would
// re-tokenize as a malformed float followed by a bare "real", so an
// integer-constant base gets a disambiguating space before the dot.
func (u *Unparser) emitAttribute(v *ast.Attribute) {
	u.writeExpr(v.Value, atomLevel)
	if c, ok := v.Value.(*ast.Constant); ok && c.Kind == ast.ConstInt {
		u.write(" .")
	} else {
		u.write(".")
	}
	u.write(v.Attr)
}

func (u *Unparser) emitSubscript(v *ast.Subscript) {
	u.writeExpr(v.Value, atomLevel)
	u.write("[")
	u.writeSubscriptIndex(v.Index)
	u.write("]")
}

// writeSubscriptIndex renders a subscript's index at bareLevel, same as any
// other bare-tuple-legal position, with one bump: a starred-tuple-slice
// precedence bump raises the minimum precedence by one notch when the
// index is a Tuple containing a Starred element, so "a[*b,]" keeps the
// parens a Tuple at plain bareLevel would otherwise elide. A bare Slice (no
// tuple) goes through the ordinary writeExpr dispatch like everything else;
// there is no separate per-element unrolling here, since emitTupleBody and
// writeSlice already do the right thing once reached through writeExpr.
func (u *Unparser) writeSubscriptIndex(idx ast.Expr) {
	lvl := bareLevel
	if tup, ok := idx.(*ast.Tuple); ok {
		for _, e := range tup.Elts {
			if _, ok := e.(*ast.Starred); ok {
				lvl = bareLevel + 1
				break
			}
		}
	}
	u.writeExpr(idx, lvl)
}

func (u *Unparser) writeSlice(s *ast.Slice) {
	if s.Lower != nil {
		u.writeExpr(s.Lower, exprLevel)
	}
	u.write(":")
	if s.Upper != nil {
		u.writeExpr(s.Upper, exprLevel)
	}
	if s.Step != nil {
		u.write(":")
		u.writeExpr(s.Step, exprLevel)
	}
}

// -----------------------------------------------------------------------------
// Shared argument-list rendering (FunctionDef and Lambda).

func hasAnyArgs(a *ast.Arguments) bool {
	if a == nil {
		return false
	}
	return len(a.PosOnlyArgs) > 0 || len(a.Args) > 0 || a.VarArg != nil ||
		len(a.KwOnlyArgs) > 0 || a.KwArg != nil
}

// writeArguments renders a full parameter list: positional-only params
// followed by a bare "/", regular params, a "*"/"*args" separator, keyword-
// only params, and a trailing "**kwargs". Defaults align to the tail of
// PosOnlyArgs+Args; KwDefaults
// align one-to-one with KwOnlyArgs (a nil entry means no default).
func (u *Unparser) writeArguments(a *ast.Arguments) {
	if a == nil {
		return
	}
	positional := make([]*ast.Arg, 0, len(a.PosOnlyArgs)+len(a.Args))
	positional = append(positional, a.PosOnlyArgs...)
	positional = append(positional, a.Args...)
	defaultStart := len(positional) - len(a.Defaults)

	first := true
	writeSep := func() {
		if !first {
			u.write(", ")
		}
		first = false
	}

	for i, arg := range positional {
		writeSep()
		u.writeArg(arg, defaultFor(a.Defaults, defaultStart, i))
		if len(a.PosOnlyArgs) > 0 && i == len(a.PosOnlyArgs)-1 {
			u.write(", /")
		}
	}

	if a.VarArg != nil {
		writeSep()
		u.write("*")
		u.writeArg(a.VarArg, nil)
	} else if len(a.KwOnlyArgs) > 0 {
		writeSep()
		u.write("*")
	}

	for i, arg := range a.KwOnlyArgs {
		writeSep()
		var def ast.Expr
		if i < len(a.KwDefaults) {
			def = a.KwDefaults[i]
		}
		u.writeArg(arg, def)
	}

	if a.KwArg != nil {
		writeSep()
		u.write("**")
		u.writeArg(a.KwArg, nil)
	}
}

func defaultFor(defaults []ast.Expr, start, i int) ast.Expr {
	if i < start {
		return nil
	}
	idx := i - start
	if idx < 0 || idx >= len(defaults) {
		return nil
	}
	return defaults[idx]
}

func (u *Unparser) writeArg(a *ast.Arg, def ast.Expr) {
	u.write(a.Name)
	if a.Annotation != nil {
		u.write(": ")
		u.writeExpr(a.Annotation, exprLevel)
	}
	if def != nil {
		u.write("=")
		u.writeExpr(def, exprLevel)
	}
}
