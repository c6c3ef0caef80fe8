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

// Package ast declares the types used to represent syntax trees for wisp
// source files. This is the input contract the unparse package consumes: a
// parser (out of this repository's scope) builds these nodes from source
// text, and lint rules synthesize or mutate them before handing them back to
// unparse for re-serialization.
package ast

import "github.com/wisplang/wisp/token"

// ----------------------------------------------------------------------------
// Interfaces
//
// There are two main classes of nodes: statement and expression nodes. Node
// names follow the target language's own AST production names so a reader
// coming from the grammar recognizes them immediately.
//
// All nodes carry source position information via Pos/End. The unparser
// itself never reads these back (see token.Pos.IsNewline); they exist for
// diagnostics and for callers that splice unparsed text into extracted
// source slices.

// A Node represents any node in the abstract syntax tree.
type Node interface {
	Pos() token.Pos // position of first character belonging to the node
	End() token.Pos // position of first character immediately after the node
}

// BaseNode carries the (start, end) span every node embeds. It is not a
// Node by itself: an embedding struct's address must be taken for the
// pointer-receiver methods below to satisfy the Node interface.
type BaseNode struct {
	StartPos token.Pos
	EndPos   token.Pos
}

func (b *BaseNode) Pos() token.Pos { return b.StartPos }
func (b *BaseNode) End() token.Pos { return b.EndPos }

// An Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// A Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

func (*BadExpr) exprNode()        {}
func (*Ident) exprNode()          {}
func (*Constant) exprNode()       {}
func (*JoinedStr) exprNode()      {}
func (*FormattedValue) exprNode() {}
func (*Attribute) exprNode()      {}
func (*Subscript) exprNode()      {}
func (*Slice) exprNode()          {}
func (*Starred) exprNode()        {}
func (*List) exprNode()           {}
func (*Tuple) exprNode()          {}
func (*SetExpr) exprNode()        {}
func (*DictExpr) exprNode()       {}
func (*ListComp) exprNode()       {}
func (*SetComp) exprNode()        {}
func (*DictComp) exprNode()       {}
func (*GeneratorExp) exprNode()   {}
func (*BoolOp) exprNode()         {}
func (*NamedExpr) exprNode()      {}
func (*BinOp) exprNode()          {}
func (*UnaryOp) exprNode()        {}
func (*Lambda) exprNode()         {}
func (*IfExp) exprNode()          {}
func (*Await) exprNode()          {}
func (*Yield) exprNode()          {}
func (*YieldFrom) exprNode()      {}
func (*Compare) exprNode()        {}
func (*Call) exprNode()           {}

func (*BadStmt) stmtNode()        {}
func (*FunctionDef) stmtNode()    {}
func (*ClassDef) stmtNode()       {}
func (*Return) stmtNode()         {}
func (*Delete) stmtNode()         {}
func (*Assign) stmtNode()         {}
func (*AugAssign) stmtNode()      {}
func (*AnnAssign) stmtNode()      {}
func (*ForStmt) stmtNode()        {}
func (*WhileStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WithStmt) stmtNode()       {}
func (*MatchStmt) stmtNode()      {}
func (*RaiseStmt) stmtNode()      {}
func (*TryStmt) stmtNode()        {}
func (*AssertStmt) stmtNode()     {}
func (*ImportStmt) stmtNode()     {}
func (*ImportFromStmt) stmtNode() {}
func (*GlobalStmt) stmtNode()     {}
func (*NonlocalStmt) stmtNode()   {}
func (*ExprStmt) stmtNode()       {}
func (*PassStmt) stmtNode()       {}
func (*BreakStmt) stmtNode()      {}
func (*ContinueStmt) stmtNode()   {}

// ----------------------------------------------------------------------------
// Bad nodes, for a parser (out of scope here) to report a syntax error
// without losing the surrounding tree shape.

type BadExpr struct{ BaseNode }
type BadStmt struct{ BaseNode }

// ----------------------------------------------------------------------------
// Shared helper productions

// Ident is a bare identifier, used both as an expression (Name) and as the
// label of a def/class/arg/import alias.
type Ident struct {
	BaseNode
	Name string
}

// Arg is a single parameter: its name and optional type annotation.
type Arg struct {
	Name       string
	Annotation Expr
}

// Arguments is a function or lambda's full parameter list, split by kind so
// the unparser can render positional-only markers, "*"/"**" separators, and
// default alignment without re-deriving them from a flat list.
type Arguments struct {
	PosOnlyArgs []*Arg
	Args        []*Arg
	VarArg      *Arg   // nil if there is no *args
	KwOnlyArgs  []*Arg
	KwArg       *Arg   // nil if there is no **kwargs
	Defaults    []Expr // aligns to the tail of PosOnlyArgs+Args
	KwDefaults  []Expr // one entry per KwOnlyArgs slot; nil entry means "no default"
}

// Keyword is a call's keyword argument, or (when Name == "") a "**expr"
// spread.
type Keyword struct {
	Name  string
	Value Expr
}

// Alias is one entry of an import statement: "name" or "name as asname".
type Alias struct {
	Name   string
	AsName string // empty if there is no "as" clause
}

// WithItem is one entry of a with-statement's item list.
type WithItem struct {
	ContextExpr  Expr
	OptionalVars Expr // nil if there is no "as" clause
}

// ExceptHandler is one "except [Type [as Name]]:" clause of a try statement.
type ExceptHandler struct {
	BaseNode
	Type Expr // nil for a bare "except:"
	Name string
	Body []Stmt
}

// Comprehension is one "for Target in Iter (if Ifs)*" clause shared by list,
// set, dict, and generator comprehensions.
type Comprehension struct {
	Target  Expr
	Iter    Expr
	Ifs     []Expr
	IsAsync bool
}

// MatchCase is reserved: match statements are accepted as nodes but the
// unparser emits nothing for them.
type MatchCase struct {
	Pattern Expr
	Guard   Expr
	Body    []Stmt
}

// ----------------------------------------------------------------------------
// Statements

// FunctionDef covers both "def" and "async def".
type FunctionDef struct {
	BaseNode
	Name       *Ident
	Args       *Arguments
	Body       []Stmt
	Returns    Expr   // nil if there is no "-> T" annotation
	Decorators []Expr // carried for completeness; the unparser drops these
	Async      bool
}

type ClassDef struct {
	BaseNode
	Name       *Ident
	Bases      []Expr
	Keywords   []*Keyword
	Body       []Stmt
	Decorators []Expr
}

type Return struct {
	BaseNode
	Value Expr // nil for a bare "return"
}

type Delete struct {
	BaseNode
	Targets []Expr
}

type Assign struct {
	BaseNode
	Targets []Expr // len >= 1; chained assignment when len > 1
	Value   Expr
}

type AugAssign struct {
	BaseNode
	Target Expr
	Op     token.Token
	Value  Expr
}

type AnnAssign struct {
	BaseNode
	Target     Expr
	Annotation Expr
	Value      Expr // nil if there is no initializer
	Simple     bool // false if Target must be parenthesized (e.g. (x): int)
}

type ForStmt struct {
	BaseNode
	Target Expr
	Iter   Expr
	Body   []Stmt
	Orelse []Stmt
	Async  bool
}

type WhileStmt struct {
	BaseNode
	Test   Expr
	Body   []Stmt
	Orelse []Stmt
}

type IfStmt struct {
	BaseNode
	Test   Expr
	Body   []Stmt
	Orelse []Stmt // may itself be a single *IfStmt, collapsed into "elif"
}

type WithStmt struct {
	BaseNode
	Items []*WithItem
	Body  []Stmt
	Async bool
}

// MatchStmt is accepted but never emitted.
type MatchStmt struct {
	BaseNode
	Subject Expr
	Cases   []*MatchCase
}

type RaiseStmt struct {
	BaseNode
	Exc   Expr // nil for a bare "raise"
	Cause Expr // nil if there is no "from"
}

type TryStmt struct {
	BaseNode
	Body      []Stmt
	Handlers  []*ExceptHandler
	Orelse    []Stmt
	Finalbody []Stmt
}

type AssertStmt struct {
	BaseNode
	Test Expr
	Msg  Expr // nil if there is no message
}

type ImportStmt struct {
	BaseNode
	Names []*Alias
}

type ImportFromStmt struct {
	BaseNode
	Module string // may be empty for a pure relative import ("from . import x")
	Names  []*Alias
	Level  int // number of leading dots
}

type GlobalStmt struct {
	BaseNode
	Names []string
}

type NonlocalStmt struct {
	BaseNode
	Names []string
}

type ExprStmt struct {
	BaseNode
	Value Expr
}

type PassStmt struct{ BaseNode }
type BreakStmt struct{ BaseNode }
type ContinueStmt struct{ BaseNode }

// ----------------------------------------------------------------------------
// Expressions

type BoolOp struct {
	BaseNode
	Op     token.Token // LAND or LOR
	Values []Expr      // len >= 2
}

// NamedExpr is the walrus operator: "Target := Value".
type NamedExpr struct {
	BaseNode
	Target *Ident
	Value  Expr
}

type BinOp struct {
	BaseNode
	Left  Expr
	Op    token.Token
	Right Expr
}

type UnaryOp struct {
	BaseNode
	Op      token.Token // INVERT, NOT, ADD, or SUB
	Operand Expr
}

type Lambda struct {
	BaseNode
	Args *Arguments
	Body Expr
}

// IfExp is the ternary conditional: "Body if Test else Orelse".
type IfExp struct {
	BaseNode
	Test   Expr
	Body   Expr
	Orelse Expr
}

type SetExpr struct {
	BaseNode
	Elts []Expr // empty Elts renders as "set()"
}

// DictExpr represents a dict display. Values is a superset of Keys: any
// trailing Values entries without a matching Keys entry (a nil Keys slot)
// encode a "**spread" element.
type DictExpr struct {
	BaseNode
	Keys   []Expr // a nil entry at index i means Values[i] is a "**" spread
	Values []Expr
}

type List struct {
	BaseNode
	Elts []Expr
}

type Tuple struct {
	BaseNode
	Elts []Expr
}

type ListComp struct {
	BaseNode
	Elt        Expr
	Generators []*Comprehension
}

type SetComp struct {
	BaseNode
	Elt        Expr
	Generators []*Comprehension
}

type DictComp struct {
	BaseNode
	Key        Expr
	Value      Expr
	Generators []*Comprehension
}

type GeneratorExp struct {
	BaseNode
	Elt        Expr
	Generators []*Comprehension
}

type Await struct {
	BaseNode
	Value Expr
}

type Yield struct {
	BaseNode
	Value Expr // nil for a bare "yield"
}

type YieldFrom struct {
	BaseNode
	Value Expr
}

// Compare is a chained comparison: "Left Ops[0] Comparators[0] Ops[1] ...".
type Compare struct {
	BaseNode
	Left        Expr
	Ops         []token.Token
	Comparators []Expr
}

type Call struct {
	BaseNode
	Func     Expr
	Args     []Expr
	Keywords []*Keyword
}

// ConstantKind discriminates the textual form a Constant requires.
type ConstantKind int

const (
	ConstInt ConstantKind = iota
	ConstFloat
	ConstComplex
	ConstBool
	ConstNone
	ConstEllipsis
	ConstString
	ConstBytes
)

// Constant is every literal atom other than containers: numbers, booleans,
// None, Ellipsis, strings, and bytes. Keeping these as one tagged struct
// (rather than one Go type per kind) encodes the AST as a closed,
// exhaustively-dispatched variant set while
// still letting the unparser's Constant case be a single exhaustive switch.
type Constant struct {
	BaseNode
	Kind ConstantKind

	// ConstInt: decimal text, arbitrary precision, no sign normalization
	// required beyond what the parser already produced.
	IntText string

	Float   float64
	Complex complex128
	Bool    bool

	// ConstString / ConstBytes.
	StringValue  string // decoded value (ConstString) or raw bytes as a string (ConstBytes)
	StringPrefix string // "u", "r", "rb", "" — preserved verbatim when the parser set a kind
}

// JoinedStr is an f-string: a sequence of literal Constant(ConstString)
// pieces interleaved with FormattedValue pieces.
type JoinedStr struct {
	BaseNode
	Values []Expr
}

// FormattedValue is one "{expr!conv:spec}" piece of a JoinedStr.
type FormattedValue struct {
	BaseNode
	Value      Expr
	Conversion rune // 0, 's', 'r', or 'a'
	FormatSpec Expr // nil, or a *JoinedStr rendered in spec mode
}

type Attribute struct {
	BaseNode
	Value Expr
	Attr  string
}

type Subscript struct {
	BaseNode
	Value Expr
	Index Expr
}

type Slice struct {
	BaseNode
	Lower Expr
	Upper Expr
	Step  Expr // nil if there is no second colon
}

type Starred struct {
	BaseNode
	Value Expr
}
