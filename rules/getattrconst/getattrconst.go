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

// Package getattrconst flags "getattr(obj, "name")" calls where "name" is
// a constant string that is already a legal identifier: the call can
// always be rewritten to the equivalent, faster, and more readable
// "obj.name" attribute access.
package getattrconst

import (
	"regexp"

	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/diagnostics"
	"github.com/wisplang/wisp/unparse"
)

// Code is the diagnostic code reported for a flagged call.
const Code = "WISP101"

// identifierRegexp matches strings that could be written directly as an
// attribute name without needing getattr's string-keyed indirection.
var identifierRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// keywords holds the reserved words that are syntactically valid
// identifiers but can never follow a dot as an attribute name.
var keywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
}

// Check reports a diagnostic for a getattr(obj, "const") call, with a Fix
// that replaces the whole call with the equivalent attribute access,
// rendered through unparse at the loosest (bare) precedence level the
// replacement's surrounding context always allows.
func Check(call *ast.Call, style unparse.Style) diagnostics.Error {
	fn, ok := call.Func.(*ast.Ident)
	if !ok || fn.Name != "getattr" {
		return nil
	}
	if len(call.Keywords) != 0 || len(call.Args) != 2 {
		return nil
	}
	obj, arg := call.Args[0], call.Args[1]
	lit, ok := arg.(*ast.Constant)
	if !ok || lit.Kind != ast.ConstString {
		return nil
	}
	name := lit.StringValue
	if !identifierRegexp.MatchString(name) || keywords[name] {
		return nil
	}

	replacement := &ast.Attribute{Value: obj, Attr: name}
	u := unparse.New(style)
	u.UnparseExpr(replacement)
	text, err := u.Generate()
	var fix *diagnostics.Fix
	if err == nil {
		fix = diagnostics.NewFix(call.Pos(), call.End(), text)
	}

	return diagnostics.NewfCode(call.Pos(), Code, fix,
		"getattr(x, %q) can be rewritten as attribute access", name)
}
