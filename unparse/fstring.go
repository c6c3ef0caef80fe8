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
	"github.com/wisplang/wisp/literal"
	"github.com/wisplang/wisp/token"
)

// writeJoinedStr is the f-string sub-unparser's entry point. It never
// escapes anything itself: the body — literal text pieces
// with braces doubled, interleaved with rendered "{expr!conv:spec}"
// pieces — is assembled raw in an independent sub-job first, and only the
// complete raw body is run through the ordinary string-literal quoter.
// That single pass is what makes the outer quote choice automatic: if a
// nested replacement field happens to render a string literal using the
// preferred quote, the assembled body contains that quote character, and
// quoting the body as a whole switches to the alternate quote exactly as
// it would for any other string value.
func (u *Unparser) writeJoinedStr(js *ast.JoinedStr) {
	body := u.renderFStringBody(js)
	u.write("f")
	u.write(literal.String.WithQuote(u.style.Quote).Quote(body))
}

// renderFStringBody runs writeFStringBody in a fresh sub-job sharing u's
// style and returns the raw (unquoted, unescaped) accumulated text.
func (u *Unparser) renderFStringBody(js *ast.JoinedStr) string {
	sub := New(u.style)
	sub.writeFStringBody(js)
	out, _ := sub.Generate()
	return out
}

// writeFStringBody writes js's pieces directly to u's buffer with no
// quoting of its own. It is used both by renderFStringBody's throwaway
// sub-job and, recursively, to inline a nested format spec, which renders
// in place, without its own surrounding quotes.
func (u *Unparser) writeFStringBody(js *ast.JoinedStr) {
	for _, part := range js.Values {
		switch p := part.(type) {
		case *ast.Constant:
			u.write(doubleBraces(p.StringValue))
		case *ast.FormattedValue:
			u.writeFormattedValue(p)
		}
	}
}

// doubleBraces escapes literal '{' and '}' in f-string text so they aren't
// mistaken for a replacement field's delimiters.
func doubleBraces(s string) string {
	s = strings.ReplaceAll(s, "{", "{{")
	return strings.ReplaceAll(s, "}", "}}")
}

// writeFormattedValue renders one "{expr!conv:spec}" replacement field.
// The value is unparsed in an independent sub-job (rather than inline
// through u) so its leading character can be inspected: a value that
// itself begins with "{" — a dict or set display — needs a disambiguating
// space, or "{{'a': 1}}" would misread as an escaped literal brace.
func (u *Unparser) writeFormattedValue(fv *ast.FormattedValue) {
	exprText := u.renderSubExpr(fv.Value, orTestLevel)
	if strings.HasPrefix(exprText, "{") {
		u.write("{ ")
	} else {
		u.write("{")
	}
	u.write(exprText)
	if fv.Conversion != 0 {
		u.write("!")
		u.write(string(fv.Conversion))
	}
	if fv.FormatSpec != nil {
		u.write(":")
		switch spec := fv.FormatSpec.(type) {
		case *ast.JoinedStr:
			u.writeFStringBody(spec)
		case *ast.Constant:
			u.write(doubleBraces(spec.StringValue))
		}
	}
	u.write("}")
}

// renderSubExpr unparses e in a freshly created job sharing u's style, and
// returns the resulting text. Independence from u's buffer is what lets
// writeFormattedValue peek at the rendered text before committing it.
func (u *Unparser) renderSubExpr(e ast.Expr, minPrec token.Precedence) string {
	sub := New(u.style)
	sub.writeExpr(e, minPrec)
	out, _ := sub.Generate()
	return out
}
