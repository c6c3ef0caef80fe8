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
	"strconv"

	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/literal"
)

// writeConstant renders every ast.Constant kind, wiring each one through
// the literal package rather than hand-rolling escaping here.
func (u *Unparser) writeConstant(c *ast.Constant) {
	switch c.Kind {
	case ast.ConstInt:
		u.write(c.IntText)
	case ast.ConstFloat:
		u.write(literal.FormatFloat(c.Float))
	case ast.ConstComplex:
		u.write(literal.FormatComplex(c.Complex))
	case ast.ConstBool:
		u.write(literal.FormatBool(c.Bool))
	case ast.ConstNone:
		u.write("None")
	case ast.ConstEllipsis:
		u.write("...")
	case ast.ConstString:
		u.write(c.StringPrefix)
		u.write(literal.String.WithQuote(u.style.Quote).Quote(c.StringValue))
	case ast.ConstBytes:
		u.write("b")
		u.write(literal.Bytes.Quote(c.StringValue))
	default:
		u.write(strconv.Itoa(int(c.Kind)))
	}
}
