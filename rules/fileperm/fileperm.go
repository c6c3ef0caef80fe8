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

// Package fileperm flags os.chmod calls whose mode argument grants
// world-write or group-execute permission: a classic overly-permissive
// file mode, usually a typo for a narrower octal constant.
package fileperm

import (
	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/diagnostics"
)

// Code is the diagnostic code reported for a flagged call.
const Code = "WISP103"

const (
	writeWorld   = 0o2
	executeGroup = 0o10
)

// pystatMapping covers the small slice of stat module members whose
// numeric value participates in common chmod expressions; an attribute
// this table doesn't know is simply treated as "value unknown" rather
// than failing the check.
var pystatMapping = map[string]int64{
	"stat.S_IWOTH": 0o2,
	"stat.S_IXGRP": 0o10,
	"stat.S_IRWXO": 0o7,
	"stat.S_IRWXG": 0o70,
	"stat.S_IWGRP": 0o20,
	"stat.S_IRGRP": 0o40,
}

// Check reports a diagnostic when call is an "os.chmod(path, mode)"
// invocation whose mode grants world-write or group-execute access.
// module/function resolution (tracking "from os import chmod" aliases) is
// the caller's job; Check only looks at the call shape and argument value.
func Check(call *ast.Call, isOSChmod bool) diagnostics.Error {
	if !isOSChmod {
		return nil
	}
	mode := modeArg(call)
	if mode == nil {
		return nil
	}
	value, ok := intValue(mode)
	if !ok {
		return nil
	}
	if value&writeWorld == 0 && value&executeGroup == 0 {
		return nil
	}
	return diagnostics.NewfCode(call.Pos(), Code, nil,
		"file permission %#o grants world-write or group-execute access", value)
}

// modeArg returns the positional or keyword "mode" argument of a chmod
// call, or nil if the call doesn't supply one.
func modeArg(call *ast.Call) ast.Expr {
	if len(call.Args) > 1 {
		return call.Args[1]
	}
	for _, kw := range call.Keywords {
		if kw.Name == "mode" {
			return kw.Value
		}
	}
	return nil
}

// intValue resolves e to a constant integer value, following the same
// small evaluator the original check used: literal ints, known stat.*
// attributes, and bitwise combinations of either.
func intValue(e ast.Expr) (int64, bool) {
	switch v := e.(type) {
	case *ast.Constant:
		if v.Kind != ast.ConstInt {
			return 0, false
		}
		return parseIntText(v.IntText)
	case *ast.Attribute:
		path, ok := attributePath(v)
		if !ok {
			return 0, false
		}
		val, ok := pystatMapping[path]
		return val, ok
	case *ast.BinOp:
		left, ok := intValue(v.Left)
		if !ok {
			return 0, false
		}
		right, ok := intValue(v.Right)
		if !ok {
			return 0, false
		}
		switch v.Op.String() {
		case "&":
			return left & right, true
		case "|":
			return left | right, true
		case "^":
			return left ^ right, true
		}
	}
	return 0, false
}

// attributePath composes a dotted name like "stat.S_IWOTH" out of a
// Name.attr Attribute chain. Any non-Ident base fails the match.
func attributePath(attr *ast.Attribute) (string, bool) {
	base, ok := attr.Value.(*ast.Ident)
	if !ok {
		return "", false
	}
	return base.Name + "." + attr.Attr, true
}

// parseIntText parses a decimal, hex, octal, or binary literal's text the
// way the parser already tokenized it, without re-deriving the prefix
// rules the lexer (out of this repository's scope) already enforced.
func parseIntText(text string) (int64, bool) {
	var neg bool
	if len(text) > 0 && text[0] == '-' {
		neg, text = true, text[1:]
	}
	base := 10
	switch {
	case hasPrefix(text, "0x"), hasPrefix(text, "0X"):
		base, text = 16, text[2:]
	case hasPrefix(text, "0o"), hasPrefix(text, "0O"):
		base, text = 8, text[2:]
	case hasPrefix(text, "0b"), hasPrefix(text, "0B"):
		base, text = 2, text[2:]
	}
	var v int64
	for _, r := range text {
		if r == '_' {
			continue
		}
		d, ok := digitValue(r)
		if !ok || d >= base {
			return 0, false
		}
		v = v*int64(base) + int64(d)
	}
	if neg {
		v = -v
	}
	return v, true
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

func digitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}
