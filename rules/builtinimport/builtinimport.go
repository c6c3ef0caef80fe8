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

// Package builtinimport flags "from builtins import name"-shaped imports
// (and their historical six/io equivalents) where name is already
// available without any import: the import exists only for
// Python-2/3-straddling code and has no effect once that split no longer
// matters, so it can simply be deleted.
package builtinimport

import (
	"sort"
	"strings"

	"github.com/wisplang/wisp/ast"
	"github.com/wisplang/wisp/diagnostics"
	"github.com/wisplang/wisp/internal/identnorm"
)

// Code is the diagnostic code reported for a flagged import.
const Code = "WISP304"

// builtins is the set of always-available names whose explicit import
// from a compatibility shim module is pure dead weight.
var builtins = []string{
	"ascii", "bytes", "chr", "dict", "filter", "hex", "input", "int",
	"isinstance", "list", "map", "max", "min", "next", "object", "oct",
	"open", "pow", "range", "round", "str", "super", "zip",
}

var deprecatedNames = map[string][]string{
	"builtins":           builtins,
	"io":                 {"open"},
	"six":                {"callable", "next"},
	"six.moves":          {"filter", "input", "map", "range", "zip"},
	"six.moves.builtins": builtins,
}

// Check reports a diagnostic when imp imports one or more names from a
// known compatibility-shim module without an "as" alias, with a Fix that
// deletes the whole statement when every imported name is flagged, or
// narrows the import to the remaining names otherwise.
func Check(imp *ast.ImportFromStmt) diagnostics.Error {
	names, ok := deprecatedNames[imp.Module]
	if !ok {
		return nil
	}

	var flagged []string
	var kept []*ast.Alias
	for _, alias := range imp.Names {
		if alias.AsName == "" && identnorm.In(alias.Name, toSet(names)) {
			flagged = append(flagged, alias.Name)
			continue
		}
		kept = append(kept, alias)
	}
	if len(flagged) == 0 {
		return nil
	}
	sort.Strings(flagged)

	var fixText string
	if len(kept) == 0 {
		fixText = ""
	} else {
		var b strings.Builder
		b.WriteString("from ")
		b.WriteString(imp.Module)
		b.WriteString(" import ")
		for i, alias := range kept {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(alias.Name)
			if alias.AsName != "" {
				b.WriteString(" as ")
				b.WriteString(alias.AsName)
			}
		}
		fixText = b.String()
	}
	fix := diagnostics.NewFix(imp.Pos(), imp.End(), fixText)

	return diagnostics.NewfCode(imp.Pos(), Code, fix,
		"unnecessary import of builtin name(s) %s from %q", strings.Join(flagged, ", "), imp.Module)
}

func toSet(names []string) map[string]bool {
	s := make(map[string]bool, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}
