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

package builtinimport

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/wisplang/wisp/ast"
)

func TestFlagsAndDeletesSoleBuiltinImport(t *testing.T) {
	imp := &ast.ImportFromStmt{
		Module: "builtins",
		Names:  []*ast.Alias{{Name: "str"}},
	}
	err := Check(imp)
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.Equals(err.Code(), Code))
	qt.Assert(t, qt.Equals(err.Fix().Text, ""))
}

func TestFlagsAndNarrowsPartialImport(t *testing.T) {
	imp := &ast.ImportFromStmt{
		Module: "builtins",
		Names:  []*ast.Alias{{Name: "str"}, {Name: "frobnicate"}},
	}
	err := Check(imp)
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.Equals(err.Fix().Text, "from builtins import frobnicate"))
}

func TestIgnoresAliasedImport(t *testing.T) {
	imp := &ast.ImportFromStmt{
		Module: "builtins",
		Names:  []*ast.Alias{{Name: "str", AsName: "string_type"}},
	}
	err := Check(imp)
	qt.Assert(t, qt.IsNil(err))
}

func TestIgnoresUnrelatedModule(t *testing.T) {
	imp := &ast.ImportFromStmt{
		Module: "collections",
		Names:  []*ast.Alias{{Name: "OrderedDict"}},
	}
	err := Check(imp)
	qt.Assert(t, qt.IsNil(err))
}

func TestSixMovesModule(t *testing.T) {
	imp := &ast.ImportFromStmt{
		Module: "six.moves",
		Names:  []*ast.Alias{{Name: "range"}},
	}
	err := Check(imp)
	qt.Assert(t, qt.IsNotNil(err))
}
