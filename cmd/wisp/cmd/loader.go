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

package cmd

import (
	"errors"
	"os"

	"github.com/wisplang/wisp/ast"
)

// Loader turns a source file's bytes into the statement tree rules.Run
// walks. Parsing source text into *ast.Stmt nodes is explicitly out of
// this repository's scope, so this package
// never implements one: Command takes a Loader from its caller the same
// way cmd/cue's formatter takes a pre-built *cue/ast.File from cue/load
// rather than tokenizing text itself.
type Loader func(path string, src []byte) ([]ast.Stmt, error)

// ErrNoParser is returned by the default Loader used when no embedder
// supplies one. It identifies itself clearly rather than panicking so a
// user running this repository's own binary as-is gets an explanatory
// message instead of a stack trace.
var ErrNoParser = errors.New("wisp: no source parser configured; this build only ships the lint-rule and unparse core")

// defaultLoader is wired into the root command when the caller (a real
// embedder's main package) doesn't supply its own. It always fails with
// ErrNoParser.
func defaultLoader(string, []byte) ([]ast.Stmt, error) {
	return nil, ErrNoParser
}

// readFile is its own function so tests can substitute it without
// touching the real filesystem.
var readFile = os.ReadFile
