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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/wisplang/wisp/unparse"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	qt.Assert(t, qt.Equals(cfg.Style.IndentUnit, unparse.DefaultStyle.IndentUnit))
	qt.Assert(t, qt.IsTrue(cfg.Enabled("WISP101")))
}

func TestResolveOverridesStyle(t *testing.T) {
	indent := 2
	quote := "'"
	opts := &Options{Indent: &indent, Quote: &quote}
	cfg := Resolve(opts)
	qt.Assert(t, qt.Equals(cfg.Style.IndentUnit, "  "))
	qt.Assert(t, qt.Equals(cfg.Style.Quote, byte('\'')))
	qt.Assert(t, qt.Equals(cfg.Style.LineEnding, unparse.DefaultStyle.LineEnding))
}

func TestResolveSelectRestrictsToListedCodes(t *testing.T) {
	opts := &Options{Select: []string{"WISP101", "WISP203"}}
	cfg := Resolve(opts)
	qt.Assert(t, qt.IsTrue(cfg.Enabled("WISP101")))
	qt.Assert(t, qt.IsFalse(cfg.Enabled("WISP999")))
}

func TestResolveIgnoreWinsOverSelectAll(t *testing.T) {
	opts := &Options{Ignore: []string{"WISP101"}}
	cfg := Resolve(opts)
	qt.Assert(t, qt.IsFalse(cfg.Enabled("WISP101")))
	qt.Assert(t, qt.IsTrue(cfg.Enabled("WISP203")))
}

func TestResolveIgnoreWinsOverSelect(t *testing.T) {
	opts := &Options{Select: []string{"WISP101", "WISP203"}, Ignore: []string{"WISP101"}}
	cfg := Resolve(opts)
	qt.Assert(t, qt.IsFalse(cfg.Enabled("WISP101")))
	qt.Assert(t, qt.IsTrue(cfg.Enabled("WISP203")))
}

func TestLoadFindsAncestorFile(t *testing.T) {
	root := t.TempDir()
	err := os.WriteFile(filepath.Join(root, FileName), []byte("indent: 2\nquote: \"'\"\n"), 0o644)
	qt.Assert(t, qt.IsNil(err))

	sub := filepath.Join(root, "a", "b")
	qt.Assert(t, qt.IsNil(os.MkdirAll(sub, 0o755)))

	cfg, err := Load(sub)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(cfg.Style.IndentUnit, "  "))
}

func TestLoadFallsBackToDefaultWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(cfg.Style.IndentUnit, unparse.DefaultStyle.IndentUnit))
}
