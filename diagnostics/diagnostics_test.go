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

package diagnostics

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/wisplang/wisp/token"
)

func TestNewfCode_carriesCodeAndFix(t *testing.T) {
	fix := NewFix(token.NoPos, token.NoPos, "x.attr")
	err := NewfCode(token.NoPos, "WISP101", fix, "getattr with constant name")

	qt.Assert(t, qt.Equals(err.Code(), "WISP101"))
	qt.Assert(t, qt.Equals(err.Fix(), fix))
	qt.Assert(t, qt.Equals(err.Error(), "getattr with constant name"))
}

func TestList_AddAndErr(t *testing.T) {
	var p list
	qt.Assert(t, qt.IsNil(p.Err()))

	p.AddNewf(token.NoPos, "first")
	p.AddNewf(token.NoPos, "second")
	qt.Assert(t, qt.HasLen(p, 2))
	qt.Assert(t, qt.IsNotNil(p.Err()))
}

func TestList_Reset(t *testing.T) {
	var p list
	p.AddNewf(token.NoPos, "boom")
	p.Reset()
	qt.Assert(t, qt.HasLen(p, 0))
}

func TestList_RemoveMultiples_keepsDistinctMessages(t *testing.T) {
	var p list
	p.AddNewf(token.NoPos, "a")
	p.AddNewf(token.NoPos, "b")
	p.RemoveMultiples()
	qt.Assert(t, qt.HasLen(p, 2))
}

func TestList_Error_reportsCountOfExtras(t *testing.T) {
	var p list
	p.AddNewf(token.NoPos, "first")
	p.AddNewf(token.NoPos, "second")
	p.AddNewf(token.NoPos, "third")
	qt.Assert(t, qt.Equals(p.Error(), "first (and 2 more errors)"))
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		wantW string
	}{{
		name:  "SimplePromoted",
		err:   Promote(fmt.Errorf("hello"), "msg"),
		wantW: "msg: hello\n",
	}, {
		name:  "PromoteWithPercent",
		err:   Promote(fmt.Errorf("hello"), "msg%s"),
		wantW: "msg%s: hello\n",
	}, {
		name:  "PromoteWithEmptyString",
		err:   Promote(fmt.Errorf("hello"), ""),
		wantW: "hello\n",
	}, {
		name:  "TwoErrors",
		err:   Append(Promote(fmt.Errorf("hello"), "x"), Promote(fmt.Errorf("goodbye"), "y")),
		wantW: "x: hello\ny: goodbye\n",
	}, {
		name:  "WrappedSingle",
		err:   fmt.Errorf("wrap: %w", Promote(fmt.Errorf("hello"), "x")),
		wantW: "x: hello\n",
	}, {
		name: "WrappedMultiple",
		err: fmt.Errorf("wrap: %w",
			Append(Promote(fmt.Errorf("hello"), "x"), Promote(fmt.Errorf("goodbye"), "y")),
		),
		wantW: "x: hello\ny: goodbye\n",
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &bytes.Buffer{}
			Print(w, tt.err, nil)
			qt.Assert(t, qt.Equals(w.String(), tt.wantW))
		})
	}
}
