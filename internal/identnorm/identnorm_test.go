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

package identnorm

import (
	"testing"

	"github.com/go-quicktest/qt"
)

// precomposed and decomposed spell the same name, "cafe" with an accented
// e: one as a single code point (U+00E9), the other as "e" followed by a
// combining acute accent (U+0065 U+0301). A raw string compare treats them
// as different identifiers; Equal must not.
const (
	precomposed = "café"
	decomposed  = "café"
)

func TestEqualAcrossDecomposedAndPrecomposed(t *testing.T) {
	qt.Assert(t, qt.IsFalse(precomposed == decomposed))
	qt.Assert(t, qt.IsTrue(Equal(precomposed, decomposed)))
}

func TestEqualFalseForDifferentNames(t *testing.T) {
	qt.Assert(t, qt.IsFalse(Equal("getattr", "setattr")))
}

func TestInMatchesNormalizedTable(t *testing.T) {
	table := map[string]bool{precomposed: true}
	qt.Assert(t, qt.IsTrue(In(decomposed, table)))
}

func TestInMissesUnknownName(t *testing.T) {
	table := map[string]bool{"getattr": true}
	qt.Assert(t, qt.IsFalse(In("setattr", table)))
}
