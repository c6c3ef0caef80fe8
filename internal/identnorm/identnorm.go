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

// Package identnorm normalizes identifier text to NFC before rule plugins
// compare it against a table of known names. Source text can spell the
// same identifier with a decomposed Unicode sequence (a base letter
// followed by a combining mark) or a single precomposed code point; without
// normalization, "café" and "café" compare unequal even though every
// Python-like tokenizer treats them as the same name.
package identnorm

import "golang.org/x/text/unicode/norm"

// Equal reports whether a and b name the same identifier once both are
// brought to Unicode Normalization Form C.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Normalize returns s in Normalization Form C. Plain ASCII identifiers (the
// overwhelming majority) pass through norm.NFC.String unchanged; it only
// does work when s actually contains a decomposed sequence.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// In reports whether the normalized form of name appears in table. table's
// entries are assumed to already be in NFC, as every literal Go string
// constant naming a builtin is.
func In(name string, table map[string]bool) bool {
	return table[Normalize(name)]
}
