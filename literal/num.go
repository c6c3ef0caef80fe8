// Copyright 2020 CUE Authors
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

package literal

import (
	"math"
	"strconv"
	"strings"
)

// infinityLiteral is a parse-reversible token: a float literal large
// enough that every target-language parser rounds it to +/-Inf on an
// IEEE-754 double, without the grammar needing a dedicated "inf" spelling.
const infinityLiteral = "1e309"

// FormatFloat renders f as the canonical textual form of a float constant.
func FormatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return infinityLiteral
	case math.IsInf(f, -1):
		return "-" + infinityLiteral
	case math.IsNaN(f):
		return "float('nan')"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// FormatComplex renders c as "<real>+<imag>j" (just "<imag>j" when the real
// part is zero), substituting infinityLiteral for either component that is
// infinite.
func FormatComplex(c complex128) string {
	re, im := real(c), imag(c)
	if re == 0 {
		return FormatFloat(im) + "j"
	}
	sign := "+"
	imText := FormatFloat(im)
	if strings.HasPrefix(imText, "-") {
		sign = ""
	}
	return FormatFloat(re) + sign + imText + "j"
}

// FormatBool renders the canonical spelling of a boolean constant.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
