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
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQuote(t *testing.T) {
	testCases := []struct {
		form Form
		in   string
		out  string
	}{
		{String, "hello", `"hello"`},
		{String, "he\"llo", `'he"llo'`},
		{String, "it's", `"it's"`},
		{String, "both \" and '", `"both \" and '"`},
		{String, "\x00", "\"\\u0000\""},
		{String, "\x04", "\"\\u0004\""},
		{Bytes, "\x04", "'\\x04'"},
		{String, "\a\b\f\r\n\t\v", `"\a\b\f\r\n\t\v"`},
		{String, "\"", `'"'`},
		{String, "\\", `"\\"`},
		{String, "☺", "\"☺\""},
		{String.WithASCIIOnly(), "☺", "\"\\u263a\""},
		{String, "\U0010ffff", `"\U0010ffff"`},
		{Bytes, "abc\xffdef", `'abc\xffdef'`},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%q", tc.in), func(t *testing.T) {
			got := tc.form.Quote(tc.in)
			if got != tc.out {
				t.Errorf("Quote: %s", cmp.Diff(tc.out, got))
			}
			got = string(tc.form.Append(nil, tc.in))
			if got != tc.out {
				t.Errorf("Append: %s", cmp.Diff(tc.out, got))
			}
		})
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	cases := []string{"hello", "he said \"hi\"", "tab\there", "both \" and '"}
	for _, in := range cases {
		q := String.Quote(in)
		out, err := Unquote(q)
		if err != nil {
			t.Fatalf("Unquote(%q): %v", q, err)
		}
		if out != in {
			t.Errorf("round-trip: got %q, want %q", out, in)
		}
	}
}

func TestQuotePrefersAlternate(t *testing.T) {
	// Contains only the preferred quote: switch to the alternate rather
	// than escape.
	got := String.Quote(`it has "quotes"`)
	if got != `'it has "quotes"'` {
		t.Errorf("got %q", got)
	}

	// Contains both quote characters: keep the preferred quote and escape.
	got = String.Quote(`has "both" and 'both'`)
	if got != `"has \"both\" and 'both'"` {
		t.Errorf("got %q", got)
	}
}
