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

// Package literal encodes string and bytes values as quoted, escaped source
// literals. The shape — an immutable Form value with With-prefixed builder
// methods and Quote/Append/AppendEscaped entry points — mirrors cue's own
// literal package; the escaping rules themselves are the target language's.
package literal

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Form describes how to quote and escape a literal. The zero value is not
// meaningful; use String or Bytes.
type Form struct {
	quote     byte // '\'' or '"'
	forBytes  bool
	asciiOnly bool
}

// String quotes text as a string literal, preferring double quotes.
var String = Form{quote: '"'}

// Bytes quotes text as a bytes literal ("b'...'"), preferring single quotes.
var Bytes = Form{quote: '\'', forBytes: true}

// WithQuote returns a Form that prefers q ('\'' or '"') over the default.
func (f Form) WithQuote(q byte) Form {
	f.quote = q
	return f
}

// WithASCIIOnly returns a Form that escapes every rune above U+007E, even
// if it is printable.
func (f Form) WithASCIIOnly() Form {
	f.asciiOnly = true
	return f
}

// IsBytes reports whether f quotes byte strings rather than text.
func (f Form) IsBytes() bool { return f.forBytes }

// Quote returns s as a complete literal: prefix (if any, handled by the
// caller), opening quote, escaped content, closing quote.
func (f Form) Quote(s string) string {
	return string(f.Append(nil, s))
}

// Append appends the quoted, escaped form of s to buf and returns the
// extended buffer.
func (f Form) Append(buf []byte, s string) []byte {
	q := f.quote
	if f.needsAltQuote(s) {
		q = altQuote(q)
	}
	buf = append(buf, q)
	buf = f.appendEscaped(buf, s, q)
	buf = append(buf, q)
	return buf
}

// AppendEscaped appends the escaped content of s to buf without
// surrounding quotes. This is what the unparser's f-string sub-encoder
// calls for the literal-text pieces of a JoinedStr, since the quote and
// the '{'/'}' doubling are handled by the caller.
func (f Form) AppendEscaped(buf []byte, s string) []byte {
	return f.appendEscaped(buf, s, f.quote)
}

func altQuote(q byte) byte {
	if q == '"' {
		return '\''
	}
	return '"'
}

// needsAltQuote reports whether switching to the alternate quote would
// remove the need to escape any quote character at all: s contains the
// preferred quote but not the alternate.
func (f Form) needsAltQuote(s string) bool {
	hasPreferred := strings.IndexByte(s, f.quote) >= 0
	hasAlt := strings.IndexByte(s, altQuote(f.quote)) >= 0
	return hasPreferred && !hasAlt
}

func (f Form) appendEscaped(buf []byte, s string, quote byte) []byte {
	if f.forBytes {
		return appendEscapedBytes(buf, s, quote)
	}
	return f.appendEscapedString(buf, s, quote)
}

func appendEscapedBytes(buf []byte, s string, quote byte) []byte {
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b == quote || b == '\\':
			buf = append(buf, '\\', b)
		case b == '\n':
			buf = append(buf, '\\', 'n')
		case b == '\t':
			buf = append(buf, '\\', 't')
		case b == '\r':
			buf = append(buf, '\\', 'r')
		case b == '\a':
			buf = append(buf, '\\', 'a')
		case b == '\b':
			buf = append(buf, '\\', 'b')
		case b == '\f':
			buf = append(buf, '\\', 'f')
		case b == '\v':
			buf = append(buf, '\\', 'v')
		case b < 0x20 || b > 0x7e:
			buf = append(buf, fmt.Sprintf(`\x%02x`, b)...)
		default:
			buf = append(buf, b)
		}
	}
	return buf
}

func (f Form) appendEscapedString(buf []byte, s string, quote byte) []byte {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			// Invalid UTF-8: emit the Unicode replacement character. The
			// caller is responsible for reporting this as lossy.
			buf = append(buf, "�"...)
			i++
			continue
		}
		i += size

		switch {
		case byte(r) == quote && r < utf8.RuneSelf:
			buf = append(buf, '\\', byte(r))
		case r == '\\':
			buf = append(buf, '\\', '\\')
		case r == '\n':
			buf = append(buf, '\\', 'n')
		case r == '\t':
			buf = append(buf, '\\', 't')
		case r == '\r':
			buf = append(buf, '\\', 'r')
		case r == '\a':
			buf = append(buf, '\\', 'a')
		case r == '\b':
			buf = append(buf, '\\', 'b')
		case r == '\f':
			buf = append(buf, '\\', 'f')
		case r == '\v':
			buf = append(buf, '\\', 'v')
		case r < 0x20 || r == 0x7f:
			buf = append(buf, fmt.Sprintf(`\u%04x`, r)...)
		case f.asciiOnly && r > 0x7e:
			buf = appendUnicodeEscape(buf, r)
		case !f.asciiOnly && r > 0x7e && !strconv.IsPrint(r):
			buf = appendUnicodeEscape(buf, r)
		default:
			buf = utf8.AppendRune(buf, r)
		}
	}
	return buf
}

func appendUnicodeEscape(buf []byte, r rune) []byte {
	if r > 0xffff {
		return append(buf, fmt.Sprintf(`\U%08x`, r)...)
	}
	return append(buf, fmt.Sprintf(`\u%04x`, r)...)
}

// Unquote parses back a quoted literal produced by Quote, for round-trip
// tests. It understands both the "..."/'...' string form and the
// b'...'/b"..." bytes form with the escape set Append produces.
func Unquote(lit string) (string, error) {
	if lit == "" {
		return "", fmt.Errorf("literal: empty input")
	}
	s := lit
	if s[0] == 'b' || s[0] == 'B' {
		s = s[1:]
	}
	if len(s) < 2 {
		return "", fmt.Errorf("literal: %q too short to be quoted", lit)
	}
	quote := s[0]
	if s[len(s)-1] != quote {
		return "", fmt.Errorf("literal: mismatched quotes in %q", lit)
	}
	body := s[1 : len(s)-1]

	var out strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			out.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", fmt.Errorf("literal: dangling escape in %q", lit)
		}
		switch e := body[i]; e {
		case 'n':
			out.WriteByte('\n')
		case 't':
			out.WriteByte('\t')
		case 'r':
			out.WriteByte('\r')
		case 'a':
			out.WriteByte('\a')
		case 'b':
			out.WriteByte('\b')
		case 'f':
			out.WriteByte('\f')
		case 'v':
			out.WriteByte('\v')
		case '\\', '\'', '"':
			out.WriteByte(e)
		case 'x':
			if i+2 >= len(body) {
				return "", fmt.Errorf("literal: short \\x escape in %q", lit)
			}
			n, err := strconv.ParseUint(body[i+1:i+3], 16, 8)
			if err != nil {
				return "", err
			}
			out.WriteByte(byte(n))
			i += 2
		case 'u':
			if i+4 >= len(body) {
				return "", fmt.Errorf("literal: short \\u escape in %q", lit)
			}
			n, err := strconv.ParseUint(body[i+1:i+5], 16, 32)
			if err != nil {
				return "", err
			}
			out.WriteRune(rune(n))
			i += 4
		case 'U':
			if i+8 >= len(body) {
				return "", fmt.Errorf("literal: short \\U escape in %q", lit)
			}
			n, err := strconv.ParseUint(body[i+1:i+9], 16, 32)
			if err != nil {
				return "", err
			}
			out.WriteRune(rune(n))
			i += 8
		default:
			return "", fmt.Errorf("literal: unknown escape \\%c in %q", e, lit)
		}
	}
	return out.String(), nil
}
