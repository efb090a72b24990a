// This file is part of ic4.
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

package escape

import (
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// DecodeChar decodes the body of a 'c' character constant (the text
// between, but not including, the quotes) into a single code point.
func DecodeChar(body string) (int64, error) {
	r, rest, err := decodeOne(body)
	if err != nil {
		return 0, err
	}
	if rest != "" {
		return 0, errors.Errorf("character constant %q holds more than one code point", body)
	}
	return r, nil
}

// DecodeString decodes the body of a "..." string constant (the text
// between, but not including, the quotes) into a slice of code points.
//
// If terminate is true, a trailing 0 is appended, matching the
// C-style null termination this assembler's INTS directive expects
// when consuming a string constant (the parser always passes true for
// INTS "...").
func DecodeString(body string, terminate bool) ([]int64, error) {
	var out []int64
	rest := body
	for rest != "" {
		r, next, err := decodeOne(rest)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
		rest = next
	}
	if terminate {
		out = append(out, 0)
	}
	return out, nil
}

// decodeOne decodes one literal character or escape sequence from the
// front of s and returns its code point plus the unconsumed remainder.
func decodeOne(s string) (int64, string, error) {
	if s == "" {
		return 0, "", errors.New("unexpected end of literal")
	}
	if s[0] != '\\' {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size <= 1 {
			return 0, "", errors.Errorf("invalid UTF-8 in literal %q", s)
		}
		if r == '\n' {
			return 0, "", errors.New("literal character constants cannot contain a raw newline")
		}
		return int64(r), s[size:], nil
	}
	if len(s) < 2 {
		return 0, "", errors.New("trailing backslash in literal")
	}
	switch c := s[1]; c {
	case 'a':
		return 7, s[2:], nil
	case 'b':
		return 8, s[2:], nil
	case 'f':
		return 12, s[2:], nil
	case 'n':
		return 10, s[2:], nil
	case 'r':
		return 13, s[2:], nil
	case 't':
		return 9, s[2:], nil
	case 'v':
		return 11, s[2:], nil
	case '\\':
		return '\\', s[2:], nil
	case '\'':
		return '\'', s[2:], nil
	case '"':
		return '"', s[2:], nil
	case '?':
		return '?', s[2:], nil
	case 'x':
		return decodeHex(s[2:])
	default:
		if c >= '0' && c <= '7' {
			return decodeOctal(s[1:])
		}
		return 0, "", errors.Errorf("unknown escape sequence \\%c", c)
	}
}

// decodeHex consumes one or more hex digits (\xH+).
func decodeHex(s string) (int64, string, error) {
	n := 0
	for n < len(s) && isHexDigit(s[n]) {
		n++
	}
	if n == 0 {
		return 0, "", errors.New(`\x escape requires at least one hex digit`)
	}
	v, err := strconv.ParseInt(s[:n], 16, 64)
	if err != nil {
		return 0, "", errors.Wrap(err, `invalid \x escape`)
	}
	return v, s[n:], nil
}

// decodeOctal consumes one to three octal digits starting at s[0].
func decodeOctal(s string) (int64, string, error) {
	n := 0
	for n < len(s) && n < 3 && s[n] >= '0' && s[n] <= '7' {
		n++
	}
	v, err := strconv.ParseInt(s[:n], 8, 64)
	if err != nil {
		return 0, "", errors.Wrap(err, "invalid octal escape")
	}
	return v, s[n:], nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
