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

package parser

import (
	"io"
	"text/scanner"
	"unicode"
)

// lexer wraps text/scanner.Scanner, keeping newlines significant (this
// grammar is line-oriented, unlike Go's) and stripping ';' comments by
// hand since the scanner only knows the Go comment syntaxes.
type lexer struct {
	s scanner.Scanner
}

func newLexer(name string, r io.Reader) *lexer {
	l := &lexer{}
	l.s.Init(r)
	l.s.Filename = name
	l.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanChars | scanner.ScanStrings
	l.s.Whitespace = scanner.GoWhitespace &^ (1 << '\n')
	l.s.IsIdentRune = isIdentRune
	l.s.Error = func(*scanner.Scanner, string) {} // surfaced via the returned token text instead
	return l
}

// isIdentRune matches spec.md's name grammar, [A-Za-z_&][A-Za-z0-9_$]*,
// which is wider than Go's own identifier syntax: '&' leads an
// assembler-internal name (expr.Internal) and '$' may appear anywhere
// after the first rune.
func isIdentRune(ch rune, i int) bool {
	switch {
	case unicode.IsLetter(ch) || ch == '_':
		return true
	case ch == '&':
		return i == 0
	case unicode.IsDigit(ch) || ch == '$':
		return i > 0
	default:
		return false
	}
}

// next returns the next significant token, silently consuming ';'
// line comments.
func (l *lexer) next() rune {
	for {
		tok := l.s.Scan()
		if tok != ';' {
			return tok
		}
		for l.s.Peek() != '\n' && l.s.Peek() != scanner.EOF {
			l.s.Next()
		}
	}
}
