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
	"fmt"
	"text/scanner"

	"github.com/pkg/errors"
)

// SyntaxError reports a parse failure at a (line, token) position, per
// spec.md's external-interfaces error surface. Cause carries the
// underlying error (with a pkg/errors stack trace) so callers can
// still errors.As/Is past the position wrapper.
type SyntaxError struct {
	Pos   scanner.Position
	Cause error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Cause)
}

func (e *SyntaxError) Unwrap() error { return e.Cause }

func (p *Parser) errorf(format string, args ...interface{}) error {
	return &SyntaxError{Pos: p.pos, Cause: errors.Errorf(format, args...)}
}

func (p *Parser) wrap(err error) error {
	return &SyntaxError{Pos: p.pos, Cause: err}
}
