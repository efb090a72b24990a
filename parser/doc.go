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

// Package parser turns line-oriented assembly source text into a
// source.File the assembler package can lower. It is a hand-written
// recursive-descent parser over a text/scanner token stream, in the
// style of a classic single-pass assembler front-end: one token of
// lookahead, precedence climbing for the arithmetic grammar, and
// position-tagged syntax errors.
package parser
