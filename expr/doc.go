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

// Package expr implements the symbolic integer expression algebra used
// by the assembler: constants, named references and the four binary
// arithmetic operators, with lazy substitution of references and
// integer folding.
//
// Expressions are immutable values compared structurally by Equal; Sum
// and Multiply are commutative under Equal, Subtract and Divide are not.
// The package defines no hash function: Go's own == and map keys
// compare Sum and Multiply operands in order.
package expr
