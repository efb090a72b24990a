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

// Package command is the typed representation of assembly source: the
// nine IntCode opcodes, the parameter addressing modes, the composite
// pseudo-instruction directives the assembler lowers, and labels.
//
// Instruction and every Directive implement a Check method; Label has
// none. Check is advisory: it flags
// shapes that can never be legal (wrong arity, a write through an
// Immediate parameter, a negative Absolute address that is already
// known at parse time) but the assembler does not depend on it having
// been called; it exists so a parser or test can validate a command in
// isolation, before label values are known.
package command
