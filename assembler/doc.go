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

// Package assembler lowers a source.File into a flat sequence of
// integers runnable by the vm package.
//
// The algorithm is a work-stack expansion: commands are popped off a
// stack (initially the source body, in order) one at a time. A Label
// binds the current code length; an Instruction emits its opcode word
// and parameters; a Directive either emits words directly (INTS, ZEROS) or
// lowers into replacement commands that are pushed back onto the
// stack so they are processed next, in order. Once the stack drains,
// every emitted word is simplified against the accumulated label
// values; any word left unresolved is an UnresolvedReferenceError.
package assembler
