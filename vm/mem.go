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

package vm

import "github.com/pkg/errors"

// errNegativeAddress is the internal sentinel read/write use to signal
// an out-of-domain address; Run converts it into a Fault that carries
// the current pc/opcode.
var errNegativeAddress = errors.New(ReasonNegativeAddress)

// read returns the value at addr, or 0 without growing memory if addr
// lies past the current length (spec.md §4.E).
func (i *Instance) read(addr int64) (int64, error) {
	if addr < 0 {
		return 0, errNegativeAddress
	}
	if addr >= int64(len(i.mem)) {
		return 0, nil
	}
	return i.mem[addr], nil
}

// write stores v at addr, growing memory with zeros up to and
// including addr only if v is non-zero (spec.md §4.E); writing 0 past
// the end is a no-op that never grows memory.
func (i *Instance) write(addr, v int64) error {
	if addr < 0 {
		return errNegativeAddress
	}
	if addr >= int64(len(i.mem)) {
		if v == 0 {
			return nil
		}
		grown := make([]int64, addr+1)
		copy(grown, i.mem)
		i.mem = grown
	}
	i.mem[addr] = v
	return nil
}

// DecodeString reads the null-terminated run of code points starting
// at start and returns it as a Go string (bytes, not runes: IntCode
// programs conventionally store one code point per cell regardless of
// encoding, and this mirrors how INTS "..." terminates its output).
func (i *Instance) DecodeString(start int64) string {
	pos := start
	end := pos
	for end >= 0 && end < int64(len(i.mem)) && i.mem[end] != 0 {
		end++
	}
	if pos < 0 || pos >= int64(len(i.mem)) {
		return ""
	}
	b := make([]byte, 0, end-pos)
	for _, c := range i.mem[pos:end] {
		b = append(b, byte(c))
	}
	return string(b)
}

// EncodeString writes s at start, one byte per cell, followed by a
// terminating zero cell, growing memory as needed.
func (i *Instance) EncodeString(start int64, s string) error {
	pos := start
	for _, c := range []byte(s) {
		if err := i.write(pos, int64(c)); err != nil {
			return err
		}
		pos++
	}
	return i.write(pos, 0)
}
