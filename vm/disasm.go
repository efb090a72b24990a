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

import (
	"fmt"
	"strings"
)

var mnemonics = map[opCode]string{
	opADD: "ADD", opMUL: "MUL", opIN: "IN", opOUT: "OUT",
	opJNZ: "JNZ", opJZ: "JZ", opSLT: "SLT", opSEQ: "SEQ",
	opINCB: "INCB", opHALT: "HALT",
}

// Disassemble decodes one instruction from mem starting at pc and
// returns its mnemonic text plus the address of the next instruction
// in program order (not accounting for jumps). It never faults: an
// unrecognized opcode renders as a one-word "DATA n" line and an
// unrecognized mode as a "?n" operand rather than an error, since this
// is debugging tooling, not the VM's execution path.
func Disassemble(mem []int64, pc int64) (text string, next int64) {
	read := func(addr int64) int64 {
		if addr < 0 || addr >= int64(len(mem)) {
			return 0
		}
		return mem[addr]
	}

	op := read(pc)
	opcode := opCode(op % 100)
	modes := [3]Mode{
		Mode((op / 100) % 10),
		Mode((op / 1000) % 10),
		Mode((op / 10000) % 10),
	}

	name, ok := mnemonics[opcode]
	arity, known := opArity[opcode]
	if !ok || !known {
		return fmt.Sprintf("DATA %d", op), pc + 1
	}

	var params []string
	for k := 0; k < arity; k++ {
		v := read(pc + 1 + int64(k))
		params = append(params, formatParam(modes[k], v))
	}

	if len(params) == 0 {
		return name, pc + 1 + int64(arity)
	}
	return name + " " + strings.Join(params, ", "), pc + 1 + int64(arity)
}

func formatParam(m Mode, v int64) string {
	switch m {
	case modeImmediate:
		return fmt.Sprintf("#%d", v)
	case modeRelative:
		return fmt.Sprintf("@%d", v)
	case modeAbsolute:
		return fmt.Sprintf("%d", v)
	default:
		return fmt.Sprintf("?%d", v)
	}
}
