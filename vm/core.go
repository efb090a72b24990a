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

import "github.com/golang/glog"

// Mode mirrors command.Mode without importing the command package: the
// VM only needs the three numeric tags, and keeping it dependency-free
// of the assembler toolchain lets vm be embedded standalone.
type Mode int

const (
	modeAbsolute  Mode = 0
	modeImmediate Mode = 1
	modeRelative  Mode = 2
)

// Run executes instructions until the VM halts or suspends on an empty
// input FIFO. It returns true if suspended (call GiveInput then Run
// again to resume), false if halted. Calling Run on an already-halted
// or already-faulted instance is a no-op that returns its prior state.
func (i *Instance) Run() (suspended bool, err error) {
	if i.halted || i.err != nil {
		return false, i.err
	}
	for {
		op, err := i.read(i.pc)
		if err != nil {
			return false, i.fault(ReasonNegativeAddress)
		}
		opcode := opCode(op % 100)
		modes := [3]Mode{
			Mode((op / 100) % 10),
			Mode((op / 1000) % 10),
			Mode((op / 10000) % 10),
		}
		for _, m := range modes {
			if m != modeAbsolute && m != modeImmediate && m != modeRelative {
				return false, i.fault(ReasonInvalidMode)
			}
		}

		if _, ok := opArity[opcode]; !ok {
			return false, i.fault(ReasonInvalidOpcode)
		}

		if glog.V(1) {
			glog.Infof("pc=%d rb=%d op=%d", i.pc, i.rb, op)
		}

		switch opcode {
		case opADD, opMUL, opSLT, opSEQ:
			a, err := i.paramValue(1, modes[0])
			if err != nil {
				return false, err
			}
			b, err := i.paramValue(2, modes[1])
			if err != nil {
				return false, err
			}
			var result int64
			switch opcode {
			case opADD:
				result = a + b
			case opMUL:
				result = a * b
			case opSLT:
				result = boolToInt(a < b)
			case opSEQ:
				result = boolToInt(a == b)
			}
			if err := i.writeParam(3, modes[2], result); err != nil {
				return false, err
			}
			i.pc += 4

		case opIN:
			if len(i.input) == 0 {
				return true, nil
			}
			v := i.input[0]
			i.input = i.input[1:]
			if err := i.writeParam(1, modes[0], v); err != nil {
				return false, err
			}
			i.pc += 2

		case opOUT:
			v, err := i.paramValue(1, modes[0])
			if err != nil {
				return false, err
			}
			i.output = append(i.output, v)
			i.pc += 2

		case opJNZ, opJZ:
			a, err := i.paramValue(1, modes[0])
			if err != nil {
				return false, err
			}
			target, err := i.paramValue(2, modes[1])
			if err != nil {
				return false, err
			}
			take := a != 0
			if opcode == opJZ {
				take = a == 0
			}
			if take {
				i.pc = target
			} else {
				i.pc += 3
			}

		case opINCB:
			a, err := i.paramValue(1, modes[0])
			if err != nil {
				return false, err
			}
			i.rb += a
			i.pc += 2

		case opHALT:
			i.halted = true
			return false, nil

		default:
			return false, i.fault(ReasonInvalidOpcode)
		}

		i.insCount++
	}
}

// paramAddr resolves the address or literal that parameter slot k
// (1-based, matching spec.md's p1/p2/p3 naming) denotes for reading.
func (i *Instance) paramAddr(k int, m Mode) (addr int64, literal int64, isLiteral bool, err error) {
	raw, err := i.read(i.pc + int64(k))
	if err != nil {
		return 0, 0, false, i.fault(ReasonNegativeAddress)
	}
	switch m {
	case modeImmediate:
		return 0, raw, true, nil
	case modeAbsolute:
		return raw, 0, false, nil
	case modeRelative:
		return i.rb + raw, 0, false, nil
	default:
		return 0, 0, false, i.fault(ReasonInvalidMode)
	}
}

func (i *Instance) paramValue(k int, m Mode) (int64, error) {
	addr, literal, isLiteral, err := i.paramAddr(k, m)
	if err != nil {
		return 0, err
	}
	if isLiteral {
		return literal, nil
	}
	v, err := i.read(addr)
	if err != nil {
		return 0, i.fault(ReasonNegativeAddress)
	}
	return v, nil
}

func (i *Instance) writeParam(k int, m Mode, v int64) error {
	if m == modeImmediate {
		return i.fault(ReasonImmediateWrite)
	}
	addr, _, _, err := i.paramAddr(k, m)
	if err != nil {
		return err
	}
	if err := i.write(addr, v); err != nil {
		return i.fault(ReasonNegativeAddress)
	}
	return nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

type opCode int

const (
	opADD  opCode = 1
	opMUL  opCode = 2
	opIN   opCode = 3
	opOUT  opCode = 4
	opJNZ  opCode = 5
	opJZ   opCode = 6
	opSLT  opCode = 7
	opSEQ  opCode = 8
	opINCB opCode = 9
	opHALT opCode = 99
)

var opArity = map[opCode]int{
	opADD: 3, opMUL: 3, opIN: 1, opOUT: 1,
	opJNZ: 2, opJZ: 2, opSLT: 3, opSEQ: 3, opINCB: 1, opHALT: 0,
}
