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

package command

import "github.com/pkg/errors"

// Instruction is a single primitive opcode with its parameters.
type Instruction struct {
	Op     OpCode
	Params []Param
}

func (Instruction) isCommand() {}

// Check validates param count, write-target legality and statically
// known negative Absolute addresses.
func (i Instruction) Check() error {
	if !i.Op.Valid() {
		return errors.Errorf("unknown opcode %v", i.Op)
	}
	if want := i.Op.Arity(); len(i.Params) != want {
		return errors.Errorf("%s expects %d parameters, got %d", i.Op, want, len(i.Params))
	}
	for idx, p := range i.Params {
		if i.Op.Writes(idx) {
			if err := p.checkWritable(); err != nil {
				return errors.Wrapf(err, "%s parameter %d", i.Op, idx+1)
			}
		}
		if err := p.checkNonNegativeIfAbsolute(); err != nil {
			return errors.Wrapf(err, "%s parameter %d", i.Op, idx+1)
		}
	}
	return nil
}
