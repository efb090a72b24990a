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

	"github.com/pkg/errors"
)

// Fault is a non-resumable VM error: it reports the instruction that
// triggered it. A faulted instance is not marked Halted; callers must
// check Err to distinguish a clean halt from a fault (spec.md §7).
type Fault struct {
	PC     int64
	Opcode int64
	Reason string
	Cause  error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault at pc=%d opcode=%d: %s", f.PC, f.Opcode, f.Cause)
}

func (f *Fault) Unwrap() error { return f.Cause }

// Fault reason tags (spec.md §7). These are not distinct Go types: the
// taxonomy lives in Fault.Reason because every fault already carries
// the pc/opcode context the spec asks for, and a caller that cares
// about the distinction can switch on these string constants.
const (
	ReasonNegativeAddress = "negative address"
	ReasonImmediateWrite  = "write through immediate parameter"
	ReasonInvalidMode     = "invalid parameter mode"
	ReasonInvalidOpcode   = "invalid opcode"
)

func (i *Instance) fault(reason string) error {
	var op int64
	if i.pc >= 0 && i.pc < int64(len(i.mem)) {
		op = i.mem[i.pc]
	}
	f := &Fault{PC: i.pc, Opcode: op, Reason: reason, Cause: errors.Errorf(reason)}
	i.err = f
	return f
}
