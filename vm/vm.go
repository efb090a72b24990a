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

// Instance is an IntCode virtual machine. The zero value is not usable;
// create one with New.
type Instance struct {
	mem    []int64
	pc     int64
	rb     int64
	halted bool
	err    error

	input  []int64
	output []int64

	insCount int64
}

// Option configures an Instance at construction time.
type Option func(*Instance)

// WithInput seeds the input FIFO with the given values, in order.
func WithInput(values ...int64) Option {
	return func(i *Instance) { i.input = append(i.input, values...) }
}

// WithMemorySize pre-grows memory to at least size cells, avoiding
// repeated reallocation for programs that need scratch space beyond
// their own code.
func WithMemorySize(size int) Option {
	return func(i *Instance) {
		if size > len(i.mem) {
			grown := make([]int64, size)
			copy(grown, i.mem)
			i.mem = grown
		}
	}
}

// New creates a VM instance with program loaded at address 0, PC and
// RB at 0. The program slice is copied; the instance never aliases
// caller-owned memory, so growth never reallocates the caller's slice.
func New(program []int64, opts ...Option) *Instance {
	mem := make([]int64, len(program))
	copy(mem, program)
	i := &Instance{mem: mem}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// PC returns the current program counter.
func (i *Instance) PC() int64 { return i.pc }

// RB returns the current relative base.
func (i *Instance) RB() int64 { return i.rb }

// Halted reports whether the VM has executed HALT.
func (i *Instance) Halted() bool { return i.halted }

// Err returns the fault that stopped the VM, if any. A VM that is
// merely halted, or merely suspended waiting for input, has a nil Err.
func (i *Instance) Err() error { return i.err }

// InstructionCount returns the number of instructions executed across
// the lifetime of the instance.
func (i *Instance) InstructionCount() int64 { return i.insCount }

// Mem returns the live memory slice. It aliases the instance's memory;
// callers that want a snapshot should copy it.
func (i *Instance) Mem() []int64 { return i.mem }
