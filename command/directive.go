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

import (
	"github.com/zannabianca1997/ic4/expr"
)

// Directive is a pseudo-instruction that the assembler lowers into zero
// or more primitive Instructions (and possibly Labels).
type Directive interface {
	Command
	isDirective()
	Check() error
}

// INTS emits its values verbatim, with no implicit opcode wrapper.
type INTS struct{ Values []expr.Expr }

func (INTS) isCommand()   {}
func (INTS) isDirective() {}

// Check implements Directive.
func (d INTS) Check() error { return nil }

// ZEROS emits Len zero words. Len must fold to a non-negative constant
// against the labels bound before the directive; that fold happens at
// lowering time, not here, since Check runs without any label values.
// A Len that references a later label does not fold.
type ZEROS struct{ Len expr.Expr }

func (ZEROS) isCommand()   {}
func (ZEROS) isDirective() {}

// Check implements Directive.
func (d ZEROS) Check() error { return checkNonNegativeIfConstant(d.Len) }

// INC replaces itself with ADD p, #1, p.
type INC struct{ Param Param }

func (INC) isCommand()   {}
func (INC) isDirective() {}

// Check implements Directive.
func (d INC) Check() error { return d.Param.checkWritable() }

// DEC replaces itself with ADD p, #-1, p.
type DEC struct{ Param Param }

func (DEC) isCommand()   {}
func (DEC) isDirective() {}

// Check implements Directive.
func (d DEC) Check() error { return d.Param.checkWritable() }

// MOV copies Size consecutive words from Src to Dest. Size defaults to
// 1 via NewMOV; it is held as an expression because it may reference a
// label not yet bound.
type MOV struct {
	Src, Dest Param
	Size      expr.Expr
}

// NewMOV builds a MOV with the default size of 1.
func NewMOV(src, dest Param) MOV { return MOV{Src: src, Dest: dest, Size: expr.Constant(1)} }

func (MOV) isCommand()   {}
func (MOV) isDirective() {}

// Check implements Directive.
func (d MOV) Check() error {
	if err := d.Dest.checkWritable(); err != nil {
		return err
	}
	return checkNonNegativeIfConstant(d.Size)
}

// LOAD reads the address held at SrcPtr, then loads the word found
// there into Dest. Lowered via the self-modifying-code pattern
// documented on the assembler package.
type LOAD struct{ SrcPtr, Dest Param }

func (LOAD) isCommand()   {}
func (LOAD) isDirective() {}

// Check implements Directive.
func (d LOAD) Check() error { return d.Dest.checkWritable() }

// STORE writes Src into the address held at DestPtr.
type STORE struct{ Src, DestPtr Param }

func (STORE) isCommand()   {}
func (STORE) isDirective() {}

// Check implements Directive.
func (d STORE) Check() error { return nil }

// JMP replaces itself with JNZ #1, dest: an unconditional jump.
type JMP struct{ Dest Param }

func (JMP) isCommand()   {}
func (JMP) isDirective() {}

// Check implements Directive.
func (d JMP) Check() error { return nil }

// PUSH optionally MOVs Value to the top of the stack, then grows the
// stack by Size via INCB. Value is nil when nothing is written, only
// the relative base is advanced.
type PUSH struct {
	Value *Param
	Size  expr.Expr
}

// NewPush builds a PUSH of one word holding value.
func NewPush(value Param) PUSH { return PUSH{Value: &value, Size: expr.Constant(1)} }

func (PUSH) isCommand()   {}
func (PUSH) isDirective() {}

// Check implements Directive.
func (d PUSH) Check() error { return checkNonNegativeIfConstant(d.Size) }

// POP shrinks the stack by Size via INCB #-Size, then optionally MOVs
// the freed slot to Dest.
type POP struct {
	Dest *Param
	Size expr.Expr
}

// NewPop builds a POP of one word into dest.
func NewPop(dest Param) POP { return POP{Dest: &dest, Size: expr.Constant(1)} }

func (POP) isCommand()   {}
func (POP) isDirective() {}

// Check implements Directive.
func (d POP) Check() error {
	if d.Dest != nil {
		if err := d.Dest.checkWritable(); err != nil {
			return err
		}
	}
	return checkNonNegativeIfConstant(d.Size)
}

// CALL pushes a return address and jumps to Dest.
type CALL struct{ Dest Param }

func (CALL) isCommand()   {}
func (CALL) isDirective() {}

// Check implements Directive.
func (d CALL) Check() error { return nil }

// RET pops one return-address slot and jumps to it.
type RET struct{}

func (RET) isCommand()   {}
func (RET) isDirective() {}

// Check implements Directive.
func (d RET) Check() error { return nil }
