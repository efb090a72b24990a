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

package assembler

import (
	"github.com/pkg/errors"

	"github.com/zannabianca1997/ic4/command"
	"github.com/zannabianca1997/ic4/expr"
)

func (a *assembler) lowerDirective(d command.Directive) error {
	if err := d.Check(); err != nil {
		return errors.Wrap(err, "directive")
	}
	switch v := d.(type) {
	case command.INTS:
		a.code = append(a.code, v.Values...)
		return nil
	case command.ZEROS:
		return a.lowerZeros(v)
	case command.INC:
		a.push(command.Instruction{Op: command.ADD, Params: []command.Param{
			v.Param, command.Imm(expr.Constant(1)), v.Param,
		}})
		return nil
	case command.DEC:
		a.push(command.Instruction{Op: command.ADD, Params: []command.Param{
			v.Param, command.Imm(expr.Constant(-1)), v.Param,
		}})
		return nil
	case command.MOV:
		cmds, err := a.lowerMov(v)
		if err != nil {
			return err
		}
		a.push(cmds...)
		return nil
	case command.LOAD:
		a.push(a.lowerLoad(v)...)
		return nil
	case command.STORE:
		a.push(a.lowerStore(v)...)
		return nil
	case command.JMP:
		a.push(command.Instruction{Op: command.JNZ, Params: []command.Param{
			command.Imm(expr.Constant(1)), v.Dest,
		}})
		return nil
	case command.PUSH:
		a.push(a.lowerPush(v)...)
		return nil
	case command.POP:
		a.push(a.lowerPop(v)...)
		return nil
	case command.CALL:
		a.push(a.lowerCall(v)...)
		return nil
	case command.RET:
		a.push(
			command.POP{Size: expr.Constant(1)},
			command.JMP{Dest: command.Rel(expr.Constant(0))},
		)
		return nil
	default:
		return errors.Errorf("unrecognized directive %T", d)
	}
}

func (a *assembler) lowerZeros(d command.ZEROS) error {
	n, err := a.foldNow(d.Len)
	if err != nil {
		return &ZerosNotFoldableError{Cause: err}
	}
	if n < 0 {
		return &ZerosNegativeError{Value: n}
	}
	for k := int64(0); k < n; k++ {
		a.code = append(a.code, expr.Constant(0))
	}
	return nil
}

// offsetParam returns p with its value shifted by i, except when p is
// Immediate (a literal value has no address to offset).
func offsetParam(p command.Param, i int64) command.Param {
	if p.Mode == command.Immediate || i == 0 {
		return p
	}
	return command.Param{Mode: p.Mode, Value: expr.Sum{L: p.Value, R: expr.Constant(i)}}
}

func (a *assembler) lowerMov(d command.MOV) ([]command.Command, error) {
	n, err := a.foldNow(d.Size)
	if err != nil {
		return nil, &MovSizeNotFoldableError{Cause: err}
	}
	if n < 0 {
		return nil, &MovSizeNegativeError{Value: n}
	}
	cmds := make([]command.Command, 0, n)
	for i := int64(0); i < n; i++ {
		src := offsetParam(d.Src, i)
		dest := offsetParam(d.Dest, i)
		cmds = append(cmds, command.Instruction{
			Op:     command.ADD,
			Params: []command.Param{src, command.Imm(expr.Constant(0)), dest},
		})
	}
	return cmds, nil
}

// lowerLoad implements LOAD(src_ptr, dest) as self-modifying code: an
// address is copied out of src_ptr into the first parameter slot of a
// following MOV, whose destination is dest. The placeholder -1 traps
// (negative absolute address) if the patch is ever skipped.
func (a *assembler) lowerLoad(d command.LOAD) []command.Command {
	l := a.fresh()
	return []command.Command{
		command.MOV{Src: d.SrcPtr, Dest: command.Abs(l.Plus(1)), Size: expr.Constant(1)},
		command.Label{Name: string(l)},
		command.MOV{Src: command.Abs(expr.Constant(-1)), Dest: d.Dest, Size: expr.Constant(1)},
	}
}

// lowerStore implements STORE(src, dest_ptr) analogously: the address
// is patched into the destination slot (offset L+3, since the patched
// MOV expands to a 3-parameter ADD) of a following MOV that copies src
// into the placeholder destination.
func (a *assembler) lowerStore(d command.STORE) []command.Command {
	l := a.fresh()
	return []command.Command{
		command.MOV{Src: d.DestPtr, Dest: command.Abs(l.Plus(3)), Size: expr.Constant(1)},
		command.Label{Name: string(l)},
		command.MOV{Src: d.Src, Dest: command.Abs(expr.Constant(-1)), Size: expr.Constant(1)},
	}
}

func (a *assembler) lowerPush(d command.PUSH) []command.Command {
	var cmds []command.Command
	if d.Value != nil {
		cmds = append(cmds, command.MOV{
			Src: *d.Value, Dest: command.Rel(expr.Constant(0)), Size: d.Size,
		})
	}
	cmds = append(cmds, command.Instruction{
		Op: command.INCB, Params: []command.Param{command.Imm(d.Size)},
	})
	return cmds
}

func (a *assembler) lowerPop(d command.POP) []command.Command {
	negSize := expr.Expr(expr.Subtract{L: expr.Constant(0), R: d.Size})
	cmds := []command.Command{
		command.Instruction{Op: command.INCB, Params: []command.Param{command.Imm(negSize)}},
	}
	if d.Dest != nil {
		cmds = append(cmds, command.MOV{
			Src: command.Rel(expr.Constant(0)), Dest: *d.Dest, Size: d.Size,
		})
	}
	return cmds
}

// lowerCall implements CALL(dest): push the return address (the label
// placed right after the jump), then jump.
func (a *assembler) lowerCall(d command.CALL) []command.Command {
	ret := a.fresh()
	return []command.Command{
		command.NewPush(command.Imm(ret)),
		command.JMP{Dest: d.Dest},
		command.Label{Name: string(ret)},
	}
}
