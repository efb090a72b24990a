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
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/zannabianca1997/ic4/command"
	"github.com/zannabianca1997/ic4/expr"
	"github.com/zannabianca1997/ic4/source"
	"github.com/zannabianca1997/ic4/version"
)

type assembler struct {
	code   []expr.Expr
	labels expr.Substitutions
	stack  []command.Command
	gen    int
}

// Assemble lowers f into a flat sequence of integers runnable by the
// vm package. It rejects any header but Executable 0.1.
func Assemble(f source.File) ([]int64, error) {
	exec, ok := f.Header.(source.Executable)
	if !ok {
		return nil, &UnsupportedFormatError{Header: f.Header}
	}
	if !version.Equal(exec.Version, version.New(0, 1)) {
		return nil, &UnsupportedVersionError{Version: exec.Version}
	}

	a := &assembler{labels: make(expr.Substitutions)}
	a.push(f.Body...)

	for len(a.stack) > 0 {
		cmd := a.pop()
		if err := a.dispatch(cmd); err != nil {
			return nil, err
		}
	}

	return a.finalize()
}

// push appends cmds onto the work stack so that, popped one at a time,
// they come off in the order given.
func (a *assembler) push(cmds ...command.Command) {
	for i := len(cmds) - 1; i >= 0; i-- {
		a.stack = append(a.stack, cmds[i])
	}
}

func (a *assembler) pop() command.Command {
	n := len(a.stack) - 1
	c := a.stack[n]
	a.stack = a.stack[:n]
	return c
}

func (a *assembler) fresh() expr.Reference {
	a.gen++
	return freshName(a.gen)
}

func (a *assembler) dispatch(cmd command.Command) error {
	switch c := cmd.(type) {
	case command.Label:
		a.bindLabel(c)
		return nil
	case command.Instruction:
		return a.emitInstruction(c)
	case command.Directive:
		return a.lowerDirective(c)
	default:
		return errors.Errorf("unrecognized command %T", cmd)
	}
}

func (a *assembler) bindLabel(l command.Label) {
	ref := expr.Reference(l.Name)
	if _, exists := a.labels[ref]; exists {
		glog.Warningf("label %q redefined", l.Name)
	}
	a.labels[ref] = expr.Constant(len(a.code))
}

func (a *assembler) emitInstruction(i command.Instruction) error {
	if err := i.Check(); err != nil {
		return errors.Wrap(err, "instruction")
	}
	op := int64(i.Op)
	for idx, p := range i.Params {
		op += 100 * pow10(idx) * int64(p.Mode)
	}
	a.code = append(a.code, expr.Constant(op))
	for _, p := range i.Params {
		a.code = append(a.code, p.Value)
	}
	return nil
}

func pow10(n int) int64 {
	v := int64(1)
	for k := 0; k < n; k++ {
		v *= 10
	}
	return v
}

// foldNow fully simplifies e against the labels known so far; used by
// directives (ZEROS, MOV and its derivatives) that must know a size
// before they can decide how many commands to push.
func (a *assembler) foldNow(e expr.Expr) (int64, error) {
	v, err := expr.Simplify(e, a.labels, true)
	if err != nil {
		return 0, err
	}
	c, ok := v.(expr.Constant)
	if !ok {
		return 0, errors.Errorf("expected constant, got %s", v)
	}
	return int64(c), nil
}

func (a *assembler) finalize() ([]int64, error) {
	out := make([]int64, len(a.code))
	for idx, e := range a.code {
		v, err := expr.Simplify(e, a.labels, true)
		if err != nil {
			return nil, &UnresolvedReferenceError{Index: idx, Cause: err}
		}
		c, ok := v.(expr.Constant)
		if !ok {
			return nil, &UnresolvedReferenceError{Index: idx, Cause: errors.Errorf("residual expression %s", v)}
		}
		out[idx] = int64(c)
	}
	return out, nil
}
