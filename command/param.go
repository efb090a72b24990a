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
	"fmt"

	"github.com/pkg/errors"
	"github.com/zannabianca1997/ic4/expr"
)

// Mode is an IntCode parameter addressing mode.
type Mode int

// The three IntCode addressing modes (spec.md §3).
const (
	Absolute Mode = iota
	Immediate
	Relative
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Absolute:
		return "Absolute"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Param is one instruction or directive parameter: an addressing mode
// paired with the expression that yields its value or target address.
type Param struct {
	Mode  Mode
	Value expr.Expr
}

// Abs builds an Absolute-mode parameter.
func Abs(v expr.Expr) Param { return Param{Mode: Absolute, Value: v} }

// Imm builds an Immediate-mode parameter.
func Imm(v expr.Expr) Param { return Param{Mode: Immediate, Value: v} }

// Rel builds a Relative-mode parameter.
func Rel(v expr.Expr) Param { return Param{Mode: Relative, Value: v} }

// Writable reports whether p's mode can be a write target. Only
// Immediate parameters are never writable.
func (p Param) Writable() bool { return p.Mode != Immediate }

// checkWritable returns an error if p cannot be used as a write target.
func (p Param) checkWritable() error {
	if !p.Writable() {
		return errors.Errorf("immediate parameter %s cannot be written to", p.Value)
	}
	return nil
}

// checkNonNegativeIfAbsolute returns an error if p is an Absolute
// parameter whose value is already known (without any label
// substitution) to fold to a negative constant.
func (p Param) checkNonNegativeIfAbsolute() error {
	if p.Mode != Absolute {
		return nil
	}
	return checkNonNegativeIfConstant(p.Value)
}

func checkNonNegativeIfConstant(e expr.Expr) error {
	v, err := expr.Simplify(e, nil, false)
	if err != nil {
		// Not a SimplifyFailure we can act on here; that surfaces later
		// once label substitutions are available.
		return nil
	}
	if c, ok := v.(expr.Constant); ok && c < 0 {
		return errors.Errorf("expression %s folds to negative value %d", e, int64(c))
	}
	return nil
}
