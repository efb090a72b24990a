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

package expr

import "fmt"

// SimplifyFailure is returned by Simplify when an expression cannot be
// reduced as required: a full fold left a residual non-constant, or an
// algebraic impossibility was hit (division by zero, the indeterminate
// 0/0, or a cyclic substitution).
type SimplifyFailure struct {
	Expr   Expr
	Reason string
}

func (f *SimplifyFailure) Error() string {
	return fmt.Sprintf("cannot simplify %s: %s", f.Expr, f.Reason)
}

func fail(e Expr, reason string) error { return &SimplifyFailure{Expr: e, Reason: reason} }

// Substitutions maps reference names to the expression they stand for.
// Substitutions may themselves reference other names; resolution is
// transitive and the zero value (nil map) behaves like an empty map.
type Substitutions map[Reference]Expr

// Simplify reduces e as far as possible under subs, applying the
// identities x+0 = 0+x = x, x-0 = x, 0-x = x*-1, x*0 = 0*x = 0,
// x*1 = 1*x = x, 0/x = 0, x/1 = x and x/-1 = x*-1, then folding constant
// subtrees with host signed-integer arithmetic (floor division for
// Divide). If full is true the result must be a Constant; any residual
// non-constant expression is reported as a *SimplifyFailure.
//
// Simplify is idempotent: simplifying an already-simplified expression
// returns an equal expression.
func Simplify(e Expr, subs Substitutions, full bool) (Expr, error) {
	return simplify(e, subs, full, nil)
}

func simplify(e Expr, subs Substitutions, full bool, visiting map[Reference]bool) (Expr, error) {
	switch v := e.(type) {
	case Constant:
		return v, nil
	case Reference:
		return simplifyReference(v, subs, full, visiting)
	case Sum:
		l, r, err := simplifyChildren(v.L, v.R, subs, full, visiting)
		if err != nil {
			return nil, err
		}
		return simplifySum(l, r, full)
	case Subtract:
		l, r, err := simplifyChildren(v.L, v.R, subs, full, visiting)
		if err != nil {
			return nil, err
		}
		return simplifySubtract(l, r, subs, full, visiting)
	case Multiply:
		l, r, err := simplifyChildren(v.L, v.R, subs, full, visiting)
		if err != nil {
			return nil, err
		}
		return simplifyMultiply(l, r, full)
	case Divide:
		l, r, err := simplifyChildren(v.L, v.R, subs, full, visiting)
		if err != nil {
			return nil, err
		}
		return simplifyDivide(l, r, subs, full, visiting)
	default:
		return nil, fail(e, "unknown expression kind")
	}
}

func simplifyChildren(l, r Expr, subs Substitutions, full bool, visiting map[Reference]bool) (Expr, Expr, error) {
	sl, err := simplify(l, subs, full, visiting)
	if err != nil {
		return nil, nil, err
	}
	sr, err := simplify(r, subs, full, visiting)
	if err != nil {
		return nil, nil, err
	}
	return sl, sr, nil
}

func simplifyReference(ref Reference, subs Substitutions, full bool, visiting map[Reference]bool) (Expr, error) {
	def, ok := subs[ref]
	if !ok {
		if full {
			return nil, fail(ref, "unresolved reference "+string(ref))
		}
		return ref, nil
	}
	if visiting[ref] {
		return nil, fail(ref, "cyclic reference "+string(ref))
	}
	next := make(map[Reference]bool, len(visiting)+1)
	for k := range visiting {
		next[k] = true
	}
	next[ref] = true
	return simplify(def, subs, full, next)
}

func isConstant(e Expr, v int64) bool {
	c, ok := e.(Constant)
	return ok && int64(c) == v
}

func asConstants(l, r Expr) (lc, rc Constant, ok bool) {
	lv, lok := l.(Constant)
	rv, rok := r.(Constant)
	if lok && rok {
		return lv, rv, true
	}
	return 0, 0, false
}

func simplifySum(l, r Expr, full bool) (Expr, error) {
	if isConstant(l, 0) {
		return r, nil
	}
	if isConstant(r, 0) {
		return l, nil
	}
	if lc, rc, ok := asConstants(l, r); ok {
		return Constant(int64(lc) + int64(rc)), nil
	}
	if full {
		return nil, fail(Sum{l, r}, "not foldable to a constant")
	}
	return Sum{l, r}, nil
}

func simplifySubtract(l, r Expr, subs Substitutions, full bool, visiting map[Reference]bool) (Expr, error) {
	if isConstant(r, 0) {
		return l, nil
	}
	if isConstant(l, 0) {
		// 0 - x = -x, rewritten as x * -1 and simplified again.
		return simplify(Multiply{r, Constant(-1)}, subs, full, visiting)
	}
	if lc, rc, ok := asConstants(l, r); ok {
		return Constant(int64(lc) - int64(rc)), nil
	}
	if full {
		return nil, fail(Subtract{l, r}, "not foldable to a constant")
	}
	return Subtract{l, r}, nil
}

func simplifyMultiply(l, r Expr, full bool) (Expr, error) {
	if isConstant(l, 0) || isConstant(r, 0) {
		return Constant(0), nil
	}
	if isConstant(l, 1) {
		return r, nil
	}
	if isConstant(r, 1) {
		return l, nil
	}
	if lc, rc, ok := asConstants(l, r); ok {
		return Constant(int64(lc) * int64(rc)), nil
	}
	if full {
		return nil, fail(Multiply{l, r}, "not foldable to a constant")
	}
	return Multiply{l, r}, nil
}

func simplifyDivide(l, r Expr, subs Substitutions, full bool, visiting map[Reference]bool) (Expr, error) {
	if isConstant(r, 0) {
		return nil, fail(Divide{l, r}, "division by zero")
	}
	if isConstant(l, 0) {
		return Constant(0), nil
	}
	if isConstant(r, 1) {
		return l, nil
	}
	if isConstant(r, -1) {
		// x / -1 = -x, rewritten as x * -1 and simplified again.
		return simplify(Multiply{l, Constant(-1)}, subs, full, visiting)
	}
	if lc, rc, ok := asConstants(l, r); ok {
		return Constant(floorDiv(int64(lc), int64(rc))), nil
	}
	if full {
		return nil, fail(Divide{l, r}, "not foldable to a constant")
	}
	return Divide{l, r}, nil
}

// floorDiv implements integer division that rounds toward negative
// infinity, matching the floor-division semantics spec.md requires
// regardless of operand signs (Go's native / truncates toward zero).
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
