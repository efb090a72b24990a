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

import (
	"fmt"
	"regexp"
	"strings"
)

// Expr is a node in the symbolic expression tree. The concrete types are
// Constant, Reference, Sum, Subtract, Multiply and Divide; there is no
// other implementation and none is expected outside this package.
type Expr interface {
	isExpr()
	String() string
}

// Constant is a folded signed integer value.
type Constant int64

func (Constant) isExpr() {}

// String implements Expr.
func (c Constant) String() string { return fmt.Sprintf("%d", int64(c)) }

var nameRe = regexp.MustCompile(`^[A-Za-z_&][A-Za-z0-9_$]*$`)

// ValidName reports whether name is a syntactically valid reference name.
func ValidName(name string) bool { return nameRe.MatchString(name) }

// Internal reports whether name is reserved for assembler-generated
// labels (names beginning with '&'). ValidName accepts such names, and
// the parser does not reject them in user source.
func Internal(name string) bool { return strings.HasPrefix(name, "&") }

// Reference is a symbolic name resolved via a Substitutions map.
type Reference string

func (Reference) isExpr() {}

// String implements Expr.
func (r Reference) String() string { return string(r) }

// Plus builds Reference + offset, used by the assembler to compute
// offsets from a label (e.g. the LOAD/STORE placeholder patch sites).
func (r Reference) Plus(offset int64) Expr {
	if offset == 0 {
		return r
	}
	return Sum{r, Constant(offset)}
}

// Sum is commutative: l+r.
type Sum struct{ L, R Expr }

func (Sum) isExpr() {}

// String implements Expr.
func (s Sum) String() string { return fmt.Sprintf("(%s + %s)", s.L, s.R) }

// Subtract is ordered: l-r.
type Subtract struct{ L, R Expr }

func (Subtract) isExpr() {}

// String implements Expr.
func (s Subtract) String() string { return fmt.Sprintf("(%s - %s)", s.L, s.R) }

// Multiply is commutative: l*r.
type Multiply struct{ L, R Expr }

func (Multiply) isExpr() {}

// String implements Expr.
func (m Multiply) String() string { return fmt.Sprintf("(%s * %s)", m.L, m.R) }

// Divide is ordered integer floor division: l/r.
type Divide struct{ L, R Expr }

func (Divide) isExpr() {}

// String implements Expr.
func (d Divide) String() string { return fmt.Sprintf("(%s / %s)", d.L, d.R) }

// Equal reports whether a and b are structurally equal, treating Sum and
// Multiply as commutative.
func Equal(a, b Expr) bool {
	switch av := a.(type) {
	case Constant:
		bv, ok := b.(Constant)
		return ok && av == bv
	case Reference:
		bv, ok := b.(Reference)
		return ok && av == bv
	case Sum:
		bv, ok := b.(Sum)
		if !ok {
			return false
		}
		return (Equal(av.L, bv.L) && Equal(av.R, bv.R)) || (Equal(av.L, bv.R) && Equal(av.R, bv.L))
	case Multiply:
		bv, ok := b.(Multiply)
		if !ok {
			return false
		}
		return (Equal(av.L, bv.L) && Equal(av.R, bv.R)) || (Equal(av.L, bv.R) && Equal(av.R, bv.L))
	case Subtract:
		bv, ok := b.(Subtract)
		return ok && Equal(av.L, bv.L) && Equal(av.R, bv.R)
	case Divide:
		bv, ok := b.(Divide)
		return ok && Equal(av.L, bv.L) && Equal(av.R, bv.R)
	default:
		return false
	}
}
