package expr_test

import (
	"testing"

	"github.com/zannabianca1997/ic4/expr"
)

func constVal(t *testing.T, e expr.Expr, subs expr.Substitutions) int64 {
	t.Helper()
	r, err := expr.Simplify(e, subs, true)
	if err != nil {
		t.Fatalf("Simplify failed: %v", err)
	}
	c, ok := r.(expr.Constant)
	if !ok {
		t.Fatalf("Simplify did not fold to a constant: %v", r)
	}
	return int64(c)
}

func TestSimplifyArithmetic(t *testing.T) {
	cases := []struct {
		name string
		e    expr.Expr
		want int64
	}{
		{"add", expr.Sum{L: expr.Constant(2), R: expr.Constant(3)}, 5},
		{"sub", expr.Subtract{L: expr.Constant(5), R: expr.Constant(3)}, 2},
		{"mul", expr.Multiply{L: expr.Constant(4), R: expr.Constant(3)}, 12},
		{"sub zero lhs", expr.Subtract{L: expr.Constant(0), R: expr.Constant(7)}, -7},
		{"add identity", expr.Sum{L: expr.Constant(0), R: expr.Reference("x")}, 9},
		{"mul zero", expr.Multiply{L: expr.Constant(0), R: expr.Reference("x")}, 0},
		{"mul one", expr.Multiply{L: expr.Constant(1), R: expr.Reference("x")}, 9},
		{"div by neg one", expr.Divide{L: expr.Constant(9), R: expr.Constant(-1)}, -9},
		{"div floor pos/neg", expr.Divide{L: expr.Constant(7), R: expr.Constant(-2)}, -4},
		{"div floor neg/pos", expr.Divide{L: expr.Constant(-7), R: expr.Constant(2)}, -4},
		{"div floor neg/neg", expr.Divide{L: expr.Constant(-7), R: expr.Constant(-2)}, 3},
		{"div zero numerator", expr.Divide{L: expr.Constant(0), R: expr.Reference("x")}, 0},
	}
	subs := expr.Substitutions{"x": expr.Constant(9)}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := constVal(t, c.e, subs)
			if got != c.want {
				t.Errorf("%s = %d, want %d", c.name, got, c.want)
			}
		})
	}
}

func TestDivisionByZeroFails(t *testing.T) {
	for _, e := range []expr.Expr{
		expr.Divide{L: expr.Constant(1), R: expr.Constant(0)},
		expr.Divide{L: expr.Constant(0), R: expr.Constant(0)},
	} {
		if _, err := expr.Simplify(e, nil, true); err == nil {
			t.Errorf("expected SimplifyFailure for %v", e)
		} else if _, ok := err.(*expr.SimplifyFailure); !ok {
			t.Errorf("expected *SimplifyFailure, got %T", err)
		}
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	e := expr.Sum{L: expr.Multiply{L: expr.Constant(2), R: expr.Constant(3)}, R: expr.Reference("y")}
	first, err := expr.Simplify(e, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	second, err := expr.Simplify(first, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	if !expr.Equal(first, second) {
		t.Errorf("Simplify not idempotent: %v != %v", first, second)
	}
}

func TestCommutativeEquality(t *testing.T) {
	a := expr.Sum{L: expr.Reference("a"), R: expr.Reference("b")}
	b := expr.Sum{L: expr.Reference("b"), R: expr.Reference("a")}
	if !expr.Equal(a, b) {
		t.Errorf("Sum should be commutative for equality")
	}
	ma := expr.Multiply{L: expr.Reference("a"), R: expr.Reference("b")}
	mb := expr.Multiply{L: expr.Reference("b"), R: expr.Reference("a")}
	if !expr.Equal(ma, mb) {
		t.Errorf("Multiply should be commutative for equality")
	}
	sa := expr.Subtract{L: expr.Reference("a"), R: expr.Reference("b")}
	sb := expr.Subtract{L: expr.Reference("b"), R: expr.Reference("a")}
	if expr.Equal(sa, sb) {
		t.Errorf("Subtract should not be commutative for equality")
	}
}

func TestTransitiveReference(t *testing.T) {
	subs := expr.Substitutions{
		"a": expr.Reference("b"),
		"b": expr.Sum{L: expr.Constant(1), R: expr.Constant(2)},
	}
	got := constVal(t, expr.Reference("a"), subs)
	if got != 3 {
		t.Errorf("transitive reference = %d, want 3", got)
	}
}

func TestCyclicReferenceFails(t *testing.T) {
	subs := expr.Substitutions{
		"a": expr.Reference("b"),
		"b": expr.Reference("a"),
	}
	if _, err := expr.Simplify(expr.Reference("a"), subs, true); err == nil {
		t.Errorf("expected failure for cyclic substitution")
	}
}

func TestUnresolvedReferenceFails(t *testing.T) {
	if _, err := expr.Simplify(expr.Reference("undefined"), nil, true); err == nil {
		t.Errorf("expected failure for unresolved reference")
	}
}

func TestValidName(t *testing.T) {
	valid := []string{"foo", "_bar", "&internal1", "x$1", "A_B9"}
	for _, n := range valid {
		if !expr.ValidName(n) {
			t.Errorf("expected %q to be a valid name", n)
		}
	}
	invalid := []string{"1foo", "", "foo bar", "foo-bar"}
	for _, n := range invalid {
		if expr.ValidName(n) {
			t.Errorf("expected %q to be an invalid name", n)
		}
	}
	if !expr.Internal("&gen1") || expr.Internal("gen1") {
		t.Errorf("Internal() misclassified a name")
	}
}
