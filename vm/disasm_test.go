package vm_test

import (
	"testing"

	"github.com/zannabianca1997/ic4/vm"
)

func TestDisassemble(t *testing.T) {
	cases := []struct {
		mem  []int64
		pc   int64
		want string
		next int64
	}{
		{[]int64{1, 0, 0, 0, 99}, 0, "ADD 0, 0, 0", 4},
		{[]int64{1101, 5, -1, 0}, 0, "ADD #5, #-1, 0", 4},
		{[]int64{204, 1, 99}, 0, "OUT @1", 2},
		{[]int64{99}, 0, "HALT", 1},
		{[]int64{42}, 0, "DATA 42", 1},
	}
	for _, c := range cases {
		got, next := vm.Disassemble(c.mem, c.pc)
		if got != c.want || next != c.next {
			t.Errorf("Disassemble(%v, %d) = %q, %d; want %q, %d", c.mem, c.pc, got, next, c.want, c.next)
		}
	}
}
