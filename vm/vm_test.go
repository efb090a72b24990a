package vm_test

import (
	"testing"

	"github.com/zannabianca1997/ic4/vm"
)

// quine-ish identity: read one input word, echo it, halt.
func TestRunEchoesInput(t *testing.T) {
	program := []int64{3, 0, 4, 0, 99}
	i := vm.New(program, vm.WithInput(42))

	suspended, err := i.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if suspended {
		t.Fatal("did not expect suspension")
	}
	if !i.Halted() {
		t.Fatal("expected halted")
	}

	v, ok := i.GetOutput()
	if !ok || v != 42 {
		t.Fatalf("GetOutput = %d, %v; want 42, true", v, ok)
	}
}

func TestRunSuspendsOnEmptyInput(t *testing.T) {
	program := []int64{3, 0, 4, 0, 99}
	i := vm.New(program)

	suspended, err := i.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !suspended {
		t.Fatal("expected suspension on empty input")
	}
	if i.Halted() {
		t.Fatal("did not expect halted while suspended")
	}

	i.GiveInput(7)
	suspended, err = i.Run()
	if err != nil {
		t.Fatalf("Run after GiveInput: %v", err)
	}
	if suspended {
		t.Fatal("expected completion after input arrives")
	}
	if !i.Halted() {
		t.Fatal("expected halted")
	}
	v, ok := i.GetOutput()
	if !ok || v != 7 {
		t.Fatalf("GetOutput = %d, %v; want 7, true", v, ok)
	}
}

func TestAddImmediateAndStore(t *testing.T) {
	// 1101,100,-1,4,99 : ADD #100 #-1 -> mem[4] (replaces the HALT cell)
	program := []int64{1101, 100, -1, 4, 99}
	i := vm.New(program)
	if _, err := i.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !i.Halted() {
		t.Fatal("expected halted")
	}
	if got := i.Mem()[4]; got != 99 {
		t.Fatalf("mem[4] = %d, want 99", got)
	}
}

func TestRelativeModeAndGrowth(t *testing.T) {
	// A quine: outputs a copy of itself through relative-mode OUT and
	// INCB, keeping its counter past the end of memory at address 100.
	program := []int64{
		109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101,
		1006, 101, 0, 99,
	}
	i := vm.New(append([]int64(nil), program...))
	var got []int64
	for {
		v, ok := i.GetOutput()
		if !ok {
			break
		}
		got = append(got, v)
	}
	if len(got) != len(program) {
		t.Fatalf("quine produced %d outputs, want %d", len(got), len(program))
	}
	for k, v := range program {
		if got[k] != v {
			t.Fatalf("quine output[%d] = %d, want %d", k, got[k], v)
		}
	}
}

func TestNegativeAddressFaults(t *testing.T) {
	// ADD reading through an Absolute parameter whose value is -1.
	program := []int64{1, -1, 0, 0, 99}
	i := vm.New(program)
	_, err := i.Run()
	if err == nil {
		t.Fatal("expected fault")
	}
	f, ok := err.(*vm.Fault)
	if !ok {
		t.Fatalf("err = %T, want *vm.Fault", err)
	}
	if f.Reason != vm.ReasonNegativeAddress {
		t.Fatalf("Reason = %q, want %q", f.Reason, vm.ReasonNegativeAddress)
	}
	if i.Halted() {
		t.Fatal("a fault must not be reported as halted")
	}
}

func TestImmediateWriteFaults(t *testing.T) {
	// ADD writing through an Immediate third parameter: opcode 11101.
	program := []int64{11101, 1, 2, 0, 99}
	i := vm.New(program)
	_, err := i.Run()
	f, ok := err.(*vm.Fault)
	if !ok {
		t.Fatalf("expected *vm.Fault, got %v", err)
	}
	if f.Reason != vm.ReasonImmediateWrite {
		t.Fatalf("Reason = %q, want %q", f.Reason, vm.ReasonImmediateWrite)
	}
}

func TestInvalidModeFaults(t *testing.T) {
	// mode digit 3 is never valid.
	program := []int64{30001, 1, 2, 0, 99}
	i := vm.New(program)
	_, err := i.Run()
	f, ok := err.(*vm.Fault)
	if !ok {
		t.Fatalf("expected *vm.Fault, got %v", err)
	}
	if f.Reason != vm.ReasonInvalidMode {
		t.Fatalf("Reason = %q, want %q", f.Reason, vm.ReasonInvalidMode)
	}
}

func TestInvalidOpcodeFaults(t *testing.T) {
	program := []int64{42, 0, 0, 0}
	i := vm.New(program)
	_, err := i.Run()
	f, ok := err.(*vm.Fault)
	if !ok {
		t.Fatalf("expected *vm.Fault, got %v", err)
	}
	if f.Reason != vm.ReasonInvalidOpcode {
		t.Fatalf("Reason = %q, want %q", f.Reason, vm.ReasonInvalidOpcode)
	}
}

func TestMemoryGrowthOnlyOnNonZeroWrite(t *testing.T) {
	// ADD #0 #0 -> mem[50]: writing a zero far past the end must not
	// grow memory to include it, since the value written is zero.
	zeroWrite := []int64{1101, 0, 0, 50, 99}
	i := vm.New(zeroWrite)
	if _, err := i.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(i.Mem()) > 50 {
		t.Fatalf("writing 0 past the end grew memory to %d cells", len(i.Mem()))
	}

	// ADD #1 #0 -> mem[50]: a non-zero write past the end must grow
	// memory up to and including the target address.
	nonZeroWrite := []int64{1101, 1, 0, 50, 99}
	i2 := vm.New(nonZeroWrite)
	if _, err := i2.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(i2.Mem()) != 51 {
		t.Fatalf("len(Mem()) = %d, want 51", len(i2.Mem()))
	}
	if i2.Mem()[50] != 1 {
		t.Fatalf("mem[50] = %d, want 1", i2.Mem()[50])
	}
}
