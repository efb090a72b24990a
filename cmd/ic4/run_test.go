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

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zannabianca1997/ic4/vm"
)

func TestWordSourceLineMode(t *testing.T) {
	s := newWordSource(strings.NewReader("1 2\n3\n"), false)
	want := []int64{1, 2, 3}
	for _, w := range want {
		v, err := s.next()
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if v != w {
			t.Errorf("next() = %d, want %d", v, w)
		}
	}
}

func TestWordSourceInteractiveMode(t *testing.T) {
	s := newWordSource(strings.NewReader("AB"), true)
	for _, want := range []int64{'A', 'B'} {
		v, err := s.next()
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if v != want {
			t.Errorf("next() = %d, want %d", v, want)
		}
	}
}

func TestRunProgramEchoesStdinToStdout(t *testing.T) {
	// scratch lives at address 7, past the loop body, so jumping back to
	// pc 0 never refetches a word the loop has clobbered. The jump is
	// encoded as JNZ with an immediate true condition and an immediate
	// target, since there is no unconditional-jump opcode.
	prog := []int64{
		3, 7, // 0: IN  [7]
		4, 7, // 2: OUT [7]
		1105, 1, 0, // 4: JNZ #1, #0 -> jump to 0
		0, // 7: scratch cell (ignored, pre-seeded to 0)
	}

	i := vm.New(prog)
	var out bytes.Buffer
	in := strings.NewReader("7\n9\n")
	if err := runProgram(i, in, &out, false); err != nil {
		t.Fatalf("runProgram: %v", err)
	}
	if out.String() != "7\n9\n" {
		t.Errorf("out = %q, want %q", out.String(), "7\n9\n")
	}
}
