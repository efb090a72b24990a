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

import "testing"

func TestParseObjectLine(t *testing.T) {
	out, ok := parseObjectLine([]byte("1,2,3\n"))
	if !ok {
		t.Fatal("expected object line to be recognized")
	}
	want := []int64{1, 2, 3}
	if len(out) != len(want) {
		t.Fatalf("out = %v, want %v", out, want)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], want[i])
		}
	}
}

func TestParseObjectLineRejectsSource(t *testing.T) {
	if _, ok := parseObjectLine([]byte("EXECUTABLE 0.1\nHALT\n")); ok {
		t.Fatal("source text must not parse as an object line")
	}
}

func TestParseObjectLineRejectsEmpty(t *testing.T) {
	if _, ok := parseObjectLine([]byte("   \n")); ok {
		t.Fatal("blank input must not parse as an object line")
	}
}
