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

package vm

// GiveInput appends values to the input FIFO, in order. It never
// blocks and never runs the VM; call Run (or GetOutput) afterward to
// let a suspended instance make progress.
func (i *Instance) GiveInput(values ...int64) {
	i.input = append(i.input, values...)
}

// GetOutput returns the next buffered output word. If none is
// buffered, it runs the VM first to try to produce one; it returns
// false if output is still empty (the VM halted or suspended without
// emitting anything).
func (i *Instance) GetOutput() (int64, bool) {
	if len(i.output) == 0 {
		i.Run()
		if len(i.output) == 0 {
			return 0, false
		}
	}
	v := i.output[0]
	i.output = i.output[1:]
	return v, true
}

// DrainOutput returns and clears everything currently buffered, without
// running the VM. Useful for callers that drive Run themselves and want
// to flush output between suspension points.
func (i *Instance) DrainOutput() []int64 {
	out := i.output
	i.output = nil
	return out
}
