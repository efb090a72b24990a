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

// Package vm implements the IntCode virtual machine: a flat growable
// memory of signed 64-bit cells, a program counter, a relative base
// register, and nine opcodes plus HALT.
//
// An Instance is coroutine-shaped. Run executes until the program
// halts or until it tries to read from an empty input FIFO, at which
// point Run returns with suspended=true so the caller can supply more
// input (GiveInput) and resume (Run again). This is the only
// suspension point the machine has; there is no preemption and no
// concurrency within a single Instance.
package vm
