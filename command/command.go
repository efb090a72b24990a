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

// Command is one element of a source file's body: a Label, an
// Instruction, or one of the Directive variants.
type Command interface {
	isCommand()
}

// Label binds a name to the word offset of the next emitted word.
type Label struct {
	Name string
}

func (Label) isCommand() {}
