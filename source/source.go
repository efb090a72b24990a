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

// Package source is the plain aggregate a parser hands to the
// assembler: a header (EXECUTABLE or OBJECTS) plus an ordered command
// body. It performs no validation of its own; the assembler is the one
// place that decides which headers it accepts.
package source

import "github.com/zannabianca1997/ic4/command"
import "github.com/zannabianca1997/ic4/version"

// Header is either an Executable or an Objects header.
type Header interface {
	isHeader()
}

// Executable is the only header the assembler currently lowers.
type Executable struct {
	Version version.Version
}

func (Executable) isHeader() {}

// Objects is the grammar's object-file header. The assembler always
// rejects it with UnsupportedFormat; no linker exists yet (spec.md §9).
type Objects struct {
	Version version.Version
	Export  []string
	Extern  []string
	Entry   string
}

func (Objects) isHeader() {}

// File is a parsed source file: a header plus its ordered command body.
type File struct {
	Header Header
	Body   []command.Command
}
