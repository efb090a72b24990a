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

// Command ic4 drives the parser, assembler and VM from the command
// line.
//
// Usage:
//
//	ic4 assemble source.ic4a
//	ic4 run [--interactive] [--mem size] source.ic4a|object.ic4o
//	ic4 disasm object.ic4o
//
// assemble reads assembly source text and writes its object form (one
// line of comma-separated words) to stdout.
//
// run accepts either assembly source or an already-assembled object
// line, executes it, and wires stdin/stdout to the VM's input/output
// FIFOs: each line of stdin is parsed as whitespace-separated integers
// fed to IN, and each OUT is printed as a line on stdout. --interactive
// switches the controlling terminal to raw mode so individual keys
// reach the VM without the line editor intercepting them.
//
// disasm prints a best-effort mnemonic dump of an object line.
package main
