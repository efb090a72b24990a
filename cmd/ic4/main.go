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
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/zannabianca1997/ic4/internal/ngi"
	"github.com/zannabianca1997/ic4/vm"
)

func assembleCmd(c *cli.Context) error {
	// with no file argument, read source from stdin, matching the
	// original CLI's convenience for piping assembly in.
	prog, err := loadProgram(c.Args().First())
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("%+v", err), 1)
	}
	if err := ngi.WriteObject(os.Stdout, prog); err != nil {
		return cli.NewExitError(fmt.Sprintf("%+v", err), 1)
	}
	return nil
}

func runCmd(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.NewExitError("missing source or object file", 1)
	}
	prog, err := loadProgram(c.Args().First())
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("%+v", err), 1)
	}

	var opts []vm.Option
	if size := c.Int("mem"); size > 0 {
		opts = append(opts, vm.WithMemorySize(size))
	}
	i := vm.New(prog, opts...)

	stdin := os.Stdin
	interactive := c.Bool("interactive")
	var restore func()
	if interactive {
		restore, err = setRawIO()
		if err != nil {
			return cli.NewExitError(errors.Wrap(err, "enabling raw IO"), 1)
		}
		defer restore()
	}

	if err := runProgram(i, stdin, os.Stdout, interactive); err != nil {
		return cli.NewExitError(fmt.Sprintf("%+v", err), 1)
	}
	if !i.Halted() && i.Err() == nil {
		// ran out of stdin while the VM was still waiting on IN
		fmt.Fprintln(os.Stderr, "ic4: input exhausted, VM left suspended")
	}
	return nil
}

func disasmCmd(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.NewExitError("missing object file", 1)
	}
	prog, err := loadProgram(c.Args().First())
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("%+v", err), 1)
	}
	for pc := int64(0); pc < int64(len(prog)); {
		text, next := vm.Disassemble(prog, pc)
		fmt.Printf("%6d  %s\n", pc, text)
		if next <= pc {
			break
		}
		pc = next
	}
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "ic4"
	app.Usage = "assemble, run and disassemble IntCode programs"
	app.Commands = []cli.Command{
		{
			Name:      "assemble",
			Usage:     "assemble a source file (or stdin) and print its object form",
			ArgsUsage: "[source.ic4a]",
			Action:    assembleCmd,
		},
		{
			Name:      "run",
			Usage:     "run a source or object file",
			ArgsUsage: "source.ic4a|object.ic4o",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "interactive",
					Usage: "put the controlling terminal in raw mode and feed input one byte at a time",
				},
				cli.IntFlag{
					Name:  "mem",
					Usage: "pre-grow memory to at least this many cells",
				},
			},
			Action: runCmd,
		},
		{
			Name:      "disasm",
			Usage:     "disassemble an object file",
			ArgsUsage: "object.ic4o",
			Action:    disasmCmd,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
