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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/zannabianca1997/ic4/vm"
)

// wordSource turns stdin into a stream of input words: one byte per
// word in interactive mode, whitespace-separated decimal integers
// otherwise.
type wordSource struct {
	interactive bool
	r           *bufio.Reader
	pending     []int64
}

func newWordSource(r io.Reader, interactive bool) *wordSource {
	return &wordSource{interactive: interactive, r: bufio.NewReader(r)}
}

func (s *wordSource) next() (int64, error) {
	if s.interactive {
		b, err := s.r.ReadByte()
		if err != nil {
			return 0, err
		}
		return int64(b), nil
	}
	for len(s.pending) == 0 {
		line, err := s.r.ReadString('\n')
		for _, f := range strings.Fields(line) {
			v, perr := strconv.ParseInt(f, 10, 64)
			if perr != nil {
				return 0, errors.Wrapf(perr, "parsing input word %q", f)
			}
			s.pending = append(s.pending, v)
		}
		if err != nil {
			if len(s.pending) == 0 {
				return 0, err
			}
			break
		}
	}
	v := s.pending[0]
	s.pending = s.pending[1:]
	return v, nil
}

// runProgram drives i to completion, feeding words read from stdin
// whenever it suspends on IN and printing every word it writes via
// OUT, one per line, as soon as a run of instructions produces it.
func runProgram(i *vm.Instance, stdin io.Reader, stdout io.Writer, interactive bool) error {
	src := newWordSource(stdin, interactive)
	w := bufio.NewWriter(stdout)
	defer w.Flush()

	flush := func() {
		for _, v := range i.DrainOutput() {
			fmt.Fprintln(w, v)
		}
	}

	for {
		suspended, err := i.Run()
		flush()
		if err != nil {
			return err
		}
		if !suspended {
			return nil
		}
		v, err := src.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		i.GiveInput(v)
	}
}
