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
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/zannabianca1997/ic4/assembler"
	"github.com/zannabianca1997/ic4/parser"
)

// loadProgram reads path (or stdin if path is empty) and returns its
// assembled word list. Input whose only non-blank line is a
// comma-separated run of integers is treated as an already-assembled
// object; anything else is parsed and assembled as source text.
func loadProgram(path string) ([]int64, error) {
	name := path
	var r io.Reader
	if path == "" {
		name = "<stdin>"
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	if obj, ok := parseObjectLine(data); ok {
		return obj, nil
	}
	src, err := parser.Parse(name, strings.NewReader(string(data)))
	if err != nil {
		return nil, err
	}
	return assembler.Assemble(src)
}

func parseObjectLine(data []byte) ([]int64, bool) {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, false
	}
	fields := strings.Split(text, ",")
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}
