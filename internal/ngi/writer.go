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

// Package ngi holds small pieces shared by cmd/ic4 that don't belong to
// any single spec component.
package ngi

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// ErrWriter wraps an io.Writer and remembers the first error it hits.
// Once Err is set, Write and WriteWord become no-ops that keep
// returning it, so a caller can fire off a whole object dump without
// checking every intermediate call and test a single error at the end.
type ErrWriter struct {
	w   io.Writer
	Err error
}

// NewErrWriter returns a new ErrWriter wrapping w.
func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{w: w}
}

func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// WriteWord appends one assembled word to the stream, comma-separating
// it from whatever came before. Call WriteObject to write a whole
// program at once; WriteWord exists for callers that stream words as
// they are produced (e.g. an interactive disassembler).
func (w *ErrWriter) WriteWord(i int, v int64) {
	if w.Err != nil {
		return
	}
	if i > 0 {
		if _, err := w.w.Write(comma); err != nil {
			w.Err = errors.Wrap(err, "write failed")
			return
		}
	}
	if _, err := io.WriteString(w.w, strconv.FormatInt(v, 10)); err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
}

var comma = []byte{','}

// WriteObject renders a program as spec.md's object format: a single
// line of comma-separated decimal integers terminated by a newline.
func WriteObject(w io.Writer, program []int64) error {
	ew := NewErrWriter(w)
	for i, v := range program {
		ew.WriteWord(i, v)
	}
	if _, err := ew.Write([]byte{'\n'}); err != nil {
		return err
	}
	return ew.Err
}
