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

package assembler

import (
	"fmt"

	"github.com/zannabianca1997/ic4/expr"
	"github.com/zannabianca1997/ic4/source"
	"github.com/zannabianca1997/ic4/version"
)

// ZerosNotFoldableError reports a ZEROS directive whose length could
// not be folded to a constant against the labels known at the point
// it was lowered.
type ZerosNotFoldableError struct{ Cause error }

func (e *ZerosNotFoldableError) Error() string {
	return fmt.Sprintf("ZEROS length is not foldable yet: %v", e.Cause)
}
func (e *ZerosNotFoldableError) Unwrap() error { return e.Cause }

// ZerosNegativeError reports a ZEROS directive whose folded length is
// negative.
type ZerosNegativeError struct{ Value int64 }

func (e *ZerosNegativeError) Error() string {
	return fmt.Sprintf("ZEROS length folds to negative value %d", e.Value)
}

// MovSizeNotFoldableError reports a MOV (or PUSH/POP, which lower
// through MOV) whose size could not be folded at lowering time.
type MovSizeNotFoldableError struct{ Cause error }

func (e *MovSizeNotFoldableError) Error() string {
	return fmt.Sprintf("MOV size is not foldable yet: %v", e.Cause)
}
func (e *MovSizeNotFoldableError) Unwrap() error { return e.Cause }

// MovSizeNegativeError reports a MOV whose folded size is negative.
type MovSizeNegativeError struct{ Value int64 }

func (e *MovSizeNegativeError) Error() string {
	return fmt.Sprintf("MOV size folds to negative value %d", e.Value)
}

// UnresolvedReferenceError reports a word that remained non-constant
// after the final full-substitution pass.
type UnresolvedReferenceError struct {
	Index int
	Cause error
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("word %d: unresolved reference: %v", e.Index, e.Cause)
}
func (e *UnresolvedReferenceError) Unwrap() error { return e.Cause }

// UnsupportedFormatError reports a non-Executable header; the
// assembler has no linker and cannot consume an Objects file.
type UnsupportedFormatError struct{ Header source.Header }

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported source format %T: only EXECUTABLE is accepted", e.Header)
}

// UnsupportedVersionError reports an Executable header whose version
// is not 0.1.
type UnsupportedVersionError struct{ Version version.Version }

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported executable version %s: only 0.1 is accepted", e.Version)
}

// freshName generates assembler-internal label names with the '&'
// prefix (expr.Internal). User labels are not checked against them; a
// user label of the same form is bound like any redefined label.
func freshName(n int) expr.Reference {
	return expr.Reference(fmt.Sprintf("&%d", n))
}
