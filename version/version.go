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

// Package version parses and compares the small version grammar used by
// the EXECUTABLE/OBJECTS source header: major.minor[.patch][_extra].
// Ordering only considers (major, minor, patch); extra is a
// non-ordering tag, kept for display purposes only.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Version is a parsed major.minor[.patch][_extra] value.
type Version struct {
	Major int
	Minor int
	Patch int
	Extra string // non-ordering tag, e.g. "rc1"
}

// New builds a Version with no patch or extra tag.
func New(major, minor int) Version { return Version{Major: major, Minor: minor} }

// String renders the version in its canonical textual form.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d", v.Major, v.Minor)
	if v.Patch != 0 || v.Extra != "" {
		s += fmt.Sprintf(".%d", v.Patch)
	}
	if v.Extra != "" {
		s += "_" + v.Extra
	}
	return s
}

// Parse parses a version string of the form major.minor[.patch][_extra].
func Parse(s string) (Version, error) {
	var v Version
	rest := s
	if idx := strings.IndexByte(rest, '_'); idx >= 0 {
		v.Extra = rest[idx+1:]
		rest = rest[:idx]
	}
	parts := strings.Split(rest, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, errors.Errorf("invalid version %q: expected major.minor[.patch][_extra]", s)
	}
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, errors.Wrapf(err, "invalid version %q", s)
		}
		nums[i] = n
	}
	v.Major, v.Minor = nums[0], nums[1]
	if len(nums) == 3 {
		v.Patch = nums[2]
	}
	return v, nil
}

// Compare returns -1, 0 or 1 as a's (major, minor, patch) triple is
// less than, equal to or greater than b's. Extra never affects ordering.
func Compare(a, b Version) int {
	for _, pair := range [][2]int{{a.Major, b.Major}, {a.Minor, b.Minor}, {a.Patch, b.Patch}} {
		if pair[0] != pair[1] {
			if pair[0] < pair[1] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether a and b compare equal, ignoring Extra.
func Equal(a, b Version) bool { return Compare(a, b) == 0 }
