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

// Package escape decodes the character and string literal escape
// grammar of the assembly source (spec.md §4.F): 'c' single-character
// constants and "..." string constants, with the C-style escapes
// \a \b \f \n \r \t \v \\ \' \" \?, \xH+ (one or more hex digits) and
// \ooo (one to three octal digits).
package escape
