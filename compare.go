/*

  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved

  Licensed under the Apache License, Version 2.0 (the "License");
  you may not use this file except in compliance with the License.
  You may obtain a copy of the License at

      http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.

*/

package ulid

import (
	"bytes"
	"strings"
	"time"
)

/*******************************************************************************

Ordering

Binary order of bytes, lexicographical order of canonical strings and
numerical order of integers are equivalent.

*******************************************************************************/

/*

Compare identifiers, returns -1, 0 or +1. The function is compatible with
slices.SortFunc.
*/
func Compare(a, b ULID) int {
	return bytes.Compare(a[:], b[:])
}

// Equal returns true if identifiers are equal
func Equal(a, b ULID) bool { return a == b }

// Before returns true if a is strictly less than b
func Before(a, b ULID) bool { return Compare(a, b) < 0 }

// After returns true if a is strictly greater than b
func After(a, b ULID) bool { return Compare(a, b) > 0 }

// Compare identifier with other one
func (uid ULID) Compare(other ULID) int {
	return Compare(uid, other)
}

/*

CompareTime compares ⟨𝒕⟩ fraction of identifier with the wall clock time.
The fraction has millisecond precision, t is compared as is.
*/
func (uid ULID) CompareTime(t time.Time) int {
	return uid.Time().Compare(t)
}

/*

CompareString compares canonical string of identifier with the string
lexicographically, e.g. against keys of external storage.
*/
func (uid ULID) CompareString(val string) int {
	return strings.Compare(encode32(uid), val)
}
