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

/*

Package ulid implements Universally Unique Lexicographically Sortable
Identifiers for Golang applications. The identifier is 128-bit value

  48 bit                80 bit
  |--------|------------------------------|
    ⟨𝒕⟩                  ⟨𝒔⟩

↣ ⟨𝒕⟩ is 48-bit UNIX timestamp with millisecond precision. It does not run
out of space until the year 10889.

↣ ⟨𝒔⟩ is 80-bit seed drawn from cryptographic random generator or supplied
by application.

Identifiers are not monotonic within the same millisecond, the seed
randomizes their order. Identifiers of different milliseconds are ordered
by time.

Representations

The 16 bytes big-endian value is the single source of truth, other
representations are derived from it:

↣ canonical 26 characters Crockford's Base32 string, e.g.
01ARYZ6RR0T8CNRGXPSBZSA1PY. It is case-insensitive on input and upper
case on output.

↣ 36 characters hexadecimal string, e.g.
01563df3-6300-d219-5c43-b6caff9506de. It is case-insensitive on input and
lower case on output.

↣ 128-bit unsigned integer, Uint128 or math/big.Int.

Binary order of bytes, lexicographical order of canonical strings and
numerical order of integers are equivalent. It makes the identifier an
excellent key for sorted storages. MinAt and MaxAt produces bounds of
inclusive range scans for time intervals.

Usage

  uid := ulid.Make()
  uid, err := ulid.New(ulid.Clock, ulid.FromString("01ARYZ6RR0T8CNRGXPSBZSA1PY"))
  lo, hi := ulid.Bounds(from, to)

*/
package ulid
