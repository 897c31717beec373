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

import "strconv"

const (
	// Size of binary identifier
	Size = 16
	// EncodedSize is length of canonical Base32 string
	EncodedSize = 26
	// UUIDSize is length of hexadecimal 8-4-4-4-12 string
	UUIDSize = 36
	// TimeSize is number of bytes occupied by ⟨𝒕⟩
	TimeSize = 6
	// SeedSize is number of bytes occupied by ⟨𝒔⟩
	SeedSize = 10
	// MaxTime is the largest representable timestamp, year 10889
	MaxTime uint64 = 1<<48 - 1
)

var (
	// MinSeed is the smallest possible seed
	MinSeed = []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	// MaxSeed is the largest possible seed
	MaxSeed = []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
)

/*

ULID is native representation of identifier, 16 bytes big-endian

	   48 bit               80 bit
	|--------|------------------------------|
	   ⟨𝒕⟩                  ⟨𝒔⟩

Bytes are the single source of truth, every other representation is derived
from them.
*/
type ULID [Size]byte

/*

Uint128 is the integer form of identifier, split into high and low 64 bits.
*/
type Uint128 struct{ Hi, Lo uint64 }

// Bytes encodes integer to big-endian bytes
func (x Uint128) Bytes() []byte {
	return split(x.Hi, x.Lo, 128, 8)
}

// Less compares integers
func (x Uint128) Less(y Uint128) bool {
	return x.Hi < y.Hi || (x.Hi == y.Hi && x.Lo < y.Lo)
}

// String renders integer in decimal notation
func (x Uint128) String() string {
	if x.Hi == 0 {
		return strconv.FormatUint(x.Lo, 10)
	}
	return x.Big().String()
}

// Chronos is an abstraction of wall clock and random source used by library.
type Chronos interface {
	// Wall clock ⟨𝒕⟩, milliseconds since Unix epoch
	T() uint64
	// Seed fills the slice with unpredictable bytes ⟨𝒔⟩
	Seed([]byte) error
}
