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
	"encoding/json"
	"time"
)

/*******************************************************************************

Sources of identifier

*******************************************************************************/

/*

Source is an input shape accepted by New. The set of shapes is closed:

  FromNow{}                  fresh identifier at wall clock time
  FromULID(uid)              copy of existing identifier
  FromTime{Time: t, Seed: s} identifier at time t, random seed if s is nil
  FromString("01ARYZ...")    canonical 26 characters Base32 string
  FromBytes(b)               16 bytes
  FromUUID("01563df3-...")   36 characters hexadecimal string
  FromUint128(x)             128-bit integer
*/
type Source interface{ source() }

// FromNow generates fresh identifier using wall clock and random seed
type FromNow struct{}

// FromULID copies identifier
type FromULID ULID

// FromTime generates identifier at given time. The seed is either nil
// or exactly 10 bytes.
type FromTime struct {
	Time time.Time
	Seed []byte
}

// FromString decodes canonical Base32 string
type FromString string

// FromBytes decodes binary identifier
type FromBytes []byte

// FromUUID decodes hexadecimal xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx string
type FromUUID string

// FromUint128 decodes integer form
type FromUint128 Uint128

func (FromNow) source()     {}
func (FromULID) source()    {}
func (FromTime) source()    {}
func (FromString) source()  {}
func (FromBytes) source()   {}
func (FromUUID) source()    {}
func (FromUint128) source() {}

/*

New creates identifier from the source. Clock is used by generating
sources only (FromNow and FromTime without seed).
*/
func New(clock Chronos, src Source) (ULID, error) {
	switch v := src.(type) {
	case FromNow:
		return mkULID(clock, clock.T(), nil)
	case FromULID:
		return ULID(v), nil
	case FromTime:
		if v.Time.Before(time.UnixMilli(0)) {
			return ULID{}, fault(ErrOverflow, InputTime, 0)
		}
		return mkULID(clock, Timestamp(v.Time), v.Seed)
	case FromString:
		return decode32(string(v))
	case FromBytes:
		if len(v) != Size {
			return ULID{}, fault(ErrInvalidLength, InputBytes, len(v))
		}
		var uid ULID
		copy(uid[:], v)
		return uid, nil
	case FromUUID:
		return decode16(string(v))
	case FromUint128:
		return fromHalves(v.Hi, v.Lo), nil
	default:
		// nil source
		return ULID{}, fault(ErrInvalidLength, InputBytes, 0)
	}
}

func mkULID(clock Chronos, t uint64, seed []byte) (uid ULID, err error) {
	if t > MaxTime {
		return ULID{}, fault(ErrOverflow, InputTime, 0)
	}

	switch {
	case seed == nil:
		if err = clock.Seed(uid[TimeSize:]); err != nil {
			return ULID{}, err
		}
	case len(seed) != SeedSize:
		return ULID{}, fault(ErrInvalidLength, InputSeed, len(seed))
	default:
		copy(uid[TimeSize:], seed)
	}

	ts := PackTime(t)
	copy(uid[:TimeSize], ts[:])
	return uid, nil
}

/*

Make generates fresh identifier using default clock. It panics if random
source fails.
*/
func Make() ULID {
	return must(New(Clock, FromNow{}))
}

/*

At generates identifier at given time using default clock. It panics if
time is out of 48-bit millisecond range.
*/
func At(t time.Time) ULID {
	return must(New(Clock, FromTime{Time: t}))
}

/*

Parse decodes either canonical or UUID string, the shape is defined by length
*/
func Parse(val string) (ULID, error) {
	switch len(val) {
	case EncodedSize:
		return decode32(val)
	case UUIDSize:
		return decode16(val)
	default:
		return ULID{}, fault(ErrInvalidLength, InputCanonical, len(val))
	}
}

/*

MustParse is like Parse but panics if string cannot be decoded
*/
func MustParse(val string) ULID {
	return must(Parse(val))
}

func must(uid ULID, err error) ULID {
	if err != nil {
		panic(err)
	}
	return uid
}

/*******************************************************************************

Lenses of identifier

*******************************************************************************/

// Timestamp returns ⟨𝒕⟩ fraction, milliseconds since Unix epoch
func (uid ULID) Timestamp() uint64 {
	var b [TimeSize]byte
	copy(b[:], uid[:TimeSize])
	return UnpackTime(b)
}

// Time returns ⟨𝒕⟩ fraction as UTC wall clock time
func (uid ULID) Time() time.Time {
	return Time(uid.Timestamp())
}

// Seed returns copy of ⟨𝒔⟩ fraction
func (uid ULID) Seed() []byte {
	seed := make([]byte, SeedSize)
	copy(seed, uid[TimeSize:])
	return seed
}

// Bytes returns copy of binary identifier
func (uid ULID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, uid[:])
	return b
}

// IsZero checks if all bits are zero
func (uid ULID) IsZero() bool {
	return uid == ULID{}
}

// String encodes identifier to canonical, lexicographically sortable string
func (uid ULID) String() string {
	return encode32(uid)
}

// UUIDString encodes identifier to lower case hexadecimal 8-4-4-4-12 string
func (uid ULID) UUIDString() string {
	return encode16(uid)
}

/*******************************************************************************

Codecs

*******************************************************************************/

// MarshalText encodes identifier to canonical string
func (uid ULID) MarshalText() ([]byte, error) {
	return []byte(encode32(uid)), nil
}

// UnmarshalText decodes either canonical or UUID string
func (uid *ULID) UnmarshalText(b []byte) error {
	val, err := Parse(string(b))
	if err != nil {
		return err
	}
	*uid = val
	return nil
}

// MarshalBinary encodes identifier to 16 bytes
func (uid ULID) MarshalBinary() ([]byte, error) {
	return uid.Bytes(), nil
}

// UnmarshalBinary decodes identifier from 16 bytes
func (uid *ULID) UnmarshalBinary(b []byte) error {
	val, err := New(Clock, FromBytes(b))
	if err != nil {
		return err
	}
	*uid = val
	return nil
}

/*

UnmarshalJSON decodes lexicographically sortable strings to identifier
*/
func (uid *ULID) UnmarshalJSON(b []byte) (err error) {
	var val string
	if err = json.Unmarshal(b, &val); err != nil {
		return
	}
	return uid.UnmarshalText([]byte(val))
}

/*

MarshalJSON encodes identifier to lexicographically sortable JSON strings
*/
func (uid ULID) MarshalJSON() (bytes []byte, err error) {
	return json.Marshal(encode32(uid))
}

/*******************************************************************************

String helpers

*******************************************************************************/

// Generate returns fresh canonical string
func Generate() string {
	return Make().String()
}

// AtString returns canonical string with random seed at given time
func AtString(t time.Time) string {
	return At(t).String()
}

// TimeOf returns UTC time encoded by canonical or UUID string
func TimeOf(val string) (time.Time, error) {
	uid, err := Parse(val)
	if err != nil {
		return time.Time{}, err
	}
	return uid.Time(), nil
}
