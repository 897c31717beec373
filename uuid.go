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
	"encoding/hex"

	"github.com/google/uuid"
)

/*

UUID returns identifier as RFC 4122 value. Bytes are copied verbatim, the
version and variant bits are not set.
*/
func (uid ULID) UUID() uuid.UUID {
	return uuid.UUID(uid)
}

/*

FromUUIDValue converts RFC 4122 value to identifier
*/
func FromUUIDValue(u uuid.UUID) ULID {
	return ULID(u)
}

// lower case xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func encode16(uid ULID) string {
	return uuid.UUID(uid).String()
}

func decode16(val string) (ULID, error) {
	if len(val) != UUIDSize {
		return ULID{}, fault(ErrInvalidLength, InputUUID, len(val))
	}

	// dashes are only accepted at 8, 13, 18 and 23
	for i := 0; i < len(val); i++ {
		dash := i == 8 || i == 13 || i == 18 || i == 23
		if dash != (val[i] == '-') {
			return ULID{}, fault(ErrInvalidCharacter, InputUUID, i)
		}
	}

	u, err := uuid.Parse(val)
	if err != nil {
		return ULID{}, fault(ErrInvalidCharacter, InputUUID, badHex(val))
	}

	return ULID(u), nil
}

// offset of the first character that is neither hex digit nor dash
func badHex(val string) int {
	for i := 0; i < len(val); i++ {
		c := val[i]
		if c == '-' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F') {
			continue
		}
		return i
	}
	return 0
}

/*

SeedFromHex decodes seed supplied as text of 20 hex digits.
*/
func SeedFromHex(val string) ([]byte, error) {
	if len(val) != SeedSize*2 {
		return nil, fault(ErrInvalidLength, InputSeed, len(val))
	}

	seed, err := hex.DecodeString(val)
	if err != nil {
		return nil, fault(ErrInvalidSeedEncoding, InputSeed, len(val))
	}

	return seed, nil
}
