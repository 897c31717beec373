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

import "math/big"

func (uid ULID) halves() (hi, lo uint64) {
	return fold(128, 8, uid[:])
}

func fromHalves(hi, lo uint64) (uid ULID) {
	copy(uid[:], split(hi, lo, 128, 8))
	return
}

/*

Uint128 returns integer form of identifier
*/
func (uid ULID) Uint128() Uint128 {
	hi, lo := uid.halves()
	return Uint128{Hi: hi, Lo: lo}
}

/*

Big returns integer form of identifier as arbitrary precision number
*/
func (uid ULID) Big() *big.Int {
	return new(big.Int).SetBytes(uid[:])
}

// Big converts integer to arbitrary precision number
func (x Uint128) Big() *big.Int {
	return new(big.Int).SetBytes(x.Bytes())
}

/*

FromBig decodes identifier from arbitrary precision number. Negative
numbers and numbers wider than 128 bits are rejected.
*/
func FromBig(x *big.Int) (ULID, error) {
	if x == nil || x.Sign() < 0 || x.BitLen() > 128 {
		return ULID{}, fault(ErrOverflow, InputInteger, 0)
	}

	var uid ULID
	x.FillBytes(uid[:])
	return uid, nil
}
