//
//   Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//   Licensed under the Apache License, Version 2.0 (the "License");
//   you may not use this file except in compliance with the License.
//   You may obtain a copy of the License at
//
//       http://www.apache.org/licenses/LICENSE-2.0
//
//   Unless required by applicable law or agreed to in writing, software
//   distributed under the License is distributed on an "AS IS" BASIS,
//   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//   See the License for the specific language governing permissions and
//   limitations under the License.
//

package ulid

// Crockford's Base32, excludes I, L, O and U
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// symbols maps ASCII to alphabet index + 1, zero is not a symbol.
// Lower case letters are aliases of upper case ones.
var symbols = [256]byte{
	'0': 1, '1': 2, '2': 3, '3': 4, '4': 5, '5': 6, '6': 7, '7': 8,
	'8': 9, '9': 10, 'A': 11, 'B': 12, 'C': 13, 'D': 14, 'E': 15, 'F': 16,
	'G': 17, 'H': 18, 'J': 19, 'K': 20, 'M': 21, 'N': 22, 'P': 23, 'Q': 24,
	'R': 25, 'S': 26, 'T': 27, 'V': 28, 'W': 29, 'X': 30, 'Y': 31, 'Z': 32,
	'a': 11, 'b': 12, 'c': 13, 'd': 14, 'e': 15, 'f': 16, 'g': 17, 'h': 18,
	'j': 19, 'k': 20, 'm': 21, 'n': 22, 'p': 23, 'q': 24, 'r': 25, 's': 26,
	't': 27, 'v': 28, 'w': 29, 'x': 30, 'y': 31, 'z': 32,
}

// 26 symbols × 5 bits, two leading bits are always zero
const encodedBits = EncodedSize * 5

func encode32(uid ULID) string {
	hi, lo := uid.halves()
	b := make([]byte, EncodedSize)
	for i, x := range split(hi, lo, encodedBits, 5) {
		b[i] = alphabet[x]
	}
	return string(b)
}

func decode32(val string) (uid ULID, err error) {
	if len(val) != EncodedSize {
		return ULID{}, fault(ErrInvalidLength, InputCanonical, len(val))
	}

	b := make([]byte, EncodedSize)
	for i := 0; i < len(val); i++ {
		x := symbols[val[i]]
		if x == 0 {
			return ULID{}, fault(ErrInvalidCharacter, InputCanonical, i)
		}
		b[i] = x - 1
	}

	// leading symbol carries two spare bits, '7' is the largest legal value
	if b[0] > 7 {
		return ULID{}, fault(ErrOverflow, InputCanonical, 0)
	}

	return fromHalves(fold(encodedBits, 5, b)), nil
}
