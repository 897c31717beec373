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

// hi | lo division at
const hilo = uint64(64)

// split decomposes ⟨hi, lo⟩ value to cells. The function acts as binary
// comprehension: the value is read as size-bit big-endian number, the n
// defines number of bits to extract into each cell. Sizes above 128 bits
// are padded with leading zeros.
//
//	   size          128            64             0
//	  |----|-----------|-------------|-------------|
//	   pad       hi                        lo
func split(hi, lo, size, n uint64) (cells []byte) {
	cells = make([]byte, size/n)

	mask := uint64(1<<n) - 1
	i := 0

	for a := size; a >= n; a -= n {
		b := a - n
		switch {
		case b >= hilo:
			cells[i] = byte(hi >> (b - hilo) & mask)
		case a <= hilo:
			cells[i] = byte(lo >> b & mask)
		default:
			cells[i] = byte((hi<<(hilo-b) | lo>>b) & mask)
		}
		i++
	}

	return
}

// fold composes ⟨hi, lo⟩ value from cells. The operation is inverse to split.
// Bits above 128 are discarded, the caller validates them.
func fold(size, n uint64, cells []byte) (hi, lo uint64) {
	mask := uint64(1<<n) - 1
	i := 0

	for a := size; a >= n; a -= n {
		b := a - n
		x := uint64(cells[i]) & mask
		switch {
		case b >= hilo:
			hi |= x << (b - hilo)
		case a <= hilo:
			lo |= x << b
		default:
			hi |= x >> (hilo - b)
			lo |= x << b
		}
		i++
	}
	return
}
