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

import "time"

/*

PackTime encodes low 48 bits of millisecond timestamp as big-endian bytes.
Bits above 48 are discarded, use MaxTime to guard the input.
*/
func PackTime(ms uint64) (b [TimeSize]byte) {
	copy(b[:], split(0, ms, TimeSize*8, 8))
	return
}

/*

UnpackTime decodes big-endian bytes into millisecond timestamp.
*/
func UnpackTime(b [TimeSize]byte) uint64 {
	_, ms := fold(TimeSize*8, 8, b[:])
	return ms
}

/*

Timestamp converts wall clock time to milliseconds since Unix epoch.
*/
func Timestamp(t time.Time) uint64 {
	return uint64(t.UnixMilli())
}

/*

Time converts milliseconds since Unix epoch to UTC wall clock time.
*/
func Time(ms uint64) time.Time {
	return time.UnixMilli(int64(ms)).UTC()
}
