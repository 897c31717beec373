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

MinAt returns the smallest identifier of the millisecond, seed is all 0.
Times outside of 48-bit millisecond range are clamped.
*/
func MinAt(t time.Time) ULID {
	return boundary(t, MinSeed)
}

/*

MaxAt returns the largest identifier of the millisecond, seed is all 1.
Times outside of 48-bit millisecond range are clamped.
*/
func MaxAt(t time.Time) ULID {
	return boundary(t, MaxSeed)
}

/*

Bounds returns inclusive range [MinAt(from), MaxAt(to)] of identifiers
allocated between the given times. The range is suitable for scans over
storages sorted by binary or canonical keys.
*/
func Bounds(from, to time.Time) (ULID, ULID) {
	return MinAt(from), MaxAt(to)
}

func boundary(t time.Time, seed []byte) (uid ULID) {
	ms := uint64(0)
	switch {
	case t.Before(time.UnixMilli(0)):
		ms = 0
	case Timestamp(t) > MaxTime:
		ms = MaxTime
	default:
		ms = Timestamp(t)
	}

	ts := PackTime(ms)
	copy(uid[:TimeSize], ts[:])
	copy(uid[TimeSize:], seed)
	return
}

// MinString returns canonical string of MinAt
func MinString(t time.Time) string { return MinAt(t).String() }

// MaxString returns canonical string of MaxAt
func MaxString(t time.Time) string { return MaxAt(t).String() }
