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
Package index defines time ordered key-value storage of opaque values
keyed by identifiers. Binary order of identifiers is the order of their
allocation time, range scans over time intervals are scans over
[ulid.MinAt(from), ulid.MaxAt(to)].
*/
package index

import (
	"errors"
	"time"

	"github.com/fogfish/ulid"
)

// ErrNotFound is returned by Get when identifier is not stored
var ErrNotFound = errors.New("index: not found")

// ErrStop terminates Range without error when returned by the callback
var ErrStop = errors.New("index: stop")

// Index is ULID-keyed storage
type Index interface {
	Put(ulid.ULID, []byte) error
	Get(ulid.ULID) ([]byte, error)
	Range(from, to time.Time, fn func(ulid.ULID, []byte) error) error
	Close() error
}

// Append allocates new identifier using the clock and stores the value
func Append(ix Index, clock ulid.Chronos, value []byte) (ulid.ULID, error) {
	uid, err := ulid.New(clock, ulid.FromNow{})
	if err != nil {
		return ulid.ULID{}, err
	}

	if err := ix.Put(uid, value); err != nil {
		return ulid.ULID{}, err
	}

	return uid, nil
}

// Collect reads all values of the time interval, ascending
func Collect(ix Index, from, to time.Time) ([]ulid.ULID, [][]byte, error) {
	var keys []ulid.ULID
	var vals [][]byte

	err := ix.Range(from, to, func(uid ulid.ULID, val []byte) error {
		keys = append(keys, uid)
		vals = append(vals, val)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return keys, vals, nil
}

// Key decodes storage key into identifier
func Key(k []byte) (ulid.ULID, error) {
	return ulid.New(nil, ulid.FromBytes(k))
}
