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

// Package indextest verifies behavior of index.Index implementations
package indextest

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/ulid"
	"github.com/fogfish/ulid/index"
)

// Run executes the suite against indexes created by the factory
func Run(t *testing.T, open func(t *testing.T) index.Index) {
	t.Helper()

	t.Run("PutGet", func(t *testing.T) { testPutGet(t, open(t)) })
	t.Run("NotFound", func(t *testing.T) { testNotFound(t, open(t)) })
	t.Run("Append", func(t *testing.T) { testAppend(t, open(t)) })
	t.Run("Range", func(t *testing.T) { testRange(t, open(t)) })
	t.Run("RangeInclusive", func(t *testing.T) { testRangeInclusive(t, open(t)) })
	t.Run("RangeStop", func(t *testing.T) { testRangeStop(t, open(t)) })
	t.Run("RangeFailure", func(t *testing.T) { testRangeFailure(t, open(t)) })
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(clock ulid.Chronos, t time.Time) ulid.ULID {
	uid, err := ulid.New(clock, ulid.FromTime{Time: t})
	if err != nil {
		panic(err)
	}
	return uid
}

func testPutGet(t *testing.T, ix index.Index) {
	defer ix.Close()

	uid := ulid.Make()
	err := ix.Put(uid, []byte("value"))
	val, gerr := ix.Get(uid)

	it.Then(t).Should(
		it.Nil(err),
		it.Nil(gerr),
		it.Equiv(val, []byte("value")),
	)
}

func testNotFound(t *testing.T, ix index.Index) {
	defer ix.Close()

	_, err := ix.Get(ulid.Make())

	it.Then(t).Should(
		it.True(errors.Is(err, index.ErrNotFound)),
	)
}

func testAppend(t *testing.T, ix index.Index) {
	defer ix.Close()

	clock := ulid.NewClock(ulid.WithClock(func() uint64 { return ulid.Timestamp(epoch) }))
	uid, err := index.Append(ix, clock, []byte("value"))
	val, gerr := ix.Get(uid)

	it.Then(t).Should(
		it.Nil(err),
		it.Nil(gerr),
		it.Equal(uid.Time(), epoch),
		it.Equiv(val, []byte("value")),
	)
}

// stores one value per second within the minute after epoch, latest first
func fill(t *testing.T, ix index.Index) []ulid.ULID {
	t.Helper()

	uids := make([]ulid.ULID, 60)
	for sec := range uids {
		uids[sec] = at(ulid.Clock, epoch.Add(time.Duration(sec)*time.Second))
	}

	for sec := len(uids) - 1; sec >= 0; sec-- {
		if err := ix.Put(uids[sec], []byte(fmt.Sprintf("%02d", sec))); err != nil {
			t.Fatal(err)
		}
	}

	return uids
}

func testRange(t *testing.T, ix index.Index) {
	defer ix.Close()
	uids := fill(t, ix)

	keys, vals, err := index.Collect(ix, epoch.Add(10*time.Second), epoch.Add(19*time.Second))

	it.Then(t).Should(
		it.Nil(err),
		it.Equal(len(keys), 10),
		it.Equiv(keys, uids[10:20]),
		it.Equiv(vals[0], []byte("10")),
		it.Equiv(vals[9], []byte("19")),
	)
}

func testRangeInclusive(t *testing.T, ix index.Index) {
	defer ix.Close()

	ts := epoch.Add(time.Second)
	lo := ulid.MinAt(ts)
	hi := ulid.MaxAt(ts)
	mid := at(ulid.Clock, ts)

	for _, uid := range []ulid.ULID{
		ulid.MaxAt(epoch), hi, mid, lo, ulid.MinAt(ts.Add(time.Millisecond)),
	} {
		if err := ix.Put(uid, uid.Bytes()); err != nil {
			t.Fatal(err)
		}
	}

	keys, vals, err := index.Collect(ix, ts, ts)

	it.Then(t).Should(
		it.Nil(err),
		it.Equal(len(keys), 3),
		it.Equal(keys[0], lo),
		it.Equal(keys[1], mid),
		it.Equal(keys[2], hi),
		it.True(bytes.Equal(vals[2], hi.Bytes())),
	)
}

func testRangeStop(t *testing.T, ix index.Index) {
	defer ix.Close()
	fill(t, ix)

	seen := 0
	err := ix.Range(epoch, epoch.Add(time.Minute), func(ulid.ULID, []byte) error {
		seen++
		if seen == 5 {
			return index.ErrStop
		}
		return nil
	})

	it.Then(t).Should(
		it.Nil(err),
		it.Equal(seen, 5),
	)
}

func testRangeFailure(t *testing.T, ix index.Index) {
	defer ix.Close()
	fill(t, ix)

	failure := errors.New("failure")
	err := ix.Range(epoch, epoch.Add(time.Minute), func(ulid.ULID, []byte) error {
		return failure
	})

	it.Then(t).Should(
		it.True(errors.Is(err, failure)),
	)
}
