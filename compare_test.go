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

package ulid_test

import (
	"encoding/binary"
	"slices"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/ulid"
)

func TestOrdering(t *testing.T) {
	at := time.Now()
	first := ulid.At(at.Add(-5 * time.Second))
	last := ulid.At(at)

	it.Then(t).Should(
		it.True(ulid.Before(first, last)),
		it.True(ulid.After(last, first)),
		it.True(ulid.Equal(first, first)),
		it.Equal(first.Compare(last), -1),
		it.Equal(last.Compare(first), 1),
		it.Equal(first.Compare(first), 0),
	)
}

func TestCompareString(t *testing.T) {
	at := time.Now()
	first := ulid.At(at.Add(-5 * time.Second))
	last := ulid.At(at)

	it.Then(t).Should(
		it.Equal(first.CompareString(last.String()), -1),
		it.Equal(last.CompareString(first.String()), 1),
		it.Equal(first.CompareString(first.String()), 0),
	)
}

func TestCompareTime(t *testing.T) {
	at := time.Now()
	first := ulid.At(at.Add(-5 * time.Second))
	last := ulid.At(at)

	it.Then(t).Should(
		it.Equal(first.CompareTime(last.Time()), -1),
		it.Equal(last.CompareTime(first.Time()), 1),
		it.Equal(last.CompareTime(last.Time()), 0),
		it.Equal(ulid.MinAt(at).CompareTime(at.Truncate(time.Millisecond)), 0),
	)
}

func TestCompareAgreement(t *testing.T) {
	for i := 0; i < 1000; i++ {
		a := ulid.Make()
		b := ulid.Make()

		byBytes := ulid.Compare(a, b)
		byString := strings.Compare(a.String(), b.String())
		byInt := 0
		switch {
		case a.Uint128().Less(b.Uint128()):
			byInt = -1
		case b.Uint128().Less(a.Uint128()):
			byInt = 1
		}

		it.Then(t).Should(
			it.Equal(byBytes, byString),
			it.Equal(byBytes, byInt),
			it.Equal(byBytes, a.Big().Cmp(b.Big())),
			it.Equal(byBytes, a.CompareString(b.String())),
		)
	}
}

func TestSortsAsStrings(t *testing.T) {
	at := time.Now()
	ids := []ulid.ULID{ulid.At(at), ulid.At(at.Add(-5 * time.Second))}
	strs := []string{ids[0].String(), ids[1].String()}

	slices.SortFunc(ids, ulid.Compare)
	sort.Strings(strs)

	it.Then(t).Should(
		it.Equal(ids[0].String(), strs[0]),
		it.Equal(ids[1].String(), strs[1]),
	)
}

func TestConcurrentGeneration(t *testing.T) {
	const workers = 10
	const n = 1000

	at := time.Now()
	ids := make([]ulid.ULID, workers*n)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < n; i++ {
				ts := at.Add(time.Duration(i%17) * time.Millisecond)
				ids[w*n+i] = ulid.At(ts)
			}
		}(w)
	}
	wg.Wait()

	seen := make(map[ulid.ULID]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}

	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = id.String()
	}

	slices.SortFunc(ids, ulid.Compare)
	sort.Strings(strs)

	sorted := true
	for i := range ids {
		if ids[i].String() != strs[i] {
			sorted = false
		}
	}

	it.Then(t).Should(
		it.Equal(len(seen), workers*n),
		it.True(sorted),
	)
}

func TestConcurrentCustomEntropy(t *testing.T) {
	c := ulid.NewClock(ulid.WithEntropy(&counter{}))

	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := map[ulid.ULID]struct{}{}
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				id, err := ulid.New(c, ulid.FromNow{})
				if err != nil {
					panic(err)
				}
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	it.Then(t).Should(
		it.Equal(len(seen), 800),
	)
}

// counter is deterministic, not thread safe entropy source
type counter struct{ n uint64 }

func (c *counter) Read(p []byte) (int, error) {
	clear(p)
	c.n++
	binary.BigEndian.PutUint64(p[len(p)-8:], c.n)
	return len(p), nil
}
