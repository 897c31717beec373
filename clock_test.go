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
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/ulid"
)

func TestWithClock(t *testing.T) {
	c := ulid.NewClock(
		ulid.WithClock(func() uint64 { return 0xfedcba98 << 8 }),
	)
	a, err := ulid.New(c, ulid.FromNow{})

	it.Then(t).Should(
		it.Nil(err),
		it.Equal(a.Timestamp(), 0xfedcba98<<8),
	)
}

func TestWithClockUnix(t *testing.T) {
	c := ulid.NewClock(
		ulid.WithClockUnix(),
	)
	a, _ := ulid.New(c, ulid.FromNow{})
	time.Sleep(5 * time.Millisecond)
	b, _ := ulid.New(c, ulid.FromNow{})

	it.Then(t).Should(
		it.True(ulid.Before(a, b)),
		it.True(a.Timestamp() <= ulid.Timestamp(time.Now())),
	)
}

func TestWithEntropy(t *testing.T) {
	seed := bytes.Repeat([]byte{0xab}, 2*ulid.SeedSize)
	c := ulid.NewClockMock(
		ulid.WithEntropy(bytes.NewReader(seed)),
	)
	a, err := ulid.New(c, ulid.FromNow{})

	it.Then(t).Should(
		it.Nil(err),
		it.Equiv(a.Seed(), seed[:ulid.SeedSize]),
	)
}

func TestWithEntropyExhausted(t *testing.T) {
	c := ulid.NewClockMock(
		ulid.WithEntropy(bytes.NewReader([]byte{0x01, 0x02})),
	)
	_, err := ulid.New(c, ulid.FromNow{})

	it.Then(t).ShouldNot(
		it.Nil(err),
	)
}

func TestWithEntropyFailure(t *testing.T) {
	c := ulid.NewClock(
		ulid.WithEntropy(failing{}),
	)
	_, err := ulid.New(c, ulid.FromNow{})

	it.Then(t).Should(
		it.True(errors.Is(err, errEntropy)),
	)
}

func TestWithMock(t *testing.T) {
	c := ulid.NewClockMock()
	a, err := ulid.New(c, ulid.FromNow{})

	it.Then(t).Should(
		it.Nil(err),
		it.True(a.IsZero()),
		it.Equal(a.String(), "00000000000000000000000000"),
	)
}

var errEntropy = errors.New("entropy failure")

type failing struct{}

func (failing) Read(p []byte) (int, error) { return 0, errEntropy }
