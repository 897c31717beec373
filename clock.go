//
//  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package ulid

import (
	"crypto/rand"
	"io"
	"sync"
	"time"
)

// Clock is global default instance of wall clock and random source
//
// If the application needs own clock e.g. deterministic one, it declares own
// clock and passes it to New.
var Clock Chronos = NewClock()

// Wall clock type, the default one
type clock struct {
	ticker  func() uint64
	entropy io.Reader
}

func (clock clock) T() uint64 { return clock.ticker() }

func (clock clock) Seed(b []byte) error {
	_, err := io.ReadFull(clock.entropy, b)
	return err
}

// Creates instance of wall clock
func NewClock(opts ...Config) Chronos {
	clock := &clock{}
	defopt := []Config{WithClockUnix(), WithEntropyCrypto()}

	for _, opt := range append(defopt, opts...) {
		opt(clock)
	}
	return clock
}

// Create mock instance of wall clock, time is 0 and seeds are zeros
func NewClockMock(opts ...Config) Chronos {
	clock := &clock{
		ticker:  func() uint64 { return 0 },
		entropy: zeros{},
	}

	for _, opt := range opts {
		opt(clock)
	}
	return clock
}

// Config option of default clock behavior.
// Config options allows to define custom strategies to generate
// ⟨𝒕⟩ timestamp or ⟨𝒔⟩ seed.
type Config func(*clock)

// WithClock configures a custom timestamp generator function, milliseconds
func WithClock(ticker func() uint64) Config {
	return func(clock *clock) {
		clock.ticker = ticker
	}
}

// WithClockUnix configures time.Now().UnixMilli() as generator function
func WithClockUnix() Config {
	return func(clock *clock) {
		clock.ticker = unixtime
	}
}

func unixtime() uint64 {
	return uint64(time.Now().UnixMilli())
}

// WithEntropyCrypto configures cryptographic random generator as seed source
func WithEntropyCrypto() Config {
	return func(clock *clock) {
		clock.entropy = rand.Reader
	}
}

// WithEntropy configures custom seed source. The reader is guarded by mutex,
// it is not required to be safe for concurrent use.
func WithEntropy(r io.Reader) Config {
	return func(clock *clock) {
		clock.entropy = &lockedReader{r: r}
	}
}

type lockedReader struct {
	sync.Mutex
	r io.Reader
}

func (lr *lockedReader) Read(p []byte) (int, error) {
	lr.Lock()
	defer lr.Unlock()
	return io.ReadFull(lr.r, p)
}

type zeros struct{}

func (zeros) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}
