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

// Package pebblestore implements index.Index on top of pebble LSM
package pebblestore

import (
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/fogfish/ulid"
	"github.com/fogfish/ulid/index"
)

// Options configures the pebble store
type Options struct {
	// Dir is the path to the database directory
	Dir string
	// Sync forces WAL fsync on every write
	Sync bool
	// PebbleOptions allows advanced tuning, defaults are used if nil
	PebbleOptions *pebble.Options
}

// Store is pebble-backed index
type Store struct {
	db        *pebble.DB
	writeSync *pebble.WriteOptions
}

var _ index.Index = (*Store)(nil)

// Open creates or opens pebble database
func Open(opts Options) (*Store, error) {
	if opts.Dir == "" {
		return nil, errors.New("pebblestore: Options.Dir is required")
	}

	po := opts.PebbleOptions
	if po == nil {
		po = &pebble.Options{}
	}

	db, err := pebble.Open(opts.Dir, po)
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble database: %w", err)
	}

	writeSync := pebble.NoSync
	if opts.Sync {
		writeSync = pebble.Sync
	}

	return &Store{db: db, writeSync: writeSync}, nil
}

// Close releases database
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Put stores value under identifier
func (s *Store) Put(uid ulid.ULID, value []byte) error {
	return s.db.Set(uid.Bytes(), value, s.writeSync)
}

// Get copies value of identifier
func (s *Store) Get(uid ulid.ULID) ([]byte, error) {
	val, closer, err := s.db.Get(uid.Bytes())
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, index.ErrNotFound
		}
		return nil, err
	}
	defer closer.Close()

	return append([]byte(nil), val...), nil
}

// Range iterates identifiers allocated within [from, to] in ascending order
func (s *Store) Range(from, to time.Time, fn func(ulid.ULID, []byte) error) error {
	lo, hi := ulid.Bounds(from, to)

	// pebble upper bound is exclusive
	it, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: lo.Bytes(),
		UpperBound: successor(hi.Bytes()),
	})
	if err != nil {
		return err
	}
	defer it.Close()

	for it.First(); it.Valid(); it.Next() {
		uid, err := index.Key(it.Key())
		if err != nil {
			return fmt.Errorf("failed to decode key %x: %w", it.Key(), err)
		}

		if err := fn(uid, append([]byte(nil), it.Value()...)); err != nil {
			if errors.Is(err, index.ErrStop) {
				return nil
			}
			return err
		}
	}

	return it.Error()
}

// successor returns the smallest key greater than k
func successor(k []byte) []byte {
	return append(k, 0x00)
}
