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

// Package boltstore implements index.Index on top of bbolt
package boltstore

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/fogfish/ulid"
	"github.com/fogfish/ulid/index"
	bolt "go.etcd.io/bbolt"
)

// DefaultBucket is used when Options.Bucket is empty
const DefaultBucket = "ulid"

// Options configures the bbolt store
type Options struct {
	// Path to database file
	Path string
	// Bucket holds identifiers, DefaultBucket if empty
	Bucket string
	// Timeout of file lock acquisition, 0 waits forever
	Timeout time.Duration
}

// Store is bbolt-backed index
type Store struct {
	db     *bolt.DB
	bucket []byte
}

var _ index.Index = (*Store)(nil)

// Open creates or opens bbolt database
func Open(opts Options) (*Store, error) {
	if opts.Path == "" {
		return nil, errors.New("boltstore: Options.Path is required")
	}

	if opts.Bucket == "" {
		opts.Bucket = DefaultBucket
	}

	db, err := bolt.Open(opts.Path, 0600, &bolt.Options{Timeout: opts.Timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	bucket := []byte(opts.Bucket)
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket %s: %w", opts.Bucket, err)
	}

	return &Store{db: db, bucket: bucket}, nil
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
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put(uid.Bytes(), value)
	})
}

// Get copies value of identifier
func (s *Store) Get(uid ulid.ULID) ([]byte, error) {
	var val []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(s.bucket).Get(uid.Bytes())
		if v == nil {
			return index.ErrNotFound
		}
		val = append([]byte(nil), v...)
		return nil
	})

	return val, err
}

// Range iterates identifiers allocated within [from, to] in ascending order
func (s *Store) Range(from, to time.Time, fn func(ulid.ULID, []byte) error) error {
	lo, hi := ulid.Bounds(from, to)
	max := hi.Bytes()

	err := s.db.View(func(tx *bolt.Tx) error {
		cursor := tx.Bucket(s.bucket).Cursor()

		for k, v := cursor.Seek(lo.Bytes()); k != nil && bytes.Compare(k, max) <= 0; k, v = cursor.Next() {
			uid, err := index.Key(k)
			if err != nil {
				return fmt.Errorf("failed to decode key %x: %w", k, err)
			}

			// bbolt values are valid only within transaction
			if err := fn(uid, append([]byte(nil), v...)); err != nil {
				return err
			}
		}

		return nil
	})

	if errors.Is(err, index.ErrStop) {
		return nil
	}
	return err
}
