// Copyright (c) 2026, Buildstamp Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package props provides the ordered, deduplicated key-value store that
// accumulates all build properties before serialization.
//
// The store holds two invariants:
//   - keys are unique; inserting an existing key overwrites its value
//   - iteration produces entries in ascending lexicographic key order,
//     independent of insertion order
//
// The ordering invariant is what makes the emitted properties file
// diff-stable across builds.
package props

import (
	"iter"
	"maps"
	"slices"
)

// Store is the accumulation target for all collection steps. Values may be
// empty strings but are never absent; lookup misses from external sources
// must be coerced to "" before storage.
//
// A Store is not safe for concurrent use. Collection is strictly sequential,
// so no locking is required.
type Store struct {
	values map[string]string
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		values: make(map[string]string),
	}
}

// Put inserts or overwrites the value for key. It never fails; collisions
// are resolved by the later writer winning.
func (s *Store) Put(key, value string) {
	s.values[key] = value
}

// PutAll inserts every entry of src, overwriting existing keys.
func (s *Store) PutAll(src map[string]string) {
	for k, v := range src {
		s.values[k] = v
	}
}

// Get returns the value for key and whether the key is present.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.values)
}

// Keys returns all keys in ascending lexicographic order.
func (s *Store) Keys() []string {
	return slices.Sorted(maps.Keys(s.values))
}

// Sorted returns a lazy, restartable sequence of (key, value) pairs in
// ascending byte-wise key order. The sequence is stable under repeated
// iteration between mutations.
func (s *Store) Sorted() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range s.Keys() {
			if !yield(k, s.values[k]) {
				return
			}
		}
	}
}

// Map returns a copy of the store contents as a plain map.
func (s *Store) Map() map[string]string {
	return maps.Clone(s.values)
}
