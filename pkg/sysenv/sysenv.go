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

// Package sysenv provides read-only snapshots of the process environment and
// of the runtime-identity system properties.
//
// Collection never reads process-global state directly; callers take a
// snapshot once per invocation and pass it down explicitly, which keeps the
// pipeline deterministic and testable.
package sysenv

import (
	"fmt"
	"maps"
	"strings"

	"github.com/joho/godotenv"

	"github.com/buildstamp/buildstamp/pkg/errors"
)

// Snapshot is an immutable-by-convention view of environment properties.
// A missing key reads as the empty string.
type Snapshot map[string]string

// FromEnviron parses a KEY=VALUE list in the form returned by os.Environ.
// Entries without a separator are stored with an empty value.
func FromEnviron(environ []string) Snapshot {
	snap := make(Snapshot, len(environ))
	for _, kv := range environ {
		key, value, _ := strings.Cut(kv, "=")
		if key == "" {
			continue
		}
		snap[key] = value
	}
	return snap
}

// Get returns the value for key, or "" when the key is unset.
func (s Snapshot) Get(key string) string {
	return s[key]
}

// Merge returns a new Snapshot combining s and overrides; overrides win on
// key collision. Neither input is modified.
func (s Snapshot) Merge(overrides Snapshot) Snapshot {
	out := maps.Clone(s)
	if out == nil {
		out = make(Snapshot, len(overrides))
	}
	maps.Copy(out, overrides)
	return out
}

// LoadDotenv reads one or more dotenv files and returns their combined
// entries; later files win on key collision. Missing or unreadable files
// produce an IO-classified error.
func LoadDotenv(paths ...string) (Snapshot, error) {
	snap := make(Snapshot)
	for _, path := range paths {
		entries, err := godotenv.Read(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeIO, fmt.Sprintf("reading env file %s", path), err)
		}
		maps.Copy(snap, entries)
	}
	return snap, nil
}
