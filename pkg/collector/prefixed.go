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

package collector

import (
	"context"
	"strings"

	"github.com/buildstamp/buildstamp/pkg/props"
)

// PrefixedCollector copies every source entry whose key starts with the
// prefix (case-sensitive, position 0) into the store verbatim. Keys are not
// re-prefixed; they already carry the prefix. It serves both the
// project-declared property set and the environment snapshot.
type PrefixedCollector struct {
	// Prefix is the filter applied to source keys.
	Prefix string

	// Source is the full key-value set to filter. Iteration order is
	// irrelevant; the final output is re-sorted by the serializer.
	Source map[string]string
}

// Collect copies the matching entries. Later collectors over a colliding key
// win by store semantics.
func (c *PrefixedCollector) Collect(ctx context.Context, store *props.Store) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for key, value := range c.Source {
		if strings.HasPrefix(key, c.Prefix) {
			store.Put(key, value)
		}
	}
	return nil
}
