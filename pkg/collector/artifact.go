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

	"github.com/buildstamp/buildstamp/pkg/props"
)

// ArtifactCollector writes the artifact identity under fixed, unprefixed
// keys. These keys are a well-known contract for downstream consumers and
// deliberately ignore the configurable prefix.
type ArtifactCollector struct {
	ID      string
	GroupID string
	Version string
}

// Collect writes artifact.id, artifact.groupId, and artifact.version.
func (c *ArtifactCollector) Collect(ctx context.Context, store *props.Store) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	store.Put(KeyArtifactID, c.ID)
	store.Put(KeyArtifactGroup, c.GroupID)
	store.Put(KeyArtifactVersion, c.Version)
	return nil
}
