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

// Fixed output keys downstream consumers may rely on. The build-tool keys
// are written under the configured prefix; the artifact keys deliberately
// ignore it.
const (
	// KeyToolVersion holds the build tool version, "" when the lookup fails.
	KeyToolVersion = "maven.version"
	// KeyActiveProfiles holds the comma-and-space-joined active profile ids.
	KeyActiveProfiles = "maven.activeProfiles"

	// KeyArtifactID holds the artifact identifier.
	KeyArtifactID = "artifact.id"
	// KeyArtifactGroup holds the artifact group identifier.
	KeyArtifactGroup = "artifact.groupId"
	// KeyArtifactVersion holds the artifact version.
	KeyArtifactVersion = "artifact.version"
)

// Collector is a unit of logic that reads one external source and writes
// derived entries into the store. Collect returns an error only for fatal
// conditions (such as context cancellation); recoverable lookup failures are
// logged and absorbed.
type Collector interface {
	Collect(ctx context.Context, store *props.Store) error
}

// VersionLookup resolves the host build tool version. Implementations may
// fail; callers treat failure as recoverable.
type VersionLookup func(ctx context.Context) (string, error)
