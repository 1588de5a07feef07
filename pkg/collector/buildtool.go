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
	"log/slog"
	"strings"

	"github.com/buildstamp/buildstamp/pkg/props"
	"github.com/buildstamp/buildstamp/pkg/version"
)

// profileSeparator joins active profile identifiers in their given order.
const profileSeparator = ", "

// BuildToolCollector writes the build-tool identity: the looked-up tool
// version and the active profile list, both under the configured prefix.
type BuildToolCollector struct {
	// Prefix namespaces the written keys.
	Prefix string

	// Lookup resolves the tool version. A nil or failing lookup is
	// recoverable: the version defaults to "" after a warning.
	Lookup VersionLookup

	// ActiveProfiles lists the active profile identifiers in order.
	ActiveProfiles []string
}

// Collect writes <prefix>maven.version and <prefix>maven.activeProfiles.
func (c *BuildToolCollector) Collect(ctx context.Context, store *props.Store) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	store.Put(c.Prefix+KeyToolVersion, c.toolVersion(ctx))
	store.Put(c.Prefix+KeyActiveProfiles, strings.Join(c.ActiveProfiles, profileSeparator))
	return nil
}

func (c *BuildToolCollector) toolVersion(ctx context.Context) string {
	if c.Lookup == nil {
		slog.Warn("no build tool version lookup configured, defaulting to empty version")
		return ""
	}

	v, err := c.Lookup(ctx)
	if err != nil {
		slog.Warn("unable to look up build tool version", "error", err.Error())
		return ""
	}

	// Diagnostic only. The value is written verbatim either way.
	if _, perr := version.Parse(v); perr != nil {
		slog.Debug("build tool version is not a parseable version string", "value", v)
	}
	return v
}
