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
	"github.com/buildstamp/buildstamp/pkg/sysenv"
)

// DefaultSystemProperties is the fixed allowlist of system property keys
// carried into the output: CPU architecture, OS name and version, and
// runtime name, vendor, and version.
var DefaultSystemProperties = []string{
	sysenv.KeyOSArch,
	sysenv.KeyOSName,
	sysenv.KeyOSVersion,
	sysenv.KeyRuntimeName,
	sysenv.KeyRuntimeVendor,
	sysenv.KeyRuntimeVersion,
}

// SystemPropsCollector writes the allowlisted system properties under the
// configured prefix, reading values from an explicit snapshot rather than
// process-global state.
type SystemPropsCollector struct {
	// Prefix namespaces the written keys.
	Prefix string

	// Props is the system property snapshot. An unset key reads as "".
	Props sysenv.Snapshot

	// Keys overrides the allowlist; nil means DefaultSystemProperties.
	Keys []string
}

// Collect writes <prefix><key> for every allowlisted key, with the value
// coerced to "" when the snapshot does not carry it.
func (c *SystemPropsCollector) Collect(ctx context.Context, store *props.Store) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	keys := c.Keys
	if keys == nil {
		keys = DefaultSystemProperties
	}
	for _, key := range keys {
		store.Put(c.Prefix+key, c.Props.Get(key))
	}
	return nil
}
