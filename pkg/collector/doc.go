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

// Package collector provides the collection steps that populate the property
// store from external sources.
//
// # Core Interface
//
// Each collector reads one source and writes derived entries into a
// props.Store:
//
//	type Collector interface {
//	    Collect(ctx context.Context, store *props.Store) error
//	}
//
// Collectors run strictly sequentially in a fixed order because later steps
// may overwrite keys written by earlier ones; the store resolves collisions
// by letting the later writer win.
//
// # Available Collectors
//
// BuildTool: build-tool identity — the looked-up tool version and the active
// profile list. A failed version lookup is recoverable: it is logged as a
// warning and the value defaults to "".
//
// Artifact: artifact identity — id, group id, and version under fixed,
// unprefixed keys that downstream consumers rely on.
//
// SystemProps: a fixed allowlist of runtime-identity properties, each written
// under the configured prefix with the value defaulted to "" when unset.
//
// Prefixed: verbatim copy of every source entry whose key already carries
// the prefix. Used twice per invocation, first over project-declared
// properties and then over the environment snapshot.
//
// # Factory Pattern
//
// The Factory interface abstracts collector creation for dependency
// injection and testing:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithPrefix("build."),
//	    collector.WithVersionLookup(lookup),
//	)
//	bt := factory.CreateBuildToolCollector(proj.ActiveProfiles)
//
// The stamper package sequences the collectors; this package only defines
// them.
package collector
