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

// Package serializer renders the final property store as a flat properties
// file: one key=value line per entry, ascending key order, platform-native
// line terminator, UTF-8, no header or comments, overwritten in full on
// each run.
//
// # Failure semantics
//
// The serializer is deliberately best-effort. A target path that already
// exists as a directory aborts the invocation loudly before any write; every
// other failure (open, write, flush, close) is logged as a warning and
// absorbed so a transient filesystem issue does not fail the build. Callers
// observe the distinction through the typed Outcome:
//
//	w := serializer.NewFileWriter(dir, name)
//	outcome, err := w.Serialize(ctx, store)
//	// err != nil         => OutcomeAborted (directory conflict)
//	// err == nil         => OutcomeWritten or OutcomeWrittenWithWarning
//
// Every written line is also echoed to the diagnostics sink.
//
// # Resource management
//
// The output file handle is scoped to the Serialize call and released on all
// exit paths, including mid-write failures.
package serializer
