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

// Package logging wraps the standard library slog package with buildstamp
// defaults: structured JSON output to stderr, module/version context on every
// record, LOG_LEVEL environment configuration, and source location tracking
// for debug logs.
//
// Setting the default logger:
//
//	logging.SetDefaultStructuredLoggerWithLevel("buildstamp", "v1.0.0", "warn")
//	slog.Info("writing properties", "path", path)
//
// The default logger doubles as the diagnostics sink for the property
// pipeline: collectors log lookup warnings through it and the serializer
// echoes every written line to it.
package logging
