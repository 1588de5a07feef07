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

// Package errors provides structured errors with classification codes for the
// buildstamp error taxonomy.
//
// Only ErrCodeInvalidTarget terminates an invocation; lookup and IO failures
// are recoverable and absorbed by their callers after logging a warning.
// StructuredError supports errors.Is/errors.As chains via Unwrap.
package errors
