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

// Package defaults centralizes the default values shared across buildstamp
// components: the output file name, the property key prefix, the build-output
// directory, and filesystem modes for created artifacts.
//
// Keeping these in one package avoids drift between the CLI flag defaults and
// the programmatic API defaults.
package defaults
