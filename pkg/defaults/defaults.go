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

package defaults

import "io/fs"

// Output defaults shared by the CLI and the stamper.
const (
	// FileName is the properties file written under the output directory.
	FileName = "build-info.properties"

	// Prefix namespaces the build-tool and system property keys and selects
	// which project/environment properties are carried into the output.
	Prefix = "build."

	// OutputDir is the build-output directory the properties file is written
	// to when the project descriptor does not name one.
	OutputDir = "target/classes"
)

// Filesystem modes for created output artifacts.
const (
	// FileMode is the mode for the written properties file.
	FileMode fs.FileMode = 0o644

	// DirMode is the mode for created parent directories.
	DirMode fs.FileMode = 0o755
)
