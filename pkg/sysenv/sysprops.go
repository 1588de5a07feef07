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

package sysenv

import (
	"os"
	"runtime"
	"strings"
)

// Conventional system property keys. The key names are a fixed contract for
// downstream consumers; the values describe the Go runtime hosting this tool.
const (
	KeyOSArch         = "os.arch"
	KeyOSName         = "os.name"
	KeyOSVersion      = "os.version"
	KeyRuntimeName    = "java.vm.name"
	KeyRuntimeVendor  = "java.vm.vendor"
	KeyRuntimeVersion = "java.version"
)

const kernelReleasePath = "/proc/sys/kernel/osrelease"

// SystemProperties returns a snapshot of the runtime-identity properties
// keyed by the conventional names: CPU architecture, OS name and version,
// and runtime name, vendor, and version.
func SystemProperties() Snapshot {
	return Snapshot{
		KeyOSArch:         runtime.GOARCH,
		KeyOSName:         runtime.GOOS,
		KeyOSVersion:      kernelRelease(),
		KeyRuntimeName:    runtime.Compiler,
		KeyRuntimeVendor:  "golang.org",
		KeyRuntimeVersion: runtime.Version(),
	}
}

// kernelRelease reads the kernel release string, returning "" on platforms
// or environments where it is unavailable.
func kernelRelease() string {
	data, err := os.ReadFile(kernelReleasePath)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
