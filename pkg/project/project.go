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

// Package project models the build project descriptor: artifact identity,
// active profiles, declared properties, and the build-output directory.
//
// The descriptor is the stand-in for the host build tool's project model and
// is loaded once per invocation from a YAML file.
package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/buildstamp/buildstamp/pkg/defaults"
	"github.com/buildstamp/buildstamp/pkg/errors"
)

// Project describes the module being built.
type Project struct {
	// Artifact is the artifact identifier, e.g. "billing-service".
	Artifact string `yaml:"artifact" json:"artifact"`

	// Group is the owning group identifier, e.g. "com.example.platform".
	Group string `yaml:"group" json:"group"`

	// Version is the artifact version string.
	Version string `yaml:"version" json:"version"`

	// ActiveProfiles lists the configuration profiles enabled for this
	// invocation, in activation order.
	ActiveProfiles []string `yaml:"activeProfiles,omitempty" json:"activeProfiles,omitempty"`

	// Properties holds the project-declared property set.
	Properties map[string]string `yaml:"properties,omitempty" json:"properties,omitempty"`

	// Build holds build layout settings.
	Build Build `yaml:"build,omitempty" json:"build,omitempty"`
}

// Build holds the build layout portion of the descriptor.
type Build struct {
	// OutputDir is the build-output directory the properties file is
	// written under. Defaults to defaults.OutputDir when empty.
	OutputDir string `yaml:"outputDir,omitempty" json:"outputDir,omitempty"`
}

// Load reads and validates a project descriptor from a YAML file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, fmt.Sprintf("reading project descriptor %s", path), err)
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, fmt.Sprintf("parsing project descriptor %s", path), err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks that the descriptor carries the required identity fields.
func (p *Project) Validate() error {
	if p.Artifact == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "project descriptor is missing artifact")
	}
	if p.Group == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "project descriptor is missing group")
	}
	if p.Version == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "project descriptor is missing version")
	}
	return nil
}

// OutputDir returns the configured build-output directory, falling back to
// the shared default.
func (p *Project) OutputDir() string {
	if p.Build.OutputDir != "" {
		return p.Build.OutputDir
	}
	return defaults.OutputDir
}
