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

package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildstamp/buildstamp/pkg/defaults"
	"github.com/buildstamp/buildstamp/pkg/errors"
)

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeDescriptor(t, `
artifact: billing-service
group: com.example.platform
version: 2.4.1
activeProfiles:
  - ci
  - release
properties:
  build.team: platform
build:
  outputDir: out/meta
`)

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "billing-service", p.Artifact)
	assert.Equal(t, "com.example.platform", p.Group)
	assert.Equal(t, "2.4.1", p.Version)
	assert.Equal(t, []string{"ci", "release"}, p.ActiveProfiles)
	assert.Equal(t, "platform", p.Properties["build.team"])
	assert.Equal(t, "out/meta", p.OutputDir())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeIO, errors.CodeOf(err))
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeDescriptor(t, "artifact: [unclosed")
	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		project Project
		wantErr bool
	}{
		{
			name: "complete identity",
			project: Project{
				Artifact: "svc",
				Group:    "com.example",
				Version:  "1.0.0",
			},
		},
		{
			name: "missing artifact",
			project: Project{
				Group:   "com.example",
				Version: "1.0.0",
			},
			wantErr: true,
		},
		{
			name: "missing group",
			project: Project{
				Artifact: "svc",
				Version:  "1.0.0",
			},
			wantErr: true,
		},
		{
			name: "missing version",
			project: Project{
				Artifact: "svc",
				Group:    "com.example",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.project.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOutputDirDefault(t *testing.T) {
	p := &Project{Artifact: "svc", Group: "g", Version: "1"}
	assert.Equal(t, defaults.OutputDir, p.OutputDir())
}
