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

package stamper

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/magiconair/properties"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildstamp/buildstamp/pkg/collector"
	"github.com/buildstamp/buildstamp/pkg/errors"
	"github.com/buildstamp/buildstamp/pkg/project"
	"github.com/buildstamp/buildstamp/pkg/serializer"
	"github.com/buildstamp/buildstamp/pkg/sysenv"
)

func testProject() *project.Project {
	return &project.Project{
		Artifact:       "billing-service",
		Group:          "com.example.platform",
		Version:        "2.4.1",
		ActiveProfiles: []string{"ci", "release"},
		Properties: map[string]string{
			"build.team": "platform",
			"build.x":    "1",
			"unrelated":  "skipped",
		},
	}
}

func testFactory(lookup collector.VersionLookup) collector.Factory {
	return collector.NewDefaultFactory(
		collector.WithVersionLookup(lookup),
		collector.WithSystemProperties(sysenv.Snapshot{
			"os.name":      "TestOS",
			"java.version": "9.9",
		}),
	)
}

func okLookup(ctx context.Context) (string, error) {
	return "3.9.6", nil
}

func failingLookup(ctx context.Context) (string, error) {
	return "", errors.New(errors.ErrCodeLookupFailure, "unavailable")
}

func TestWriteProducesFixedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build-info.properties")

	s := &BuildStamper{
		Project: testProject(),
		Environment: sysenv.Snapshot{
			"build.x":    "2",
			"HOME":       "/root",
			"build.host": "runner-7",
		},
		Factory:    testFactory(okLookup),
		Serializer: &serializer.FileWriter{Path: path},
	}

	outcome, err := s.Write(context.Background())
	require.NoError(t, err)
	assert.Equal(t, serializer.OutcomeWritten, outcome)

	parsed, err := properties.LoadFile(path, properties.UTF8)
	require.NoError(t, err)
	m := parsed.Map()

	assert.Equal(t, "billing-service", m["artifact.id"])
	assert.Equal(t, "com.example.platform", m["artifact.groupId"])
	assert.Equal(t, "2.4.1", m["artifact.version"])
	assert.Equal(t, "3.9.6", m["build.maven.version"])
	assert.Equal(t, "ci, release", m["build.maven.activeProfiles"])
	assert.Equal(t, "TestOS", m["build.os.name"])
	assert.Equal(t, "9.9", m["build.java.version"])
	assert.Equal(t, "platform", m["build.team"])
	assert.Equal(t, "runner-7", m["build.host"])

	// Environment wins the build.x collision; unprefixed keys are excluded.
	assert.Equal(t, "2", m["build.x"])
	assert.NotContains(t, m, "unrelated")
	assert.NotContains(t, m, "HOME")
}

func TestWriteLookupFailureIsRecoverable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build-info.properties")

	s := &BuildStamper{
		Project:    testProject(),
		Factory:    testFactory(failingLookup),
		Serializer: &serializer.FileWriter{Path: path},
	}

	outcome, err := s.Write(context.Background())
	require.NoError(t, err, "lookup failure must not escape the collection phase")
	assert.Equal(t, serializer.OutcomeWritten, outcome)

	parsed, err := properties.LoadFile(path, properties.UTF8)
	require.NoError(t, err)

	v, ok := parsed.Get("build.maven.version")
	require.True(t, ok, "version key must be present even on lookup failure")
	assert.Equal(t, "", v)
}

func TestWriteEmptyProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build-info.properties")

	proj := testProject()
	proj.ActiveProfiles = nil

	s := &BuildStamper{
		Project:    proj,
		Factory:    testFactory(okLookup),
		Serializer: &serializer.FileWriter{Path: path},
	}

	_, err := s.Write(context.Background())
	require.NoError(t, err)

	parsed, err := properties.LoadFile(path, properties.UTF8)
	require.NoError(t, err)

	v, ok := parsed.Get("build.maven.activeProfiles")
	require.True(t, ok)
	assert.Equal(t, "", v)
}

func TestWriteDirectoryConflictAborts(t *testing.T) {
	dir := t.TempDir()

	s := &BuildStamper{
		Project:    testProject(),
		Factory:    testFactory(okLookup),
		Serializer: &serializer.FileWriter{Path: dir},
	}

	outcome, err := s.Write(context.Background())
	assert.Equal(t, serializer.OutcomeAborted, outcome)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidTarget, errors.CodeOf(err))

	entries, rerr := os.ReadDir(dir)
	require.NoError(t, rerr)
	assert.Empty(t, entries, "no content may be produced on a directory conflict")
}

func TestWriteIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build-info.properties")

	run := func() []byte {
		s := &BuildStamper{
			Project: testProject(),
			Environment: sysenv.Snapshot{
				"build.host": "runner-7",
			},
			Factory:    testFactory(okLookup),
			Serializer: &serializer.FileWriter{Path: path},
		}
		_, err := s.Write(context.Background())
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return data
	}

	assert.Equal(t, run(), run(), "identical inputs must produce byte-identical output")
}

func TestWriteRequiresProject(t *testing.T) {
	s := &BuildStamper{}
	outcome, err := s.Write(context.Background())
	assert.Equal(t, serializer.OutcomeAborted, outcome)
	require.Error(t, err)
}

func TestWriteDefaultsToStdoutSerializer(t *testing.T) {
	s := &BuildStamper{
		Project: testProject(),
		Factory: testFactory(okLookup),
	}

	// Defaults are filled in lazily on first write.
	_, err := s.Write(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, s.Serializer)
	assert.NotNil(t, s.Factory)
}
