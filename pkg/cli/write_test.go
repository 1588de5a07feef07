/*
Copyright © 2026 Buildstamp Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/magiconair/properties"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildstamp/buildstamp/pkg/errors"
)

const testDescriptor = `
artifact: billing-service
group: com.example.platform
version: 2.4.1
activeProfiles:
  - ci
properties:
  build.team: platform
`

func writeTestDescriptor(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDescriptor), 0o644))
	return path
}

func TestWriteCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "build-info.properties")

	err := Run(t.Context(), []string{
		"buildstamp", "write",
		"--project", writeTestDescriptor(t),
		"--output", out,
		"--tool-version", "3.9.6",
	})
	require.NoError(t, err)

	parsed, err := properties.LoadFile(out, properties.UTF8)
	require.NoError(t, err)
	m := parsed.Map()

	assert.Equal(t, "billing-service", m["artifact.id"])
	assert.Equal(t, "3.9.6", m["build.maven.version"])
	assert.Equal(t, "ci", m["build.maven.activeProfiles"])
	assert.Equal(t, "platform", m["build.team"])
}

func TestWriteCommandOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "target", "classes")

	err := Run(t.Context(), []string{
		"buildstamp", "write",
		"--project", writeTestDescriptor(t),
		"--output-dir", dir,
		"--file-name", "stamp.properties",
		"--tool-version", "3.9.6",
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "stamp.properties"))
	assert.NoError(t, err)
}

func TestWriteCommandCustomPrefix(t *testing.T) {
	out := filepath.Join(t.TempDir(), "build-info.properties")

	err := Run(t.Context(), []string{
		"buildstamp", "write",
		"--project", writeTestDescriptor(t),
		"--output", out,
		"--prefix", "ci.",
		"--tool-version", "3.9.6",
	})
	require.NoError(t, err)

	parsed, err := properties.LoadFile(out, properties.UTF8)
	require.NoError(t, err)
	m := parsed.Map()

	assert.Equal(t, "3.9.6", m["ci.maven.version"])

	// Project properties carry the configured prefix, so build.* no longer
	// qualifies.
	assert.NotContains(t, m, "build.team")
}

func TestWriteCommandEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "ci.env")
	require.NoError(t, os.WriteFile(envFile, []byte("build.host=runner-7\n"), 0o644))
	out := filepath.Join(dir, "build-info.properties")

	err := Run(t.Context(), []string{
		"buildstamp", "write",
		"--project", writeTestDescriptor(t),
		"--output", out,
		"--env-file", envFile,
		"--tool-version", "3.9.6",
	})
	require.NoError(t, err)

	parsed, err := properties.LoadFile(out, properties.UTF8)
	require.NoError(t, err)
	assert.Equal(t, "runner-7", parsed.Map()["build.host"])
}

func TestWriteCommandMissingDescriptor(t *testing.T) {
	err := Run(t.Context(), []string{
		"buildstamp", "write",
		"--project", filepath.Join(t.TempDir(), "missing.yaml"),
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeIO, errors.CodeOf(err))
}

func TestWriteCommandDirectoryConflict(t *testing.T) {
	err := Run(t.Context(), []string{
		"buildstamp", "write",
		"--project", writeTestDescriptor(t),
		"--output", t.TempDir(),
		"--tool-version", "3.9.6",
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidTarget, errors.CodeOf(err))
}
