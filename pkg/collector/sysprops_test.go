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

package collector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildstamp/buildstamp/pkg/props"
	"github.com/buildstamp/buildstamp/pkg/sysenv"
)

func TestSystemPropsCollector(t *testing.T) {
	c := &SystemPropsCollector{
		Prefix: "build.",
		Props: sysenv.Snapshot{
			"os.name":      "TestOS",
			"java.version": "9.9",
		},
	}

	store := props.New()
	require.NoError(t, c.Collect(context.Background(), store))

	m := store.Map()
	assert.Equal(t, "TestOS", m["build.os.name"])
	assert.Equal(t, "9.9", m["build.java.version"])

	// Every allowlisted key is present; unset values coerce to "".
	assert.Len(t, m, len(DefaultSystemProperties))
	assert.Equal(t, "", m["build.os.arch"])
	assert.Equal(t, "", m["build.os.version"])
	assert.Equal(t, "", m["build.java.vm.name"])
	assert.Equal(t, "", m["build.java.vm.vendor"])
}

func TestSystemPropsCollectorCustomAllowlist(t *testing.T) {
	c := &SystemPropsCollector{
		Prefix: "ci.",
		Props:  sysenv.Snapshot{"os.arch": "amd64"},
		Keys:   []string{"os.arch"},
	}

	store := props.New()
	require.NoError(t, c.Collect(context.Background(), store))

	assert.Equal(t, 1, store.Len())
	v, _ := store.Get("ci.os.arch")
	assert.Equal(t, "amd64", v)
}

func TestSystemPropsCollectorRuntimeSnapshot(t *testing.T) {
	c := &SystemPropsCollector{
		Prefix: "build.",
		Props:  sysenv.SystemProperties(),
	}

	store := props.New()
	require.NoError(t, c.Collect(context.Background(), store))

	arch, ok := store.Get("build.os.arch")
	require.True(t, ok)
	assert.NotEmpty(t, arch)
}
