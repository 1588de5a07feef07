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
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/buildstamp/buildstamp/pkg/collector"
	"github.com/buildstamp/buildstamp/pkg/project"
	"github.com/buildstamp/buildstamp/pkg/props"
	"github.com/buildstamp/buildstamp/pkg/serializer"
	"github.com/buildstamp/buildstamp/pkg/sysenv"
)

// BuildStamper collects build metadata into one property store and persists
// it as a properties file. One instance serves one invocation; no state
// survives the Write call.
type BuildStamper struct {
	// Project is the project descriptor supplying artifact identity, active
	// profiles, and declared properties.
	Project *project.Project

	// Environment is the read-only environment snapshot for this invocation.
	Environment sysenv.Snapshot

	// Factory is the collector factory to use. If nil, the default factory
	// is used.
	Factory collector.Factory

	// Serializer is the output serializer. If nil, a stdout writer is used.
	Serializer serializer.Serializer
}

// Write runs the five collectors in their fixed order into one store, then
// hands the result to the serializer. No retries; the whole operation is
// single-shot. The returned error is non-nil only for aborting failures.
func (s *BuildStamper) Write(ctx context.Context) (serializer.Outcome, error) {
	if s.Project == nil {
		return serializer.OutcomeAborted, fmt.Errorf("stamper requires a project descriptor")
	}
	if s.Factory == nil {
		s.Factory = collector.NewDefaultFactory()
	}
	if s.Serializer == nil {
		s.Serializer = serializer.NewStdoutWriter()
	}

	runID := uuid.New().String()
	log := slog.With("run", runID)
	log.Debug("starting build property collection",
		"artifact", s.Project.Artifact,
		"profiles", len(s.Project.ActiveProfiles))

	start := time.Now()
	defer func() {
		stampDuration.Observe(time.Since(start).Seconds())
	}()

	store := props.New()

	// Fixed order: build tool, artifact, system properties, project
	// properties, environment properties. Each step fully completes before
	// the next begins; later steps overwrite colliding keys.
	steps := []struct {
		name string
		c    collector.Collector
	}{
		{"buildtool", s.Factory.CreateBuildToolCollector(s.Project.ActiveProfiles)},
		{"artifact", s.Factory.CreateArtifactCollector(s.Project.Artifact, s.Project.Group, s.Project.Version)},
		{"sysprops", s.Factory.CreateSystemPropsCollector()},
		{"project", s.Factory.CreatePrefixedCollector(s.Project.Properties)},
		{"environment", s.Factory.CreatePrefixedCollector(s.Environment)},
	}

	for _, step := range steps {
		if err := step.c.Collect(ctx, store); err != nil {
			stampOutcomeTotal.WithLabelValues(string(serializer.OutcomeAborted)).Inc()
			return serializer.OutcomeAborted, fmt.Errorf("collecting %s properties: %w", step.name, err)
		}
		log.Debug("collected", "step", step.name, "total", store.Len())
	}

	stampPropertyCount.Set(float64(store.Len()))

	outcome, err := s.Serializer.Serialize(ctx, store)
	stampOutcomeTotal.WithLabelValues(string(outcome)).Inc()
	if err != nil {
		log.Error("serialization aborted", "error", err.Error())
		return outcome, err
	}

	log.Debug("build property collection complete",
		"properties", store.Len(),
		"outcome", outcome.String())
	return outcome, nil
}
