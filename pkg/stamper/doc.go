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

// Package stamper orchestrates one build-properties invocation: it runs the
// five collectors in their fixed order into a single store, then hands the
// result to the serializer exactly once.
//
// Control flow is strictly sequential. Each collection step fully completes
// before the next begins, because later steps may overwrite keys written by
// earlier ones (environment properties win over project properties, which
// win over the defaults).
//
//	s := &stamper.BuildStamper{
//	    Project:     proj,
//	    Environment: sysenv.FromEnviron(os.Environ()),
//	    Factory:     collector.NewDefaultFactory(collector.WithVersionLookup(lookup)),
//	    Serializer:  serializer.NewFileWriter(proj.OutputDir(), defaults.FileName),
//	}
//	outcome, err := s.Write(ctx)
//
// The package also records invocation metrics and can push them to a
// Prometheus Pushgateway for build-pipeline observability.
package stamper
