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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

var (
	stampDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "buildstamp_write_duration_seconds",
			Help:    "Time taken to collect and write one build properties file",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	stampOutcomeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "buildstamp_write_total",
			Help: "Total number of build property write attempts",
		},
		[]string{"outcome"}, // written, written-with-warning, aborted
	)

	stampPropertyCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "buildstamp_properties",
			Help: "Number of properties in the last collected store",
		},
	)
)

// PushMetrics pushes the invocation metrics to a Prometheus Pushgateway.
// Buildstamp is a short-lived build step, so scrape-based collection does
// not apply; push is the only delivery path and is strictly opt-in.
func PushMetrics(ctx context.Context, gatewayURL, job string) error {
	if err := push.New(gatewayURL, job).
		Gatherer(prometheus.DefaultGatherer).
		PushContext(ctx); err != nil {
		return fmt.Errorf("pushing metrics to %s: %w", gatewayURL, err)
	}
	return nil
}
