// Copyright 2026 The sfcgate Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dispatcher

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sfcgate/sfcgate/pkg/metrics"
	"github.com/sfcgate/sfcgate/pkg/private/prom"
	"github.com/sfcgate/sfcgate/sfc/policy"
)

// Metrics are the dispatcher metrics. Nil fields are not updated.
type Metrics struct {
	// Decisions counts policy decisions by method and verdict.
	Decisions *prometheus.CounterVec
	// InFlight is the number of calls between receipt and retirement.
	InFlight prometheus.Gauge
	// Delayed is the number of calls waiting for their delay to elapse.
	Delayed prometheus.Gauge
	// Abandoned counts calls dropped at shutdown.
	Abandoned prometheus.Counter
	// Duration observes the time from receipt to retirement by method.
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the dispatcher metrics with the factory.
func NewMetrics(f metrics.Factory) Metrics {
	return Metrics{
		Decisions: f.NewCounterVec(prometheus.CounterOpts{
			Subsystem: "dispatcher",
			Name:      "decisions_total",
			Help:      "Total number of policy decisions.",
		}, []string{prom.LabelMethod, prom.LabelVerdict}),
		InFlight: f.NewGauge(prometheus.GaugeOpts{
			Subsystem: "dispatcher",
			Name:      "calls_in_flight",
			Help:      "Number of calls that are being processed.",
		}),
		Delayed: f.NewGauge(prometheus.GaugeOpts{
			Subsystem: "dispatcher",
			Name:      "calls_delayed",
			Help:      "Number of calls waiting for their delay to elapse.",
		}),
		Abandoned: f.NewCounter(prometheus.CounterOpts{
			Subsystem: "dispatcher",
			Name:      "calls_abandoned_total",
			Help:      "Total number of calls abandoned at shutdown.",
		}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Subsystem: "dispatcher",
			Name:      "call_duration_seconds",
			Help:      "Time from receiving a call to retiring it.",
			Buckets:   prom.DefaultLatencyBuckets,
		}, []string{prom.LabelMethod}),
	}
}

func (m Metrics) observeDecision(method policy.Method, v policy.Verdict) {
	if m.Decisions != nil {
		m.Decisions.WithLabelValues(method.String(), v.String()).Inc()
	}
}

func (m Metrics) callStarted() {
	if m.InFlight != nil {
		m.InFlight.Inc()
	}
}

func (m Metrics) callDone(method policy.Method, d time.Duration) {
	if m.InFlight != nil {
		m.InFlight.Dec()
	}
	if m.Duration != nil {
		m.Duration.WithLabelValues(method.String()).Observe(d.Seconds())
	}
}

// callAbandoned retires a slot that will never reach Done. Slots that left
// Awaiting were counted by callStarted.
func (m Metrics) callAbandoned(s *Slot) {
	if m.InFlight != nil && s.state != Awaiting {
		m.InFlight.Dec()
	}
	if m.Abandoned != nil {
		m.Abandoned.Inc()
	}
}

func (m Metrics) delayStarted() {
	if m.Delayed != nil {
		m.Delayed.Inc()
	}
}

func (m Metrics) delayDone() {
	if m.Delayed != nil {
		m.Delayed.Dec()
	}
}
