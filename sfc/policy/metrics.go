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

package policy

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sfcgate/sfcgate/pkg/metrics"
	"github.com/sfcgate/sfcgate/pkg/private/prom"
)

// Metrics are the metrics of the policy store. Nil fields are not updated.
type Metrics struct {
	// Reloads counts reload attempts by result.
	Reloads *prometheus.CounterVec
	// Generation is the number of snapshots published so far.
	Generation prometheus.Gauge
	// Entries is the number of identifiers per list of the live snapshot.
	Entries *prometheus.GaugeVec
}

// NewMetrics creates the store metrics with the factory.
func NewMetrics(f metrics.Factory) Metrics {
	return Metrics{
		Reloads: f.NewCounterVec(prometheus.CounterOpts{
			Subsystem: "policy",
			Name:      "reloads_total",
			Help:      "Total number of policy reload attempts.",
		}, []string{prom.LabelResult}),
		Generation: f.NewGauge(prometheus.GaugeOpts{
			Subsystem: "policy",
			Name:      "generation",
			Help:      "Number of policy snapshots published.",
		}),
		Entries: f.NewGaugeVec(prometheus.GaugeOpts{
			Subsystem: "policy",
			Name:      "filter_entries",
			Help:      "Number of identifiers in each filter list of the live policy.",
		}, []string{"list"}),
	}
}

func (m Metrics) observeReload(result string) {
	if m.Reloads != nil {
		m.Reloads.WithLabelValues(result).Inc()
	}
}

func (m Metrics) observeSnapshot(generation uint64, cfg *Config) {
	if m.Generation != nil {
		m.Generation.Set(float64(generation))
	}
	if m.Entries != nil {
		m.Entries.WithLabelValues("deny").Set(float64(cfg.Deny.Len()))
		m.Entries.WithLabelValues("allow").Set(float64(cfg.Allow.Len()))
		m.Entries.WithLabelValues("delay").Set(float64(cfg.Delay.Len()))
	}
}
