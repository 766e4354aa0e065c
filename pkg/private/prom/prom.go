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

// Package prom holds the metric names, labels and helpers shared by the
// sfcgate packages.
package prom

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every sfcgate metric.
const Namespace = "sfcgate"

// Label names.
const (
	LabelResult  = "result"
	LabelMethod  = "method"
	LabelVerdict = "verdict"
)

// Values of LabelResult.
const (
	Success          = "ok_success"
	ErrNotFound      = "err_not_found"
	ErrParse         = "err_parse"
	ErrNotClassified = "err_not_classified"
)

// DefaultLatencyBuckets doubles from 10ms up to 10.24s. Delayed admissions
// land in the upper buckets.
var DefaultLatencyBuckets = prometheus.ExponentialBuckets(0.01, 2, 11)

// ExportElementID publishes the configured instance ID as a constant gauge.
func ExportElementID(id string) {
	info := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "instance_info",
		Help:      "Constant 1, labeled with the general.id of the instance.",
	}, []string{"id"})
	SafeRegister(info).(*prometheus.GaugeVec).WithLabelValues(id).Set(1)
}

// SafeRegister registers c with the default registerer. If an equal
// collector is already registered, that one is returned instead. Any other
// registration error panics.
func SafeRegister(c prometheus.Collector) prometheus.Collector {
	err := prometheus.Register(c)
	if err == nil {
		return c
	}
	var dup prometheus.AlreadyRegisteredError
	if !errors.As(err, &dup) {
		panic(err)
	}
	return dup.ExistingCollector
}
