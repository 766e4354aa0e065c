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

//go:build linux

// Package processmetrics exports scheduler statistics of the gateway process.
// Delayed admissions are parked on timers rather than on threads, so the
// running and runnable times show whether the reactor itself is starved.
package processmetrics

import (
	"os"
	"runtime"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/procfs"

	"github.com/sfcgate/sfcgate/pkg/private/serrors"
)

var (
	runningTime = prometheus.NewDesc(
		"process_running_seconds_total",
		"CPU time the process used since it started (all threads summed).",
		nil, nil,
	)
	runnableTime = prometheus.NewDesc(
		"process_runnable_seconds_total",
		"CPU time the process was denied while runnable (all threads summed).",
		nil, nil,
	)
	goCores = prometheus.NewDesc(
		"go_sched_maxprocs_threads",
		"The current runtime.GOMAXPROCS setting.",
		nil, nil,
	)
	threadCount = prometheus.NewDesc(
		"process_threads",
		"Number of OS threads in the process.",
		nil, nil,
	)
)

type collector struct {
	fs  procfs.FS
	pid int

	mtx      sync.Mutex
	running  uint64
	runnable uint64
	threads  int
}

// update sums the per-thread schedstat counters. Threads that vanish between
// listing and reading are skipped.
func (c *collector) update() error {
	threads, err := c.fs.AllThreads(c.pid)
	if err != nil {
		return err
	}
	var running, runnable uint64
	for _, t := range threads {
		st, err := t.Schedstat()
		if err != nil {
			continue
		}
		running += st.RunningNanoseconds
		runnable += st.WaitingNanoseconds
	}
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.running, c.runnable, c.threads = running, runnable, len(threads)
	return nil
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(c, ch)
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	_ = c.update()
	c.mtx.Lock()
	defer c.mtx.Unlock()
	ch <- prometheus.MustNewConstMetric(runningTime, prometheus.CounterValue,
		float64(c.running)/1e9)
	ch <- prometheus.MustNewConstMetric(runnableTime, prometheus.CounterValue,
		float64(c.runnable)/1e9)
	ch <- prometheus.MustNewConstMetric(goCores, prometheus.GaugeValue,
		float64(runtime.GOMAXPROCS(-1)))
	ch <- prometheus.MustNewConstMetric(threadCount, prometheus.GaugeValue,
		float64(c.threads))
}

// NewCollector returns a collector for the current process. It fails if /proc
// is not readable.
func NewCollector() (prometheus.Collector, error) {
	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return nil, serrors.Wrap("opening procfs", err)
	}
	c := &collector{fs: fs, pid: os.Getpid()}
	if err := c.update(); err != nil {
		return nil, serrors.Wrap("reading schedstat", err, "pid", c.pid)
	}
	return c, nil
}

// Init registers the process collector with the default registry. Errors can
// be ignored; the remaining metrics are still served.
func Init() error {
	c, err := NewCollector()
	if err != nil {
		return err
	}
	if err := prometheus.Register(c); err != nil {
		return serrors.Wrap("registering process collector", err)
	}
	return nil
}
