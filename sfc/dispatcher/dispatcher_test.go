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

package dispatcher_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/sfcgate/sfcgate/pkg/metrics"
	"github.com/sfcgate/sfcgate/pkg/private/xtest"
	"github.com/sfcgate/sfcgate/sfc/dispatcher"
	"github.com/sfcgate/sfcgate/sfc/policy"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type registration struct {
	slot  *dispatcher.Slot
	queue *dispatcher.Queue
}

// fakeTransport hands registrations to the test.
type fakeTransport struct {
	regs map[policy.Method]chan registration
}

func newFakeTransport() *fakeTransport {
	t := &fakeTransport{regs: make(map[policy.Method]chan registration)}
	for _, m := range policy.Methods {
		t.regs[m] = make(chan registration, 64)
	}
	return t
}

func (t *fakeTransport) RequestCall(s *dispatcher.Slot, q *dispatcher.Queue) {
	t.regs[s.Method()] <- registration{slot: s, queue: q}
}

// call delivers one request and returns the channel the status is sent on.
func (t *fakeTransport) call(tb testing.TB, m policy.Method,
	filter policy.RequestFilter) <-chan dispatcher.Status {

	tb.Helper()
	var reg registration
	select {
	case reg = <-t.regs[m]:
	case <-time.After(time.Second):
		tb.Fatalf("no slot registered for %s", m)
	}
	status := make(chan dispatcher.Status, 1)
	reg.slot.Accept(filter, dispatcher.ResponderFunc(func(s dispatcher.Status) {
		status <- s
	}))
	require.True(tb, reg.queue.Post(reg.slot))
	return status
}

type staticPolicy struct {
	cfg *policy.Config
}

func (p staticPolicy) Load() *policy.Config {
	return p.cfg
}

// start runs the dispatcher and returns a function that stops it.
func start(t *testing.T, d *dispatcher.Dispatcher) func() {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, d.Run(ctx))
	}()
	return func() {
		cancel()
		xtest.AssertReadReturnsBefore(t, done, time.Second)
	}
}

func recv(t *testing.T, ch <-chan dispatcher.Status, timeout time.Duration) dispatcher.Status {
	t.Helper()
	select {
	case s := <-ch:
		return s
	case <-time.After(timeout):
		t.Fatalf("no status received within %v", timeout)
		return 0
	}
}

var (
	tunnel100 = policy.TunnelIdentifier{TerminalLabel: 100, ServiceLabel: 1}
	tunnel200 = policy.TunnelIdentifier{TerminalLabel: 200, ServiceLabel: 1}
)

func TestDispatcherDecisions(t *testing.T) {
	cfg := policy.Default()
	cfg.Deny = policy.NewFilterSet(tunnel100)
	cfg.QueryEnabled = false

	transport := newFakeTransport()
	stop := start(t, &dispatcher.Dispatcher{
		Transport: transport,
		Policy:    staticPolicy{cfg: cfg},
		Workers:   2,
	})
	defer stop()

	tests := map[string]struct {
		method policy.Method
		filter policy.RequestFilter
		want   dispatcher.Status
	}{
		"deny match": {
			method: policy.MethodCreateSfc,
			filter: policy.RequestFilter{tunnel100},
			want:   dispatcher.StatusCancelled,
		},
		"deny no match": {
			method: policy.MethodCreateSfc,
			filter: policy.RequestFilter{tunnel200},
			want:   dispatcher.StatusOK,
		},
		"delete": {
			method: policy.MethodDeleteSfc,
			want:   dispatcher.StatusOK,
		},
		"query disabled": {
			method: policy.MethodQuery,
			want:   dispatcher.StatusCancelled,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			status := transport.call(t, tc.method, tc.filter)
			assert.Equal(t, tc.want, recv(t, status, time.Second))
		})
	}
}

func TestDispatcherCreateDisabled(t *testing.T) {
	cfg := policy.Default()
	cfg.CreateEnabled = false
	transport := newFakeTransport()
	stop := start(t, &dispatcher.Dispatcher{
		Transport: transport,
		Policy:    staticPolicy{cfg: cfg},
	})
	defer stop()

	for _, f := range []policy.RequestFilter{nil, {tunnel200}} {
		status := transport.call(t, policy.MethodCreateSfc, f)
		assert.Equal(t, dispatcher.StatusCancelled, recv(t, status, time.Second))
	}
}

func TestDispatcherRearmsBeforeResponding(t *testing.T) {
	cfg := policy.Default()
	cfg.Delay = policy.NewFilterSet(tunnel100)
	cfg.DelayDuration = time.Hour

	transport := newFakeTransport()
	stop := start(t, &dispatcher.Dispatcher{
		Transport: transport,
		Policy:    staticPolicy{cfg: cfg},
		Workers:   1,
	})
	defer stop()

	// Every parked call leaves a fresh slot behind.
	var pending []<-chan dispatcher.Status
	for i := 0; i < 5; i++ {
		pending = append(pending,
			transport.call(t, policy.MethodCreateSfc, policy.RequestFilter{tunnel100}))
	}
	status := transport.call(t, policy.MethodCreateSfc, policy.RequestFilter{tunnel200})
	assert.Equal(t, dispatcher.StatusOK, recv(t, status, time.Second))
	for _, p := range pending {
		assert.Empty(t, p)
	}
}

func TestDispatcherDelayDoesNotBlockWorker(t *testing.T) {
	const delay = 300 * time.Millisecond
	cfg := policy.Default()
	cfg.Delay = policy.NewFilterSet(tunnel100)
	cfg.DelayDuration = delay

	transport := newFakeTransport()
	stop := start(t, &dispatcher.Dispatcher{
		Transport: transport,
		Policy:    staticPolicy{cfg: cfg},
		Workers:   1,
	})
	defer stop()

	begin := time.Now()
	delayed := transport.call(t, policy.MethodCreateSfc, policy.RequestFilter{tunnel100})
	unrelated := transport.call(t, policy.MethodCreateSfc, policy.RequestFilter{tunnel200})

	assert.Equal(t, dispatcher.StatusOK, recv(t, unrelated, delay/2))
	assert.Less(t, time.Since(begin), delay)
	assert.Empty(t, delayed, "delayed call answered before the unrelated one")

	assert.Equal(t, dispatcher.StatusOK, recv(t, delayed, 2*time.Second))
	assert.GreaterOrEqual(t, time.Since(begin), delay)
}

func TestDispatcherConcurrentCalls(t *testing.T) {
	cfg := policy.Default()
	cfg.Deny = policy.NewFilterSet(tunnel100)

	transport := newFakeTransport()
	stop := start(t, &dispatcher.Dispatcher{
		Transport: transport,
		Policy:    staticPolicy{cfg: cfg},
		Workers:   4,
	})
	defer stop()

	const calls = 200
	var wg sync.WaitGroup
	for i := 0; i < calls; i++ {
		filter := policy.RequestFilter{tunnel200}
		want := dispatcher.StatusOK
		if i%2 == 0 {
			filter = policy.RequestFilter{tunnel100}
			want = dispatcher.StatusCancelled
		}
		status := transport.call(t, policy.MethodCreateSfc, filter)
		wg.Add(1)
		go func() {
			defer wg.Done()
			select {
			case got := <-status:
				assert.Equal(t, want, got)
			case <-time.After(2 * time.Second):
				assert.Fail(t, "no status")
			}
		}()
	}
	wg.Wait()
}

func TestDispatcherPolicySnapshotPerCall(t *testing.T) {
	var store policy.Store
	transport := newFakeTransport()
	stop := start(t, &dispatcher.Dispatcher{
		Transport: transport,
		Policy:    &store,
		Workers:   2,
	})
	defer stop()

	filter := policy.RequestFilter{tunnel100}
	assert.Equal(t, dispatcher.StatusOK,
		recv(t, transport.call(t, policy.MethodCreateSfc, filter), time.Second))

	require.NoError(t, store.Reload([]byte(`{"sfcfilter": {"deny":
		{"ghost_tunnel_identifier": {"ghostlabel":
		[{"terminal_label": 100, "service_label": 1}]}}}}`)))
	assert.Equal(t, dispatcher.StatusCancelled,
		recv(t, transport.call(t, policy.MethodCreateSfc, filter), time.Second))
}

func TestDispatcherShutdownAbandonsDelayed(t *testing.T) {
	const delay = 100 * time.Millisecond
	cfg := policy.Default()
	cfg.Delay = policy.NewFilterSet(tunnel100)
	cfg.DelayDuration = delay

	reg := prometheus.NewRegistry()
	m := dispatcher.NewMetrics(metrics.ApplyOptions(metrics.WithRegistry(reg)).Auto())
	transport := newFakeTransport()
	stop := start(t, &dispatcher.Dispatcher{
		Transport: transport,
		Policy:    staticPolicy{cfg: cfg},
		Metrics:   m,
	})

	delayed := transport.call(t, policy.MethodCreateSfc, policy.RequestFilter{tunnel100})
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(m.Delayed) == 1
	}, time.Second, 10*time.Millisecond)
	stop()

	time.Sleep(2 * delay)
	assert.Empty(t, delayed, "abandoned call must not be answered")
	assert.Equal(t, float64(0), testutil.ToFloat64(m.Delayed))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Abandoned))
	// Abandoned calls are no longer in flight.
	assert.Equal(t, float64(0), testutil.ToFloat64(m.InFlight))
}

func TestDispatcherMetrics(t *testing.T) {
	cfg := policy.Default()
	cfg.Deny = policy.NewFilterSet(tunnel100)

	reg := prometheus.NewRegistry()
	m := dispatcher.NewMetrics(metrics.ApplyOptions(
		metrics.WithRegistry(reg), metrics.WithNamespace("sfcgate")).Auto())
	transport := newFakeTransport()
	stop := start(t, &dispatcher.Dispatcher{
		Transport: transport,
		Policy:    staticPolicy{cfg: cfg},
		Metrics:   m,
	})
	defer stop()

	recv(t, transport.call(t, policy.MethodCreateSfc, policy.RequestFilter{tunnel100}), time.Second)
	recv(t, transport.call(t, policy.MethodCreateSfc, policy.RequestFilter{tunnel200}), time.Second)
	recv(t, transport.call(t, policy.MethodQuery, nil), time.Second)

	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.Decisions.WithLabelValues("CreateSfc", "deny")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.Decisions.WithLabelValues("CreateSfc", "allow")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.Decisions.WithLabelValues("Query", "allow")))
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(m.InFlight) == 0
	}, time.Second, 10*time.Millisecond)
}
