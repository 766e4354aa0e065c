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

// Package dispatcher runs every RPC through a small state machine driven by a
// shared event queue.
//
// Each method always has one slot registered with the transport. When an RPC
// arrives, its slot is posted to the queue and a worker moves it from Awaiting
// to Evaluating, which immediately registers a fresh slot for the method. The
// worker then decides with one policy snapshot and hands the status to the
// transport. A delayed call is parked on its own timer, so no worker waits for
// it.
package dispatcher

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sfcgate/sfcgate/pkg/log"
	"github.com/sfcgate/sfcgate/sfc/policy"
)

// DefaultQueueSize is the initial capacity of the event queue.
const DefaultQueueSize = 1024

// PolicySource provides the live policy snapshot.
type PolicySource interface {
	Load() *policy.Config
}

// Dispatcher connects a transport with the policy.
type Dispatcher struct {
	Transport Transport
	Policy    PolicySource
	// Workers is the number of goroutines draining the queue. If zero,
	// runtime.NumCPU() is used.
	Workers int
	// QueueSize is the initial capacity of the queue. If zero,
	// DefaultQueueSize is used.
	QueueSize int
	Metrics   Metrics

	lastID atomic.Uint64
}

// Run serves calls until the context is done. On return the queue is shut
// down and calls that did not receive a status are abandoned.
func (d *Dispatcher) Run(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	q := NewQueue(d.queueSize())
	for _, m := range policy.Methods {
		d.arm(m, q)
	}

	workers := d.workers()
	logger.Debug("Dispatcher started", "workers", workers)
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			defer log.HandlePanic()
			for {
				s, ok := q.Next()
				if !ok {
					return nil
				}
				d.proceed(logger, s, q)
			}
		})
	}
	<-ctx.Done()
	for _, s := range q.Shutdown() {
		d.Metrics.callAbandoned(s)
	}
	err := g.Wait()
	logger.Debug("Dispatcher stopped")
	return err
}

// arm registers a new awaiting slot for the method.
func (d *Dispatcher) arm(m policy.Method, q *Queue) {
	s := &Slot{
		id:     d.lastID.Add(1),
		method: m,
		state:  Awaiting,
	}
	d.Transport.RequestCall(s, q)
}

// proceed performs one transition of the slot.
func (d *Dispatcher) proceed(logger log.Logger, s *Slot, q *Queue) {
	switch s.state {
	case Awaiting:
		s.state = Evaluating
		d.arm(s.method, q)
		d.Metrics.callStarted()

		s.decision = d.Policy.Load().Decide(s.method, s.filter)
		d.Metrics.observeDecision(s.method, s.decision.Verdict)
		if logger.Enabled(log.DebugLevel) {
			logger.Debug("Policy decision", "slot", s.id, "method", s.method,
				"filter", s.filter, "verdict", s.decision.Verdict)
		}
		if s.decision.Verdict == policy.Delay && s.decision.Delay > 0 {
			d.park(s, q)
			return
		}
		d.respond(s, q)
	case Evaluating:
		// The delay elapsed.
		d.respond(s, q)
	case Responding:
		s.state = Done
		d.Metrics.callDone(s.method, time.Since(s.accepted))
	default:
		logger.Error("Slot in unexpected state", "slot", s.id, "state", s.state)
	}
}

// park re-posts the slot once its delay elapsed.
func (d *Dispatcher) park(s *Slot, q *Queue) {
	d.Metrics.delayStarted()
	time.AfterFunc(s.decision.Delay, func() {
		d.Metrics.delayDone()
		if !q.Post(s) {
			d.Metrics.callAbandoned(s)
		}
	})
}

func (d *Dispatcher) respond(s *Slot, q *Queue) {
	s.status = StatusOK
	if s.decision.Verdict == policy.Deny {
		s.status = StatusCancelled
	}
	s.state = Responding
	s.responder.Respond(s.status)
	if !q.Post(s) {
		d.Metrics.callAbandoned(s)
	}
}

func (d *Dispatcher) workers() int {
	if d.Workers > 0 {
		return d.Workers
	}
	return runtime.NumCPU()
}

func (d *Dispatcher) queueSize() int {
	if d.QueueSize > 0 {
		return d.QueueSize
	}
	return DefaultQueueSize
}
