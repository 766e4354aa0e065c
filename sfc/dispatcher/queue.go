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
	"sync"
)

// Queue is the event queue shared by the transport and the workers. Every
// posted slot is one pending state transition. The queue is unbounded, so
// workers never block when they post follow-up events.
type Queue struct {
	mtx    sync.Mutex
	items  []*Slot
	closed bool
	// signal holds a token while items may be pending.
	signal chan struct{}
	done   chan struct{}
}

// NewQueue creates a queue with room for capacity events before it grows.
func NewQueue(capacity int) *Queue {
	return &Queue{
		items:  make([]*Slot, 0, capacity),
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Post enqueues the slot. It returns false if the queue is shut down, in which
// case the slot is abandoned.
func (q *Queue) Post(s *Slot) bool {
	q.mtx.Lock()
	if q.closed {
		q.mtx.Unlock()
		return false
	}
	q.items = append(q.items, s)
	q.mtx.Unlock()
	q.wake()
	return true
}

// Next blocks until a slot is available or the queue is shut down. The second
// return value is false after shutdown.
func (q *Queue) Next() (*Slot, bool) {
	for {
		q.mtx.Lock()
		if q.closed {
			q.mtx.Unlock()
			return nil, false
		}
		if len(q.items) > 0 {
			s := q.items[0]
			q.items[0] = nil
			q.items = q.items[1:]
			more := len(q.items) > 0
			q.mtx.Unlock()
			if more {
				q.wake()
			}
			return s, true
		}
		q.mtx.Unlock()
		select {
		case <-q.signal:
		case <-q.done:
		}
	}
}

// Shutdown closes the queue and returns the pending events it dropped.
// Subsequent posts fail. It is safe to call Shutdown multiple times.
func (q *Queue) Shutdown() []*Slot {
	q.mtx.Lock()
	defer q.mtx.Unlock()
	if q.closed {
		return nil
	}
	q.closed = true
	dropped := q.items
	q.items = nil
	close(q.done)
	return dropped
}

// Done is closed when the queue is shut down.
func (q *Queue) Done() <-chan struct{} {
	return q.done
}

func (q *Queue) wake() {
	select {
	case q.signal <- struct{}{}:
	default:
	}
}
