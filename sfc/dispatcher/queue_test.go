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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfcgate/sfcgate/pkg/private/xtest"
	"github.com/sfcgate/sfcgate/sfc/dispatcher"
)

func TestQueueFIFO(t *testing.T) {
	q := dispatcher.NewQueue(1)
	slots := []*dispatcher.Slot{{}, {}, {}}
	for _, s := range slots {
		require.True(t, q.Post(s))
	}
	for _, want := range slots {
		got, ok := q.Next()
		require.True(t, ok)
		assert.Same(t, want, got)
	}
}

func TestQueueShutdown(t *testing.T) {
	q := dispatcher.NewQueue(0)
	require.True(t, q.Post(&dispatcher.Slot{}))

	done := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				if _, ok := q.Next(); !ok {
					return
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(done)
	}()
	q.Shutdown()
	q.Shutdown()
	xtest.AssertReadReturnsBefore(t, done, time.Second)
	xtest.AssertReadReturnsBefore(t, q.Done(), 10*time.Millisecond)
	assert.False(t, q.Post(&dispatcher.Slot{}))
}

func TestQueueShutdownReturnsPending(t *testing.T) {
	q := dispatcher.NewQueue(0)
	first, second := &dispatcher.Slot{}, &dispatcher.Slot{}
	require.True(t, q.Post(first))
	require.True(t, q.Post(second))

	dropped := q.Shutdown()
	require.Len(t, dropped, 2)
	assert.Same(t, first, dropped[0])
	assert.Same(t, second, dropped[1])
	assert.Empty(t, q.Shutdown())
	_, ok := q.Next()
	assert.False(t, ok)
}

func TestQueueWakesAllWorkers(t *testing.T) {
	q := dispatcher.NewQueue(0)
	const workers = 4
	var started sync.WaitGroup
	started.Add(workers)
	release := make(chan struct{})
	got := make(chan struct{}, workers)
	for i := 0; i < workers; i++ {
		go func() {
			started.Done()
			if _, ok := q.Next(); ok {
				got <- struct{}{}
				<-release
			}
		}()
	}
	started.Wait()
	for i := 0; i < workers; i++ {
		q.Post(&dispatcher.Slot{})
	}
	// All workers hold one slot at the same time.
	for i := 0; i < workers; i++ {
		xtest.AssertReadReturnsBefore(t, got, time.Second)
	}
	close(release)
	q.Shutdown()
}
