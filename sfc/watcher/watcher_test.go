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

package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfcgate/sfcgate/pkg/private/xtest"
	"github.com/sfcgate/sfcgate/sfc/policy"
	"github.com/sfcgate/sfcgate/sfc/watcher"
	"github.com/sfcgate/sfcgate/sfc/watcher/mock_watcher"
)

// runWatcher starts the watcher and returns a function that stops it and
// waits for Run to return.
func runWatcher(t *testing.T, w *watcher.Watcher) func() {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, w.Run(ctx))
	}()
	return func() {
		cancel()
		xtest.AssertReadReturnsBefore(t, done, time.Second)
	}
}

// waitWatching gives the watcher time to add the directory watch.
func waitWatching() {
	time.Sleep(100 * time.Millisecond)
}

func TestWatcherDebouncesBurst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	file := filepath.Join(t.TempDir(), "policy.json")
	reloaded := make(chan struct{}, 10)
	reloader := mock_watcher.NewMockReloader(ctrl)
	reloader.EXPECT().ReloadFile(file).DoAndReturn(func(string) error {
		reloaded <- struct{}{}
		return nil
	}).Times(1)

	stop := runWatcher(t, &watcher.Watcher{
		File:     file,
		Reloader: reloader,
		Debounce: 200 * time.Millisecond,
	})
	waitWatching()
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(file, []byte("{}"), 0o644))
	}
	xtest.AssertReadReturnsBefore(t, reloaded, 2*time.Second)
	// No second reload for the same burst.
	time.Sleep(400 * time.Millisecond)
	stop()
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	file := filepath.Join(dir, "policy.json")
	reloader := mock_watcher.NewMockReloader(ctrl)

	stop := runWatcher(t, &watcher.Watcher{
		File:     file,
		Reloader: reloader,
		Debounce: 50 * time.Millisecond,
	})
	waitWatching()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o644))
	time.Sleep(300 * time.Millisecond)
	stop()
}

func TestWatcherKeepsPolicyOnMalformedWrite(t *testing.T) {
	file := filepath.Join(t.TempDir(), "policy.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"requests": {"create": false}}`), 0o644))
	var store policy.Store
	require.NoError(t, store.ReloadFile(file))

	stop := runWatcher(t, &watcher.Watcher{
		File:     file,
		Reloader: &store,
		Debounce: 50 * time.Millisecond,
	})
	defer stop()
	waitWatching()

	require.NoError(t, os.WriteFile(file, []byte("{"), 0o644))
	time.Sleep(300 * time.Millisecond)
	assert.False(t, store.Load().CreateEnabled)
	assert.Equal(t, uint64(1), store.Generation())

	require.NoError(t, os.WriteFile(file, []byte(`{"requests": {"create": true}}`), 0o644))
	assert.Eventually(t, func() bool {
		return store.Load().CreateEnabled
	}, 2*time.Second, 20*time.Millisecond)
}

func TestWatcherReplacedFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "policy.json")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	var store policy.Store

	stop := runWatcher(t, &watcher.Watcher{
		File:     file,
		Reloader: &store,
		Debounce: 50 * time.Millisecond,
	})
	defer stop()
	waitWatching()

	tmp := filepath.Join(dir, ".policy.json.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte(`{"requests": {"query": false}}`), 0o644))
	require.NoError(t, os.Rename(tmp, file))
	assert.Eventually(t, func() bool {
		return !store.Load().QueryEnabled
	}, 2*time.Second, 20*time.Millisecond)
}

func TestWatcherRetriesUnavailableWatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := filepath.Join(t.TempDir(), "missing")
	file := filepath.Join(dir, "policy.json")
	var once sync.Once
	reloaded := make(chan struct{})
	reloader := mock_watcher.NewMockReloader(ctrl)
	reloader.EXPECT().ReloadFile(file).DoAndReturn(func(string) error {
		once.Do(func() { close(reloaded) })
		return nil
	}).MinTimes(1)

	stop := runWatcher(t, &watcher.Watcher{
		File:          file,
		Reloader:      reloader,
		Debounce:      20 * time.Millisecond,
		RetryInterval: 50 * time.Millisecond,
	})
	time.Sleep(120 * time.Millisecond)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0o644))
	xtest.AssertReadReturnsBefore(t, reloaded, 2*time.Second)
	stop()
}

func TestWatcherStopsWhileRetrying(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stop := runWatcher(t, &watcher.Watcher{
		File:          filepath.Join(t.TempDir(), "missing", "policy.json"),
		Reloader:      mock_watcher.NewMockReloader(ctrl),
		RetryInterval: time.Hour,
	})
	time.Sleep(50 * time.Millisecond)
	stop()
}
