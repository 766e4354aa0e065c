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

// Package watcher reloads the policy when its file changes.
//
// The watcher observes the directory of the policy file, because editors and
// configuration management tools often replace the file instead of writing
// it in place. Bursts of events are debounced into a single reload. All
// reloads run on the watcher goroutine, so they never overlap.
package watcher

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sfcgate/sfcgate/pkg/log"
	"github.com/sfcgate/sfcgate/pkg/private/serrors"
)

const (
	// DefaultDebounce is the quiet period after the last event before the
	// file is reloaded.
	DefaultDebounce = 250 * time.Millisecond
	// DefaultRetryInterval is the wait between attempts to set up the watch.
	DefaultRetryInterval = 5 * time.Second
)

// ErrWatchUnavailable indicates that the file notification subsystem failed.
var ErrWatchUnavailable = errors.New("watch unavailable")

// Reloader reloads the policy from a file.
type Reloader interface {
	ReloadFile(file string) error
}

// Watcher triggers a reload whenever the file is written or created.
type Watcher struct {
	// File is the watched policy file.
	File string
	// Reloader is called for every debounced change.
	Reloader Reloader
	// Debounce is the quiet period before a reload. If zero, DefaultDebounce
	// is used.
	Debounce time.Duration
	// RetryInterval is the wait between attempts to set up the watch. If zero,
	// DefaultRetryInterval is used.
	RetryInterval time.Duration
	// Failures counts watch failures. Optional.
	Failures prometheus.Counter
}

// Run watches the file until the context is done. Watch failures are logged
// and the watch is set up again after RetryInterval, followed by one reload to
// pick up changes that happened in the meantime. Run always returns nil.
func (w *Watcher) Run(ctx context.Context) error {
	logger := log.FromCtx(ctx).New("file", w.File)
	recovering := false
	for {
		fw, err := w.watch()
		if err == nil {
			if recovering {
				logger.Info("Policy watch re-established")
				w.reload(logger)
			}
			err = w.loop(ctx, logger, fw)
			if closeErr := fw.Close(); closeErr != nil {
				logger.Debug("Closing watcher failed", "err", closeErr)
			}
		}
		if ctx.Err() != nil {
			return nil
		}
		if w.Failures != nil {
			w.Failures.Inc()
		}
		logger.Error("Policy watch failed, live reload suspended",
			"err", serrors.JoinNoStack(ErrWatchUnavailable, err),
			"retry_in", w.retryInterval())
		recovering = true
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(w.retryInterval()):
		}
	}
}

func (w *Watcher) watch() (*fsnotify.Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, serrors.Wrap("creating watcher", err)
	}
	dir := filepath.Dir(w.File)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, serrors.Wrap("watching directory", err, "dir", dir)
	}
	return fw, nil
}

// loop handles events until the context is done or the watcher fails.
func (w *Watcher) loop(ctx context.Context, logger log.Logger, fw *fsnotify.Watcher) error {
	name := filepath.Clean(w.File)
	debounce := time.NewTimer(w.debounce())
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return serrors.New("event channel closed")
			}
			if filepath.Clean(ev.Name) != name {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("Policy file changed", "op", ev.Op.String())
			debounce.Reset(w.debounce())
		case err, ok := <-fw.Errors:
			if !ok {
				return serrors.New("error channel closed")
			}
			return err
		case <-debounce.C:
			w.reload(logger)
		}
	}
}

func (w *Watcher) reload(logger log.Logger) {
	if err := w.Reloader.ReloadFile(w.File); err != nil {
		logger.Error("Reloading policy failed, keeping current policy", "err", err)
	}
}

func (w *Watcher) debounce() time.Duration {
	if w.Debounce > 0 {
		return w.Debounce
	}
	return DefaultDebounce
}

func (w *Watcher) retryInterval() time.Duration {
	if w.RetryInterval > 0 {
		return w.RetryInterval
	}
	return DefaultRetryInterval
}
