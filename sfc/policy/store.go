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
	"errors"
	"io/fs"
	"os"
	"sync"
	"sync/atomic"

	"github.com/sfcgate/sfcgate/pkg/log"
	"github.com/sfcgate/sfcgate/pkg/private/prom"
	"github.com/sfcgate/sfcgate/pkg/private/serrors"
)

var defaultConfig = Default()

// Store publishes policy snapshots. Load is lock-free, reloads are serialized.
// The zero value serves the default policy.
type Store struct {
	// Metrics is optional and must be set before the store is used.
	Metrics Metrics

	mtx        sync.Mutex
	current    atomic.Pointer[Config]
	generation atomic.Uint64
}

// Load returns the live snapshot. The caller must not modify it.
func (s *Store) Load() *Config {
	if cfg := s.current.Load(); cfg != nil {
		return cfg
	}
	return defaultConfig
}

// Generation returns the number of snapshots published so far.
func (s *Store) Generation() uint64 {
	return s.generation.Load()
}

// Reload parses raw and publishes the result. On error the live snapshot is
// kept and the error wraps ErrParse.
func (s *Store) Reload(raw []byte) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.reload(raw)
}

// ReloadFile reads the policy file and publishes its content. If the file does
// not exist the error wraps ErrNotFound.
func (s *Store) ReloadFile(file string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	raw, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.Metrics.observeReload(prom.ErrNotFound)
			return serrors.JoinNoStack(ErrNotFound, err, "file", file)
		}
		s.Metrics.observeReload(prom.ErrNotClassified)
		return serrors.Wrap("reading policy file", err, "file", file)
	}
	if err := s.reload(raw); err != nil {
		return serrors.WrapNoStack("reloading policy", err, "file", file)
	}
	return nil
}

func (s *Store) reload(raw []byte) error {
	next, err := Parse(raw)
	if err != nil {
		s.Metrics.observeReload(prom.ErrParse)
		return err
	}
	prev := s.Load()
	s.current.Store(next)
	gen := s.generation.Add(1)
	s.Metrics.observeReload(prom.Success)
	s.Metrics.observeSnapshot(gen, next)

	log.Info("Policy loaded", "generation", gen,
		"deny", next.Deny.Len(), "allow", next.Allow.Len(), "delay", next.Delay.Len(),
		"delay_duration", next.DelayDuration, "create", next.CreateEnabled,
		"delete", next.DeleteEnabled, "query", next.QueryEnabled)
	if next.Deny.Active() && next.Allow.Active() {
		log.Info("Deny and allow list are both active, the allow list is ignored")
	}
	if gen > 1 && (prev.Address != next.Address || prev.TLS != next.TLS) {
		log.Info("Listen address or TLS settings changed, restart to apply",
			"address", next.Address, "tls", next.TLS.Enabled)
	}
	return nil
}
