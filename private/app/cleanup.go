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

// Package app contains helpers shared by the sfcgate binaries.
package app

import (
	"sync"

	"github.com/sfcgate/sfcgate/pkg/private/serrors"
)

// Cleanup collects close functions that are run on shutdown.
type Cleanup struct {
	mtx sync.Mutex
	fns []func() error
}

// Add registers f. Functions run in reverse order of registration.
func (c *Cleanup) Add(f func() error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.fns = append(c.fns, f)
}

// Do runs all registered functions, even if some of them fail, and returns
// the combined error. Do can be called multiple times; each function runs once.
func (c *Cleanup) Do() error {
	c.mtx.Lock()
	fns := c.fns
	c.fns = nil
	c.mtx.Unlock()

	var errs serrors.List
	for i := len(fns) - 1; i >= 0; i-- {
		if err := fns[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errs.ToError()
}
