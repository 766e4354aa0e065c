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
	"time"
)

// Method is an RPC method of the SFC service.
type Method int

const (
	MethodCreateSfc Method = iota
	MethodDeleteSfc
	MethodQuery
)

// Methods lists all methods.
var Methods = []Method{MethodCreateSfc, MethodDeleteSfc, MethodQuery}

func (m Method) String() string {
	switch m {
	case MethodCreateSfc:
		return "CreateSfc"
	case MethodDeleteSfc:
		return "DeleteSfc"
	case MethodQuery:
		return "Query"
	default:
		return "unknown"
	}
}

// filtered reports whether requests of the method carry a filter that is
// checked against the filter lists. The other methods are only subject to
// their toggle.
func (m Method) filtered() bool {
	return m == MethodCreateSfc
}

// Verdict is the outcome of a policy decision.
type Verdict int

const (
	Allow Verdict = iota
	Deny
	// Delay means the request is allowed after the delay elapsed.
	Delay
)

func (v Verdict) String() string {
	switch v {
	case Allow:
		return "allow"
	case Deny:
		return "deny"
	case Delay:
		return "delay"
	default:
		return "unknown"
	}
}

// Decision is the verdict for one request. Delay is only set for the Delay
// verdict.
type Decision struct {
	Verdict Verdict
	Delay   time.Duration
}

// Enabled reports whether the toggle of the method is set.
func (c *Config) Enabled(m Method) bool {
	switch m {
	case MethodCreateSfc:
		return c.CreateEnabled
	case MethodDeleteSfc:
		return c.DeleteEnabled
	case MethodQuery:
		return c.QueryEnabled
	default:
		return false
	}
}

// Decide evaluates the request in a fixed order: a disabled method is denied,
// a match in the delay list is delayed, then the deny list is consulted if it
// is active and otherwise the allow list. With neither list active the
// request is allowed. Deny shadows allow if both are active.
func (c *Config) Decide(m Method, filter RequestFilter) Decision {
	if !c.Enabled(m) {
		return Decision{Verdict: Deny}
	}
	if !m.filtered() {
		return Decision{Verdict: Allow}
	}
	if c.Delay.Active() && c.Delay.Matches(filter) {
		return Decision{Verdict: Delay, Delay: c.DelayDuration}
	}
	switch {
	case c.Deny.Active():
		if c.Deny.Matches(filter) {
			return Decision{Verdict: Deny}
		}
		return Decision{Verdict: Allow}
	case c.Allow.Active():
		if c.Allow.Matches(filter) {
			return Decision{Verdict: Allow}
		}
		return Decision{Verdict: Deny}
	default:
		return Decision{Verdict: Allow}
	}
}
