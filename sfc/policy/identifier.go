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

// Package policy implements the admission policy of the SFC API: the filter
// lists, the immutable policy snapshot with its decision algorithm, and the
// store that publishes snapshots atomically.
//
// A snapshot is never modified after it was published. Readers take one
// snapshot with Store.Load and use it for the whole decision:
//
//	cfg := store.Load()
//	decision := cfg.Decide(policy.MethodCreateSfc, filter)
//
// Writers replace the snapshot with Store.Reload or Store.ReloadFile. A failed
// reload keeps the previous snapshot.
package policy

import (
	"fmt"
)

// Identifier is a filter key. It is implemented by TunnelIdentifier and
// RoutingIdentifier only. Identifiers are comparable values, two identifiers
// are equal iff they are of the same kind and all fields are equal.
type Identifier interface {
	fmt.Stringer
	identifier()
}

// TunnelIdentifier identifies a tunnel by its terminal and service label.
type TunnelIdentifier struct {
	TerminalLabel uint64
	ServiceLabel  uint64
}

func (TunnelIdentifier) identifier() {}

func (id TunnelIdentifier) String() string {
	return fmt.Sprintf("tunnel(%d:%d)", id.TerminalLabel, id.ServiceLabel)
}

// RoutingIdentifier identifies a route by its destination label prefix.
type RoutingIdentifier struct {
	DestinationPrefix uint64
	PrefixLen         uint32
}

func (RoutingIdentifier) identifier() {}

func (id RoutingIdentifier) String() string {
	return fmt.Sprintf("route(%d/%d)", id.DestinationPrefix, id.PrefixLen)
}

// RequestFilter is the list of identifiers carried by one request.
type RequestFilter []Identifier
