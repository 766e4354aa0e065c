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

// FilterSet is an ordered list of identifiers. The order is the order of the
// policy source, duplicates are kept. The zero value is an empty, inactive
// set.
type FilterSet struct {
	ids   []Identifier
	index map[Identifier]struct{}
}

// NewFilterSet creates a set with the given identifiers. Nil identifiers are
// skipped. Without identifiers the zero value is returned.
func NewFilterSet(ids ...Identifier) FilterSet {
	if len(ids) == 0 {
		return FilterSet{}
	}
	s := FilterSet{
		ids:   make([]Identifier, 0, len(ids)),
		index: make(map[Identifier]struct{}, len(ids)),
	}
	for _, id := range ids {
		if id == nil {
			continue
		}
		s.ids = append(s.ids, id)
		s.index[id] = struct{}{}
	}
	if len(s.ids) == 0 {
		return FilterSet{}
	}
	return s
}

// Active reports whether the set contains at least one identifier.
func (s FilterSet) Active() bool {
	return len(s.ids) > 0
}

func (s FilterSet) Len() int {
	return len(s.ids)
}

// Identifiers returns a copy of the identifiers in source order.
func (s FilterSet) Identifiers() []Identifier {
	return append([]Identifier(nil), s.ids...)
}

// Matches reports whether any identifier of the filter is contained in the
// set. An empty filter never matches.
func (s FilterSet) Matches(filter RequestFilter) bool {
	for _, id := range filter {
		if id == nil {
			continue
		}
		if _, ok := s.index[id]; ok {
			return true
		}
	}
	return false
}

func (s FilterSet) tunnels() []TunnelIdentifier {
	var r []TunnelIdentifier
	for _, id := range s.ids {
		if t, ok := id.(TunnelIdentifier); ok {
			r = append(r, t)
		}
	}
	return r
}

func (s FilterSet) routes() []RoutingIdentifier {
	var r []RoutingIdentifier
	for _, id := range s.ids {
		if t, ok := id.(RoutingIdentifier); ok {
			r = append(r, t)
		}
	}
	return r
}
