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

package main

import (
	"strconv"
	"strings"

	"github.com/sfcgate/sfcgate/pkg/private/serrors"
	"github.com/sfcgate/sfcgate/pkg/proto/sfc"
	"github.com/sfcgate/sfcgate/sfc/policy"
)

// parseTunnel parses a tunnel identifier of the form terminal:service.
func parseTunnel(s string) (*sfc.FilterLayer, error) {
	terminal, service, ok := strings.Cut(s, ":")
	if !ok {
		return nil, serrors.New("tunnel identifier must be terminal:service", "input", s)
	}
	t, err := strconv.ParseUint(terminal, 10, 64)
	if err != nil {
		return nil, serrors.Wrap("parsing terminal label", err, "input", s)
	}
	v, err := strconv.ParseUint(service, 10, 64)
	if err != nil {
		return nil, serrors.Wrap("parsing service label", err, "input", s)
	}
	return sfc.NewTunnelFilter(t, v), nil
}

// parseRoute parses a routing identifier of the form value/prefix_len.
func parseRoute(s string) (*sfc.FilterLayer, error) {
	value, prefixLen, ok := strings.Cut(s, "/")
	if !ok {
		return nil, serrors.New("routing identifier must be value/prefix_len", "input", s)
	}
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil, serrors.Wrap("parsing destination label", err, "input", s)
	}
	l, err := strconv.ParseUint(prefixLen, 10, 32)
	if err != nil {
		return nil, serrors.Wrap("parsing prefix length", err, "input", s)
	}
	if l > policy.MaxPrefixLen {
		return nil, serrors.New("prefix length out of range", "input", s,
			"max", policy.MaxPrefixLen)
	}
	return sfc.NewRoutingFilter(v, uint32(l)), nil
}

// layerFlag is a repeatable flag appending filter layers in command line
// order. Several layerFlags can share one list.
type layerFlag struct {
	layers *[]*sfc.FilterLayer
	parse  func(string) (*sfc.FilterLayer, error)
	kind   string
	values []string
}

func (f *layerFlag) Set(s string) error {
	layer, err := f.parse(s)
	if err != nil {
		return err
	}
	*f.layers = append(*f.layers, layer)
	f.values = append(f.values, s)
	return nil
}

func (f *layerFlag) Type() string   { return f.kind }
func (f *layerFlag) String() string { return strings.Join(f.values, ",") }
