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

// Package sfc contains the protobuf messages and the gRPC service description
// of the ghost.SfcService API. The messages in sfc.pb.go are generated from
// proto/ghost/sfc.proto.
package sfc

// NewTunnelFilter returns a filter layer for a tunnel identifier.
func NewTunnelFilter(terminal, service uint64) *FilterLayer {
	return &FilterLayer{GhostFilter: &GhostFilter{TunnelId: &GhostTunnelIdentifier{
		TerminalLabel: &GhostLabel{Value: terminal},
		ServiceLabel:  &GhostLabel{Value: service},
	}}}
}

// NewRoutingFilter returns a filter layer for a routing identifier.
func NewRoutingFilter(value uint64, prefixLen uint32) *FilterLayer {
	return &FilterLayer{GhostFilter: &GhostFilter{RoutingId: &GhostRoutingIdentifier{
		DestinationLabelPrefix: &GhostLabelPrefix{Value: value, PrefixLen: prefixLen},
	}}}
}
