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

// Package grpc serves the ghost.SfcService API on top of the dispatcher.
package grpc

import (
	"context"
	"sync/atomic"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sfcgate/sfcgate/pkg/log"
	"github.com/sfcgate/sfcgate/pkg/private/serrors"
	"github.com/sfcgate/sfcgate/pkg/proto/sfc"
	"github.com/sfcgate/sfcgate/sfc/dispatcher"
	"github.com/sfcgate/sfcgate/sfc/policy"
)

var (
	_ sfc.SfcServiceServer = (*Server)(nil)
	_ dispatcher.Transport = (*Server)(nil)
)

type registration struct {
	slot  *dispatcher.Slot
	queue *dispatcher.Queue
}

// Server implements the SFC service. Each handler takes the slot the
// dispatcher registered for its method, so calls are admitted in the order
// the dispatcher arms slots.
type Server struct {
	regs  map[policy.Method]chan registration
	queue atomic.Pointer[dispatcher.Queue]
}

func NewServer() *Server {
	s := &Server{regs: make(map[policy.Method]chan registration, len(policy.Methods))}
	for _, m := range policy.Methods {
		// The dispatcher arms at most one slot per method at a time.
		s.regs[m] = make(chan registration, 1)
	}
	return s
}

// RequestCall implements dispatcher.Transport. A registration that is still
// pending, e.g. one left behind by a dispatcher that stopped before the
// method was called, is replaced.
func (s *Server) RequestCall(slot *dispatcher.Slot, q *dispatcher.Queue) {
	s.queue.Store(q)
	reg := registration{slot: slot, queue: q}
	ch := s.regs[slot.Method()]
	for {
		select {
		case ch <- reg:
			return
		default:
		}
		select {
		case stale := <-ch:
			log.Debug("Replacing pending slot registration", "method", slot.Method(),
				"stale", stale.slot.ID(), "slot", slot.ID())
		default:
		}
	}
}

func (s *Server) CreateSfc(ctx context.Context,
	req *sfc.CreateSfcRequest) (*sfc.CreateSfcResponse, error) {

	filter, err := RequestFilter(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := s.serve(ctx, policy.MethodCreateSfc, filter); err != nil {
		return nil, err
	}
	return &sfc.CreateSfcResponse{}, nil
}

func (s *Server) DeleteSfc(ctx context.Context,
	_ *sfc.DeleteSfcRequest) (*sfc.DeleteSfcResponse, error) {

	if err := s.serve(ctx, policy.MethodDeleteSfc, nil); err != nil {
		return nil, err
	}
	return &sfc.DeleteSfcResponse{}, nil
}

func (s *Server) Query(ctx context.Context, _ *sfc.QueryRequest) (*sfc.QueryResponse, error) {
	if err := s.serve(ctx, policy.MethodQuery, nil); err != nil {
		return nil, err
	}
	return &sfc.QueryResponse{}, nil
}

// serve hands the call to the dispatcher and waits for its status.
func (s *Server) serve(ctx context.Context, m policy.Method, filter policy.RequestFilter) error {
	var reg registration
	select {
	case reg = <-s.regs[m]:
	case <-s.done():
		return errUnavailable
	case <-ctx.Done():
		return status.FromContextError(ctx.Err()).Err()
	}

	reply := make(chan dispatcher.Status, 1)
	reg.slot.Accept(filter, dispatcher.ResponderFunc(func(st dispatcher.Status) {
		reply <- st
	}))
	if !reg.queue.Post(reg.slot) {
		return errUnavailable
	}
	select {
	case st := <-reply:
		if st != dispatcher.StatusOK {
			log.FromCtx(ctx).Debug("Request refused by policy", "method", m, "slot", reg.slot.ID())
			return status.Error(codes.Canceled, "request refused by policy")
		}
		return nil
	case <-reg.queue.Done():
		return errUnavailable
	case <-ctx.Done():
		return status.FromContextError(ctx.Err()).Err()
	}
}

// done returns the shutdown channel of the queue. It blocks forever before
// the dispatcher registered its first slot.
func (s *Server) done() <-chan struct{} {
	if q := s.queue.Load(); q != nil {
		return q.Done()
	}
	return nil
}

var errUnavailable = status.Error(codes.Unavailable, "dispatcher shut down")

// RequestFilter extracts the identifiers of the request in layer order.
// Layers without a filter are skipped. Missing labels are zero.
func RequestFilter(req *sfc.CreateSfcRequest) (policy.RequestFilter, error) {
	var filter policy.RequestFilter
	for i, layer := range req.GetSfcFilter().GetFilterLayers() {
		gf := layer.GetGhostFilter()
		tunnel, routing := gf.GetTunnelId(), gf.GetRoutingId()
		switch {
		case tunnel != nil && routing != nil:
			return nil, serrors.New("filter layer carries tunnel and routing identifier",
				"layer", i)
		case tunnel != nil:
			filter = append(filter, policy.TunnelIdentifier{
				TerminalLabel: tunnel.GetTerminalLabel().GetValue(),
				ServiceLabel:  tunnel.GetServiceLabel().GetValue(),
			})
		case routing != nil:
			prefix := routing.GetDestinationLabelPrefix()
			filter = append(filter, policy.RoutingIdentifier{
				DestinationPrefix: prefix.GetValue(),
				PrefixLen:         prefix.GetPrefixLen(),
			})
		}
	}
	return filter, nil
}
