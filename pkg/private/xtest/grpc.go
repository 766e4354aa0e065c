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

package xtest

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

const bufconnSize = 1 << 20

// GRPCService runs a gRPC server on an in-memory listener.
type GRPCService struct {
	lis    *bufconn.Listener
	server *grpc.Server
}

// NewGRPCService creates the server. Register services on Server before
// calling Start.
func NewGRPCService(opts ...grpc.ServerOption) *GRPCService {
	return &GRPCService{
		lis:    bufconn.Listen(bufconnSize),
		server: grpc.NewServer(opts...),
	}
}

func (s *GRPCService) Server() *grpc.Server {
	return s.server
}

// Start serves in the background. The returned function stops the server
// and closes all connections.
func (s *GRPCService) Start() func() {
	go func() { _ = s.server.Serve(s.lis) }()
	return s.server.Stop
}

// Dial returns an insecure client connection to the server.
func (s *GRPCService) Dial(ctx context.Context, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dialer := func(ctx context.Context, _ string) (net.Conn, error) {
		return s.lis.DialContext(ctx)
	}
	base := []grpc.DialOption{
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	return grpc.NewClient("passthrough:///bufconn", append(base, opts...)...)
}
