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

package grpc_test

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	libgrpc "github.com/sfcgate/sfcgate/pkg/grpc"
	"github.com/sfcgate/sfcgate/pkg/proto/sfc"
)

// flakyServer fails the first calls of each method with the configured code.
type flakyServer struct {
	sfc.UnimplementedSfcServiceServer
	failures int32
	code     codes.Code
	calls    atomic.Int32
}

func (s *flakyServer) Query(context.Context, *sfc.QueryRequest) (*sfc.QueryResponse, error) {
	if s.calls.Add(1) <= s.failures {
		return nil, status.Error(s.code, "try again")
	}
	return &sfc.QueryResponse{}, nil
}

func serve(t *testing.T, srv sfc.SfcServiceServer) string {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	server := grpc.NewServer(libgrpc.UnaryServerInterceptor())
	sfc.RegisterSfcServiceServer(server, srv)
	go func() { server.Serve(listener) }()
	t.Cleanup(server.Stop)
	return listener.Addr().String()
}

func TestSimpleDialerRetryProfile(t *testing.T) {
	testCases := map[string]struct {
		failures  int32
		code      codes.Code
		wantCode  codes.Code
		wantCalls int32
	}{
		"unavailable is retried": {
			failures:  2,
			code:      codes.Unavailable,
			wantCode:  codes.OK,
			wantCalls: 3,
		},
		"unavailable gives up after max attempts": {
			failures:  5,
			code:      codes.Unavailable,
			wantCode:  codes.Unavailable,
			wantCalls: 3,
		},
		"cancelled is final": {
			failures:  1,
			code:      codes.Canceled,
			wantCode:  codes.Canceled,
			wantCalls: 1,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			srv := &flakyServer{failures: tc.failures, code: tc.code}
			addr := serve(t, srv)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			conn, err := libgrpc.SimpleDialer{}.Dial(ctx, addr)
			require.NoError(t, err)
			defer conn.Close()

			_, err = sfc.NewSfcServiceClient(conn).Query(ctx, &sfc.QueryRequest{},
				libgrpc.RetryProfile...)
			assert.Equal(t, tc.wantCode, status.Code(err))
			assert.Equal(t, tc.wantCalls, srv.calls.Load())
		})
	}
}

func TestSimpleDialerCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := libgrpc.SimpleDialer{}.Dial(ctx, "127.0.0.1:1")
	assert.ErrorIs(t, err, context.Canceled)
}
