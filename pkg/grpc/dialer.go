// Copyright 2020 Anapaya Systems
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

package grpc

import (
	"context"
	"time"

	grpc_retry "github.com/grpc-ecosystem/go-grpc-middleware/retry"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/sfcgate/sfcgate/pkg/private/serrors"
)

// Dialer creates a gRPC client connection to the given target.
type Dialer interface {
	Dial(ctx context.Context, target string) (*grpc.ClientConn, error)
}

// SimpleDialer dials the target string directly. Without credentials the
// connection is insecure.
type SimpleDialer struct {
	Credentials credentials.TransportCredentials
	// Options are appended to the default dial options.
	Options []grpc.DialOption
}

// Dial creates a client connection. The connection is established lazily, the
// context only bounds the setup.
func (d SimpleDialer) Dial(ctx context.Context, target string) (*grpc.ClientConn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	creds := d.Credentials
	if creds == nil {
		creds = insecure.NewCredentials()
	}
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		UnaryClientInterceptor(),
		StreamClientInterceptor(),
	}, d.Options...)
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, serrors.Wrap("creating client connection", err, "target", target)
	}
	return conn, nil
}

// RetryProfile is the common retry profile for RPCs. Only unavailable errors
// are retried, a CANCELLED status is a policy verdict and final. Attempts have
// no timeout of their own since a delayed admission holds the call open.
var RetryProfile = []grpc.CallOption{
	grpc_retry.WithMax(3),
	grpc_retry.WithCodes(codes.Unavailable),
	grpc_retry.WithBackoff(grpc_retry.BackoffLinear(100 * time.Millisecond)),
}
