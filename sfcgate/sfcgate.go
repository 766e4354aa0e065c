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

// Package sfcgate wires the components of the admission gateway.
package sfcgate

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"

	libgrpc "github.com/sfcgate/sfcgate/pkg/grpc"
	"github.com/sfcgate/sfcgate/pkg/metrics"
	"github.com/sfcgate/sfcgate/pkg/private/prom"
	"github.com/sfcgate/sfcgate/private/env"
	"github.com/sfcgate/sfcgate/sfc/dispatcher"
	"github.com/sfcgate/sfcgate/sfc/policy"
)

// InitTracer initializes the global tracer.
func InitTracer(tracing env.Tracing, id string) (io.Closer, error) {
	tracer, trCloser, err := tracing.NewTracer(id)
	if err != nil {
		return nil, err
	}
	opentracing.SetGlobalTracer(tracer)
	return trCloser, nil
}

// Metrics holds the metrics of all components.
type Metrics struct {
	Policy          policy.Metrics
	Dispatcher      dispatcher.Metrics
	WatcherFailures prometheus.Counter
}

// NewMetrics creates the metrics with the given registry options.
func NewMetrics(opts ...metrics.Option) Metrics {
	f := metrics.ApplyOptions(append([]metrics.Option{
		metrics.WithNamespace(prom.Namespace),
	}, opts...)...).Auto()
	return Metrics{
		Policy:     policy.NewMetrics(f),
		Dispatcher: dispatcher.NewMetrics(f),
		WatcherFailures: f.NewCounter(prometheus.CounterOpts{
			Subsystem: "policy",
			Name:      "watch_failures_total",
			Help:      "Total number of policy file watch failures.",
		}),
	}
}

// ServerOptions returns the options of the gRPC server. If TLS is enabled,
// the server uses the key pair of the policy and verifies client certificates
// against its root bundle.
func ServerOptions(tls policy.TLS) ([]grpc.ServerOption, error) {
	opts := []grpc.ServerOption{
		libgrpc.UnaryServerInterceptor(),
		libgrpc.StreamServerInterceptor(),
		libgrpc.DefaultMaxConcurrentStreams(),
	}
	if !tls.Enabled {
		return opts, nil
	}
	creds, err := libgrpc.ServerCredentials(libgrpc.TLSFiles{
		Key:  tls.Key,
		Cert: tls.Cert,
		Root: tls.Root,
	})
	if err != nil {
		return nil, err
	}
	return append(opts, grpc.Creds(creds)), nil
}
