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

// Package grpc contains the gRPC options shared by sfcgate servers and clients.
package grpc

import (
	"context"
	"time"

	grpc_retry "github.com/grpc-ecosystem/go-grpc-middleware/retry"
	grpcprom "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/grpc-ecosystem/grpc-opentracing/go/otgrpc"
	opentracing "github.com/opentracing/opentracing-go"
	jaeger "github.com/uber/jaeger-client-go"
	"google.golang.org/grpc"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/sfcgate/sfcgate/pkg/log"
)

// maxConcurrentStreams bounds the handlers running at once per connection.
// Delayed admissions keep their stream open for the whole delay.
const maxConcurrentStreams = 128

// rpcLogger returns a logger tagged with a fresh debug ID and, for traced
// calls, the jaeger trace ID.
func rpcLogger(ctx context.Context, method string) log.Logger {
	labels := []any{"debug_id", log.NewDebugID(), "method", method}
	if span := opentracing.SpanFromContext(ctx); span != nil {
		if sc, ok := span.Context().(jaeger.SpanContext); ok {
			labels = append(labels, "trace_id", sc.TraceID())
		}
	}
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		labels = append(labels, "peer", p.Addr.String())
	}
	return log.New(labels...)
}

func logServerUnary(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {

	logger := rpcLogger(ctx, info.FullMethod)
	start := time.Now()
	resp, err := handler(log.CtxWith(ctx, logger), req)
	logger.Debug("RPC done", "code", status.Code(err), "took", time.Since(start))
	return resp, err
}

func logServerStream(
	srv any,
	ss grpc.ServerStream,
	info *grpc.StreamServerInfo,
	handler grpc.StreamHandler,
) error {

	logger := rpcLogger(ss.Context(), info.FullMethod)
	logger.Debug("Stream opened")
	return handler(srv, &serverStream{
		ServerStream: ss,
		ctx:          log.CtxWith(ss.Context(), logger),
	})
}

func logClientUnary(
	ctx context.Context,
	method string,
	req, resp any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	logger := rpcLogger(ctx, method)
	logger.Debug("Outgoing RPC", "target", cc.Target())
	return invoker(log.CtxWith(ctx, logger), method, req, resp, cc, opts...)
}

// tracingClientUnary starts a client span tagged with the dialed target.
func tracingClientUnary(
	ctx context.Context,
	method string,
	req, resp any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	tagTarget := func(span opentracing.Span, _ string, _, _ any, _ error) {
		span.SetTag("target", cc.Target())
	}
	return otgrpc.OpenTracingClientInterceptor(
		opentracing.GlobalTracer(),
		otgrpc.SpanDecorator(tagTarget),
	)(ctx, method, req, resp, cc, invoker, opts...)
}

// UnaryClientInterceptor chains retries, metrics, tracing and logging for
// outgoing unary calls. Retries are only attempted for calls that pass
// grpc_retry call options, see RetryProfile.
func UnaryClientInterceptor() grpc.DialOption {
	return grpc.WithChainUnaryInterceptor(
		grpc_retry.UnaryClientInterceptor(),
		grpcprom.UnaryClientInterceptor,
		tracingClientUnary,
		logClientUnary,
	)
}

// StreamClientInterceptor adds metrics and tracing to outgoing streams.
func StreamClientInterceptor() grpc.DialOption {
	return grpc.WithChainStreamInterceptor(
		grpcprom.StreamClientInterceptor,
		otgrpc.OpenTracingStreamClientInterceptor(opentracing.GlobalTracer()),
	)
}

// DefaultMaxConcurrentStreams limits concurrent streams per client connection.
func DefaultMaxConcurrentStreams() grpc.ServerOption {
	return grpc.MaxConcurrentStreams(maxConcurrentStreams)
}

// UnaryServerInterceptor chains metrics, tracing and logging for served unary
// calls. Handlers find their logger with log.FromCtx.
func UnaryServerInterceptor() grpc.ServerOption {
	return grpc.ChainUnaryInterceptor(
		grpcprom.UnaryServerInterceptor,
		otgrpc.OpenTracingServerInterceptor(opentracing.GlobalTracer()),
		logServerUnary,
	)
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor. The health watch is the only stream served.
func StreamServerInterceptor() grpc.ServerOption {
	return grpc.ChainStreamInterceptor(
		grpcprom.StreamServerInterceptor,
		otgrpc.OpenTracingStreamServerInterceptor(opentracing.GlobalTracer()),
		logServerStream,
	)
}

type serverStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (ss *serverStream) Context() context.Context {
	return ss.ctx
}
