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
	"context"
	"errors"
	"net"
	"net/http"

	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/sfcgate/sfcgate/pkg/log"
	"github.com/sfcgate/sfcgate/pkg/private/processmetrics"
	"github.com/sfcgate/sfcgate/pkg/private/serrors"
	"github.com/sfcgate/sfcgate/pkg/proto/sfc"
	"github.com/sfcgate/sfcgate/private/app"
	"github.com/sfcgate/sfcgate/private/app/launcher"
	"github.com/sfcgate/sfcgate/sfc/dispatcher"
	sfcgrpc "github.com/sfcgate/sfcgate/sfc/grpc"
	"github.com/sfcgate/sfcgate/sfc/mgmtapi"
	"github.com/sfcgate/sfcgate/sfc/policy"
	"github.com/sfcgate/sfcgate/sfc/watcher"
	"github.com/sfcgate/sfcgate/sfcgate"
	"github.com/sfcgate/sfcgate/sfcgate/config"
)

var (
	globalCfg config.Config
	flagHost  string
	flagPort  uint16
)

func main() {
	application := launcher.Application{
		TOMLConfig: &globalCfg,
		ShortName:  "SFC Admission Gateway",
		Flags: func(flags *pflag.FlagSet) {
			flags.StringVar(&flagHost, "host", "",
				`Host to serve the SFC API on ("localhost" or an IP address).
If valid, host and port take priority over the address in the policy file.`)
			flags.Uint16Var(&flagPort, "port", 0, "Port to serve the SFC API on.")
		},
		Main: realMain,
	}
	application.Run()
}

func realMain(ctx context.Context) error {
	trCloser, err := sfcgate.InitTracer(globalCfg.Tracing, globalCfg.General.ID)
	if err != nil {
		return serrors.Wrap("initializing tracer", err)
	}
	defer trCloser.Close()

	metrics := sfcgate.NewMetrics()
	store := &policy.Store{Metrics: metrics.Policy}
	policyFile := globalCfg.PolicyFile()
	if err := store.ReloadFile(policyFile); err != nil {
		return serrors.Wrap("loading initial policy", err)
	}
	initial := store.Load()
	addr, err := config.ListenAddress(flagHost, flagPort, initial.Address)
	if err != nil {
		return err
	}
	opts, err := sfcgate.ServerOptions(initial.TLS)
	if err != nil {
		return serrors.Wrap("creating gRPC server credentials", err)
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return serrors.Wrap("listening", err, "addr", addr)
	}

	transport := sfcgrpc.NewServer()
	server := grpc.NewServer(opts...)
	sfc.RegisterSfcServiceServer(server, transport)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	promgrpc.Register(server)
	if err := processmetrics.Init(); err != nil {
		log.Info("Process metrics unavailable", "err", err)
	}

	var cleanup app.Cleanup
	g, errCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer log.HandlePanic()
		w := &watcher.Watcher{
			File:          policyFile,
			Reloader:      store,
			Debounce:      globalCfg.Policy.Debounce.Duration,
			RetryInterval: globalCfg.Policy.RetryInterval.Duration,
			Failures:      metrics.WatcherFailures,
		}
		return w.Run(errCtx)
	})

	g.Go(func() error {
		defer log.HandlePanic()
		d := &dispatcher.Dispatcher{
			Transport: transport,
			Policy:    store,
			Workers:   globalCfg.Dispatcher.Workers,
			QueueSize: globalCfg.Dispatcher.QueueSize,
			Metrics:   metrics.Dispatcher,
		}
		return d.Run(errCtx)
	})

	g.Go(func() error {
		defer log.HandlePanic()
		log.Info("Serving SFC API", "addr", listener.Addr(), "tls", initial.TLS.Enabled)
		healthServer.SetServingStatus(sfc.SfcService_ServiceDesc.ServiceName,
			healthpb.HealthCheckResponse_SERVING)
		if err := server.Serve(listener); err != nil {
			return serrors.Wrap("serving SFC API", err)
		}
		return nil
	})
	cleanup.Add(func() error {
		healthServer.Shutdown()
		server.GracefulStop()
		return nil
	})

	if globalCfg.API.Addr != "" {
		api := &mgmtapi.Server{
			Config:     mgmtapi.NewConfigHandler(&globalCfg),
			Info:       mgmtapi.NewInfoHandler(),
			LogLevel:   mgmtapi.NewLogLevelHandler(log.ConsoleLevel),
			PolicyFile: policyFile,
			Policy:     store,
		}
		log.Info("Exposing API", "addr", globalCfg.API.Addr)
		mgmtServer := &http.Server{
			Addr:    globalCfg.API.Addr,
			Handler: api.Handler(),
		}
		cleanup.Add(mgmtServer.Close)
		g.Go(func() error {
			defer log.HandlePanic()
			err := mgmtServer.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return serrors.Wrap("serving management API", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		defer log.HandlePanic()
		return globalCfg.Metrics.ServePrometheus(errCtx)
	})

	g.Go(func() error {
		defer log.HandlePanic()
		<-errCtx.Done()
		return cleanup.Do()
	})

	return g.Wait()
}
