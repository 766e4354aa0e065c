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

// Package env contains the configuration blocks that every sfcgate binary
// shares: service identity, metrics export and tracing.
package env

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	jaeger "github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"

	"github.com/sfcgate/sfcgate/pkg/log"
	"github.com/sfcgate/sfcgate/pkg/private/serrors"
	"github.com/sfcgate/sfcgate/private/config"
)

const (
	// ShutdownGraceInterval is how long a service may take to stop after the
	// shutdown signal before it is torn down forcefully.
	ShutdownGraceInterval = 5 * time.Second

	// HandlerTimeout bounds a single metrics scrape.
	HandlerTimeout = time.Minute
)

var (
	_ config.Config = (*General)(nil)
	_ config.Config = (*Metrics)(nil)
	_ config.Config = (*Tracing)(nil)
)

// General identifies the service instance.
type General struct {
	config.NoDefaulter
	// ID names the instance in metrics and traces.
	ID string `toml:"id,omitempty"`
	// ConfigDir is the base for relative file paths in other blocks.
	ConfigDir string `toml:"config_dir,omitempty"`
}

func (cfg *General) Validate() error {
	if cfg.ID == "" {
		return serrors.New("general.id is required")
	}
	if cfg.ConfigDir == "" {
		return nil
	}
	info, err := os.Stat(cfg.ConfigDir)
	if err != nil {
		return serrors.Wrap("checking config_dir", err)
	}
	if !info.IsDir() {
		return serrors.New("config_dir is not a directory", "dir", cfg.ConfigDir)
	}
	return nil
}

func (cfg *General) Sample(dst io.Writer, _ config.Path, ctx config.CtxMap) {
	config.WriteString(dst, fmt.Sprintf(generalSample, ctx[config.ID]))
}

func (cfg *General) ConfigName() string { return "general" }

// Metrics configures the prometheus endpoint.
type Metrics struct {
	config.NoDefaulter
	config.NoValidator
	// Prometheus is the listen address of /metrics. Empty disables export.
	Prometheus string `toml:"prometheus,omitempty"`
}

func (cfg *Metrics) Sample(dst io.Writer, _ config.Path, _ config.CtxMap) {
	config.WriteString(dst, metricsSample)
}

func (cfg *Metrics) ConfigName() string { return "metrics" }

// ServePrometheus serves the default registry until ctx is done. It returns
// immediately if no address is configured.
func (cfg *Metrics) ServePrometheus(ctx context.Context) error {
	if cfg.Prometheus == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.InstrumentMetricHandler(
		prometheus.DefaultRegisterer,
		promhttp.HandlerFor(prometheus.DefaultGatherer,
			promhttp.HandlerOpts{Timeout: HandlerTimeout}),
	))
	server := &http.Server{
		Addr:              cfg.Prometheus,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		defer log.HandlePanic()
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownGraceInterval)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()
	log.Info("Exporting prometheus metrics", "addr", cfg.Prometheus)
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return serrors.Wrap("serving prometheus metrics", err, "addr", cfg.Prometheus)
	}
	return nil
}

// Tracing configures the jaeger tracer.
type Tracing struct {
	config.NoValidator
	Enabled bool `toml:"enabled,omitempty"`
	// Debug samples every trace.
	Debug bool `toml:"debug,omitempty"`
	// Agent is the UDP address of the jaeger agent.
	Agent string `toml:"agent,omitempty"`
}

func (cfg *Tracing) InitDefaults() {
	if cfg.Agent != "" {
		return
	}
	cfg.Agent = net.JoinHostPort(jaeger.DefaultUDPSpanServerHost,
		strconv.Itoa(jaeger.DefaultUDPSpanServerPort))
}

func (cfg *Tracing) Sample(dst io.Writer, _ config.Path, _ config.CtxMap) {
	config.WriteString(dst, tracingSample)
}

func (cfg *Tracing) ConfigName() string { return "tracing" }

// NewTracer creates a tracer reporting under the service name id. A disabled
// configuration yields a no-op tracer, so callers need not special-case it.
func (cfg *Tracing) NewTracer(id string) (opentracing.Tracer, io.Closer, error) {
	jc := jaegercfg.Configuration{
		ServiceName: id,
		Disabled:    !cfg.Enabled,
		Reporter:    &jaegercfg.ReporterConfig{LocalAgentHostPort: cfg.Agent},
	}
	if cfg.Debug {
		jc.Sampler = &jaegercfg.SamplerConfig{Type: jaeger.SamplerTypeConst, Param: 1}
	}
	propagator := jaeger.NewBinaryPropagator(nil)
	return jc.NewTracer(
		jaegercfg.Extractor(opentracing.Binary, propagator),
		jaegercfg.Injector(opentracing.Binary, propagator),
	)
}

// LogAppStarted logs the start of a service together with its build.
func LogAppStarted(svc, id string) {
	log.Info("Service started", "service", svc, "id", id, "build", VersionInfo())
}

// LogAppStopped logs the end of a service.
func LogAppStopped(svc, id string) {
	log.Info("Service stopped", "service", svc, "id", id)
}
