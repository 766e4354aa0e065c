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

// Package config contains the configuration of the sfcgate service.
package config

import (
	"io"
	"net"
	"net/netip"
	"path/filepath"
	"strconv"

	"github.com/sfcgate/sfcgate/pkg/log"
	"github.com/sfcgate/sfcgate/pkg/private/serrors"
	"github.com/sfcgate/sfcgate/pkg/private/util"
	"github.com/sfcgate/sfcgate/private/config"
	"github.com/sfcgate/sfcgate/private/env"
	"github.com/sfcgate/sfcgate/sfc/dispatcher"
	"github.com/sfcgate/sfcgate/sfc/policy"
	"github.com/sfcgate/sfcgate/sfc/watcher"
)

// DefaultPolicyFile is the policy file name used by the sample.
const DefaultPolicyFile = "policy.json"

var _ config.Config = (*Config)(nil)

// Config is the sfcgate configuration.
type Config struct {
	General    env.General `toml:"general,omitempty"`
	Logging    log.Config  `toml:"log,omitempty"`
	Metrics    env.Metrics `toml:"metrics,omitempty"`
	Tracing    env.Tracing `toml:"tracing,omitempty"`
	API        API         `toml:"api,omitempty"`
	Policy     Policy      `toml:"policy,omitempty"`
	Dispatcher Dispatcher  `toml:"dispatcher,omitempty"`
}

func (cfg *Config) InitDefaults() {
	config.InitAll(
		&cfg.General,
		&cfg.Logging,
		&cfg.Metrics,
		&cfg.Tracing,
		&cfg.API,
		&cfg.Policy,
		&cfg.Dispatcher,
	)
}

func (cfg *Config) Validate() error {
	return config.ValidateAll(
		&cfg.General,
		&cfg.Logging,
		&cfg.Metrics,
		&cfg.Tracing,
		&cfg.API,
		&cfg.Policy,
		&cfg.Dispatcher,
	)
}

func (cfg *Config) Sample(dst io.Writer, path config.Path, _ config.CtxMap) {
	config.WriteSample(dst, path, config.CtxMap{config.ID: "sfcgate-1"},
		&cfg.General,
		&cfg.Logging,
		&cfg.Metrics,
		&cfg.Tracing,
		&cfg.API,
		&cfg.Policy,
		&cfg.Dispatcher,
	)
}

// PolicyFile returns the policy file path. Relative paths are resolved
// against the config directory.
func (cfg *Config) PolicyFile() string {
	if filepath.IsAbs(cfg.Policy.File) || cfg.General.ConfigDir == "" {
		return cfg.Policy.File
	}
	return filepath.Join(cfg.General.ConfigDir, cfg.Policy.File)
}

// API holds the management API configuration.
type API struct {
	config.NoDefaulter
	config.NoValidator
	// Addr is the address the management API listens on. If empty, the API
	// is not served.
	Addr string `toml:"addr,omitempty"`
}

func (cfg *API) Sample(dst io.Writer, _ config.Path, _ config.CtxMap) {
	config.WriteString(dst, apiSample)
}

func (cfg *API) ConfigName() string {
	return "api"
}

// Policy holds the policy source configuration.
type Policy struct {
	// File is the JSON policy file. (required)
	File string `toml:"file,omitempty"`
	// Debounce is the quiet period after a change before the file is
	// reloaded.
	Debounce util.DurWrap `toml:"debounce,omitempty"`
	// RetryInterval is the wait between attempts to re-establish a failed
	// file watch.
	RetryInterval util.DurWrap `toml:"retry_interval,omitempty"`
}

func (cfg *Policy) InitDefaults() {
	if cfg.Debounce.Duration == 0 {
		cfg.Debounce.Duration = watcher.DefaultDebounce
	}
	if cfg.RetryInterval.Duration == 0 {
		cfg.RetryInterval.Duration = watcher.DefaultRetryInterval
	}
}

func (cfg *Policy) Validate() error {
	if cfg.File == "" {
		return serrors.New("policy file not set")
	}
	if cfg.Debounce.Duration < 0 {
		return serrors.New("negative debounce", "debounce", cfg.Debounce)
	}
	if cfg.RetryInterval.Duration <= 0 {
		return serrors.New("retry interval must be positive",
			"retry_interval", cfg.RetryInterval)
	}
	return nil
}

func (cfg *Policy) Sample(dst io.Writer, _ config.Path, _ config.CtxMap) {
	config.WriteString(dst, policySample)
}

func (cfg *Policy) ConfigName() string {
	return "policy"
}

// Dispatcher holds the request dispatcher configuration.
type Dispatcher struct {
	// Workers is the number of goroutines evaluating requests. Zero means
	// one per CPU.
	Workers int `toml:"workers,omitempty"`
	// QueueSize is the initial capacity of the event queue.
	QueueSize int `toml:"queue_size,omitempty"`
}

func (cfg *Dispatcher) InitDefaults() {
	if cfg.QueueSize == 0 {
		cfg.QueueSize = dispatcher.DefaultQueueSize
	}
}

func (cfg *Dispatcher) Validate() error {
	if cfg.Workers < 0 {
		return serrors.New("negative number of workers", "workers", cfg.Workers)
	}
	if cfg.QueueSize < 0 {
		return serrors.New("negative queue size", "queue_size", cfg.QueueSize)
	}
	return nil
}

func (cfg *Dispatcher) Sample(dst io.Writer, _ config.Path, _ config.CtxMap) {
	config.WriteString(dst, dispatcherSample)
}

func (cfg *Dispatcher) ConfigName() string {
	return "dispatcher"
}

// ValidHost reports whether the gRPC server may listen on host. Only
// "localhost" and IP literals are accepted.
func ValidHost(host string) bool {
	if host == "localhost" {
		return true
	}
	_, err := netip.ParseAddr(host)
	return err == nil
}

// ListenAddress selects the gRPC listen address. The command line host and
// port are used if the host is valid. Otherwise the address of the policy is
// used if its host is set and valid.
func ListenAddress(host string, port uint16, fallback policy.Address) (string, error) {
	if ValidHost(host) {
		return net.JoinHostPort(host, strconv.Itoa(int(port))), nil
	}
	if fallback.Host == "" {
		return "", serrors.New("no valid listen address, use --host and --port",
			"host", host)
	}
	if !ValidHost(fallback.Host) {
		return "", serrors.New("invalid listen address in policy", "host", fallback.Host)
	}
	return net.JoinHostPort(fallback.Host, strconv.Itoa(int(fallback.Port))), nil
}
