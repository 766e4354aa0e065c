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

package config_test

import (
	"bytes"
	"testing"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfcgate/sfcgate/pkg/private/util"
	"github.com/sfcgate/sfcgate/sfc/policy"
	"github.com/sfcgate/sfcgate/sfcgate/config"
)

func TestConfigSample(t *testing.T) {
	var sample bytes.Buffer
	var cfg config.Config
	cfg.Sample(&sample, nil, nil)

	err := toml.NewDecoder(bytes.NewReader(sample.Bytes())).DisallowUnknownFields().Decode(&cfg)
	require.NoError(t, err)
	cfg.InitDefaults()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "sfcgate-1", cfg.General.ID)
	assert.Equal(t, "info", cfg.Logging.Console.Level)
	assert.Empty(t, cfg.Metrics.Prometheus)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Empty(t, cfg.API.Addr)
	assert.Equal(t, config.DefaultPolicyFile, cfg.Policy.File)
	assert.Equal(t, 250*time.Millisecond, cfg.Policy.Debounce.Duration)
	assert.Equal(t, 5*time.Second, cfg.Policy.RetryInterval.Duration)
	assert.Equal(t, 0, cfg.Dispatcher.Workers)
	assert.Equal(t, 1024, cfg.Dispatcher.QueueSize)
}

func TestConfigDefaults(t *testing.T) {
	var cfg config.Config
	cfg.InitDefaults()
	assert.Equal(t, 250*time.Millisecond, cfg.Policy.Debounce.Duration)
	assert.Equal(t, 5*time.Second, cfg.Policy.RetryInterval.Duration)
	assert.Equal(t, 1024, cfg.Dispatcher.QueueSize)
}

func TestConfigValidate(t *testing.T) {
	valid := func() config.Config {
		var cfg config.Config
		cfg.General.ID = "sfcgate-1"
		cfg.Policy.File = "policy.json"
		cfg.InitDefaults()
		return cfg
	}
	testCases := map[string]struct {
		modify    func(cfg *config.Config)
		assertErr assert.ErrorAssertionFunc
	}{
		"valid": {
			modify:    func(cfg *config.Config) {},
			assertErr: assert.NoError,
		},
		"missing id": {
			modify:    func(cfg *config.Config) { cfg.General.ID = "" },
			assertErr: assert.Error,
		},
		"missing policy file": {
			modify:    func(cfg *config.Config) { cfg.Policy.File = "" },
			assertErr: assert.Error,
		},
		"negative debounce": {
			modify:    func(cfg *config.Config) { cfg.Policy.Debounce = util.DurWrap{Duration: -1} },
			assertErr: assert.Error,
		},
		"zero debounce": {
			modify:    func(cfg *config.Config) { cfg.Policy.Debounce = util.DurWrap{} },
			assertErr: assert.NoError,
		},
		"zero retry interval": {
			modify:    func(cfg *config.Config) { cfg.Policy.RetryInterval = util.DurWrap{} },
			assertErr: assert.Error,
		},
		"negative workers": {
			modify:    func(cfg *config.Config) { cfg.Dispatcher.Workers = -1 },
			assertErr: assert.Error,
		},
		"negative queue size": {
			modify:    func(cfg *config.Config) { cfg.Dispatcher.QueueSize = -1 },
			assertErr: assert.Error,
		},
		"config dir is a file": {
			modify: func(cfg *config.Config) {
				cfg.General.ConfigDir = "config_test.go"
			},
			assertErr: assert.Error,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			tc.modify(&cfg)
			tc.assertErr(t, cfg.Validate())
		})
	}
}

func TestPolicyFile(t *testing.T) {
	var cfg config.Config
	cfg.Policy.File = "policy.json"
	assert.Equal(t, "policy.json", cfg.PolicyFile())

	cfg.General.ConfigDir = "/etc/sfcgate"
	assert.Equal(t, "/etc/sfcgate/policy.json", cfg.PolicyFile())

	cfg.Policy.File = "/var/lib/policy.json"
	assert.Equal(t, "/var/lib/policy.json", cfg.PolicyFile())
}

func TestValidHost(t *testing.T) {
	for host, want := range map[string]bool{
		"localhost":   true,
		"127.0.0.1":   true,
		"0.0.0.0":     true,
		"::1":         true,
		"":            false,
		"example.com": false,
		"256.0.0.1":   false,
		"127.0.0.1:1": false,
	} {
		assert.Equal(t, want, config.ValidHost(host), host)
	}
}

func TestListenAddress(t *testing.T) {
	testCases := map[string]struct {
		host      string
		port      uint16
		fallback  policy.Address
		want      string
		assertErr assert.ErrorAssertionFunc
	}{
		"flag wins": {
			host:      "127.0.0.1",
			port:      50051,
			fallback:  policy.Address{Host: "10.0.0.1", Port: 1},
			want:      "127.0.0.1:50051",
			assertErr: assert.NoError,
		},
		"flag ipv6": {
			host:      "::1",
			port:      50051,
			want:      "[::1]:50051",
			assertErr: assert.NoError,
		},
		"invalid flag falls back to policy": {
			host:      "example.com",
			port:      50051,
			fallback:  policy.Address{Host: "localhost", Port: 4000},
			want:      "localhost:4000",
			assertErr: assert.NoError,
		},
		"no flag no policy": {
			assertErr: assert.Error,
		},
		"invalid policy host": {
			fallback:  policy.Address{Host: "gateway.local", Port: 4000},
			assertErr: assert.Error,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := config.ListenAddress(tc.host, tc.port, tc.fallback)
			tc.assertErr(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
