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

package log_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/pelletier/go-toml/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfcgate/sfcgate/pkg/log"
)

func TestSetup(t *testing.T) {
	tests := map[string]struct {
		cfg       log.Config
		assertErr assert.ErrorAssertionFunc
	}{
		"empty, no error": {
			cfg:       log.Config{},
			assertErr: assert.NoError,
		},
		"json format": {
			cfg:       log.Config{Console: log.ConsoleConfig{Format: "json"}},
			assertErr: assert.NoError,
		},
		"invalid console level": {
			cfg:       log.Config{Console: log.ConsoleConfig{Level: "invalid"}},
			assertErr: assert.Error,
		},
		"invalid format": {
			cfg:       log.Config{Console: log.ConsoleConfig{Format: "xml"}},
			assertErr: assert.Error,
		},
		"invalid stacktrace level": {
			cfg:       log.Config{Console: log.ConsoleConfig{StacktraceLevel: "all"}},
			assertErr: assert.Error,
		},
		"stacktrace on error": {
			cfg:       log.Config{Console: log.ConsoleConfig{StacktraceLevel: "error"}},
			assertErr: assert.NoError,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := log.Setup(test.cfg)
			test.assertErr(t, err)
		})
	}
}

func TestEntriesCounter(t *testing.T) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "entries"},
		[]string{"level"})
	err := log.Setup(
		log.Config{Console: log.ConsoleConfig{Level: "debug"}},
		log.WithEntriesCounter(log.EntriesCounter{
			Debug: counter.WithLabelValues("debug"),
			Info:  counter.WithLabelValues("info"),
			Error: counter.WithLabelValues("error"),
		}),
	)
	require.NoError(t, err)
	defer log.Discard()

	log.Debug("debug")
	log.Info("info")
	log.Info("info")
	log.New("k", "v").Error("error")
	assert.Equal(t, float64(1), testutil.ToFloat64(counter.WithLabelValues("debug")))
	assert.Equal(t, float64(2), testutil.ToFloat64(counter.WithLabelValues("info")))
	assert.Equal(t, float64(1), testutil.ToFloat64(counter.WithLabelValues("error")))
}

func TestFromCtx(t *testing.T) {
	assert.NotNil(t, log.FromCtx(context.Background()))

	ctx, logger := log.WithLabels(context.Background(), "debug_id", log.NewDebugID())
	assert.Equal(t, logger, log.FromCtx(ctx))
}

func TestFromCtxSpan(t *testing.T) {
	span := mocktracer.New().StartSpan("admission")
	ctx := opentracing.ContextWithSpan(context.Background(), span)

	logger := log.FromCtx(ctx)
	require.IsType(t, log.Span{}, logger)
	logger.Info("Policy decision", "verdict", "allow")
	span.Finish()

	logs := span.(*mocktracer.MockSpan).Logs()
	require.Len(t, logs, 1)
	fields := map[string]string{}
	for _, f := range logs[0].Fields {
		fields[f.Key] = f.ValueString
	}
	assert.Equal(t, map[string]string{
		"level": "info", "event": "Policy decision", "verdict": "allow",
	}, fields)
}

func TestConfigSample(t *testing.T) {
	var sample bytes.Buffer
	var cfg log.Config
	cfg.Sample(&sample, nil, nil)

	var decoded struct {
		Console log.ConsoleConfig `toml:"console"`
	}
	err := toml.NewDecoder(bytes.NewReader(sample.Bytes())).DisallowUnknownFields().
		Decode(&decoded)
	require.NoError(t, err)
	assert.Equal(t, log.DefaultConsoleLevel, decoded.Console.Level)
	assert.Equal(t, "human", decoded.Console.Format)
	assert.Equal(t, log.DefaultStacktraceLevel, decoded.Console.StacktraceLevel)
}
