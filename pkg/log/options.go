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

package log

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option customizes the zap logger built by Setup.
type Option func(o *options)

type options struct {
	zap []zap.Option
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o *options) zapOptions() []zap.Option {
	return o.zap
}

// WithEntriesCounter counts every emitted entry per level. Nil counters are
// not incremented.
func WithEntriesCounter(c EntriesCounter) Option {
	return func(o *options) {
		o.zap = append(o.zap, zap.Hooks(c.count))
	}
}

// EntriesCounter holds one counter per log level.
type EntriesCounter struct {
	Debug prometheus.Counter
	Info  prometheus.Counter
	Error prometheus.Counter
}

func (c EntriesCounter) count(e zapcore.Entry) error {
	counters := map[zapcore.Level]prometheus.Counter{
		zapcore.DebugLevel: c.Debug,
		zapcore.InfoLevel:  c.Info,
		zapcore.ErrorLevel: c.Error,
	}
	if counter := counters[e.Level]; counter != nil {
		counter.Inc()
	}
	return nil
}
