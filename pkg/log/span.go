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
	"github.com/opentracing/opentracing-go"
)

// Span mirrors every entry of Logger as a log event on the tracing span.
type Span struct {
	Logger
	Span opentracing.Span
}

func (s Span) Debug(msg string, ctx ...any) {
	s.Logger.Debug(msg, ctx...)
	s.record("debug", msg, ctx)
}

func (s Span) Info(msg string, ctx ...any) {
	s.Logger.Info(msg, ctx...)
	s.record("info", msg, ctx)
}

func (s Span) Error(msg string, ctx ...any) {
	s.Logger.Error(msg, ctx...)
	s.record("error", msg, ctx)
}

// New returns a span logger whose underlying logger has ctx attached.
func (s Span) New(ctx ...any) Logger {
	return Span{Logger: s.Logger.New(ctx...), Span: s.Span}
}

func (s Span) record(level, msg string, ctx []any) {
	if s.Span == nil {
		return
	}
	kv := make([]any, 0, len(ctx)+4)
	kv = append(kv, "level", level, "event", msg)
	s.Span.LogKV(append(kv, ctx...)...)
}
