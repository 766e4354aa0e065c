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
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/opentracing/opentracing-go"

	"github.com/sfcgate/sfcgate/pkg/log"
	"github.com/sfcgate/sfcgate/private/env"
)

const logLevelUsage = "Console logging level (debug|info|error). Logging is off if unset."

// setupLog configures console logging. An empty level discards all logs.
func setupLog(level string) error {
	if level == "" {
		log.Discard()
		return nil
	}
	return log.Setup(log.Config{Console: log.ConsoleConfig{Level: level}})
}

// setupTracer sets the global tracer if an agent is configured. The returned
// function flushes the spans.
func setupTracer(name, agent string) (func(), error) {
	if agent == "" {
		return func() {}, nil
	}
	cfg := env.Tracing{Enabled: true, Debug: true, Agent: agent}
	tracer, closer, err := cfg.NewTracer(name)
	if err != nil {
		return nil, err
	}
	opentracing.SetGlobalTracer(tracer)
	return func() { closer.Close() }, nil
}

// colored reports whether output to w should be colored.
func colored(w io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// palette holds the printers of the human readable output.
type palette struct {
	key  *color.Color
	good *color.Color
	bad  *color.Color
}

func newPalette(enabled bool) palette {
	if !enabled {
		noColor := color.New()
		noColor.DisableColor()
		return palette{key: noColor, good: noColor, bad: noColor}
	}
	p := palette{
		key:  color.New(color.FgHiCyan),
		good: color.New(color.FgGreen),
		bad:  color.New(color.FgRed),
	}
	p.key.EnableColor()
	p.good.EnableColor()
	p.bad.EnableColor()
	return p
}
