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

// Package log is the logging facade of sfcgate. It wraps a zap logger behind
// a small key/value interface.
//
// Loggers are created with New or retrieved from a context with FromCtx. The
// root logger is configured once with Setup; until then it discards
// everything.
package log

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sfcgate/sfcgate/private/config"
)

const (
	// DefaultConsoleLevel is the default log level for the console.
	DefaultConsoleLevel = "info"
	// DefaultStacktraceLevel is the default log level for which stack traces are included.
	DefaultStacktraceLevel = "none"
)

// Config is the configuration for the logger.
type Config struct {
	config.NoValidator
	// Console is the configuration for the console logging.
	Console ConsoleConfig `toml:"console,omitempty"`
}

// InitDefaults populates unset fields in cfg to their default values (if they
// have one).
func (c *Config) InitDefaults() {
	c.Console.InitDefaults()
}

// Sample writes the sample configuration to the dst writer.
func (c *Config) Sample(dst io.Writer, path config.Path, ctx config.CtxMap) {
	config.WriteSample(dst, path, ctx, &c.Console)
}

// ConfigName returns the name of the logging configuration block.
func (c *Config) ConfigName() string {
	return "log"
}

// ConsoleConfig is the config for the console logger.
type ConsoleConfig struct {
	// Level of console logging (debug|info|error). Defaults to info.
	Level string `toml:"level,omitempty"`
	// Format of the console logging (human|json). Defaults to human.
	Format string `toml:"format,omitempty"`
	// StacktraceLevel sets from which level stacktraces are included
	// (debug|info|error|none). Defaults to none.
	StacktraceLevel string `toml:"stacktrace_level,omitempty"`
	// DisableCaller stops annotating logs with the calling function's file
	// name and line number.
	DisableCaller bool `toml:"disable_caller,omitempty"`
}

// InitDefaults populates unset fields in cfg to their default values (if they
// have one).
func (c *ConsoleConfig) InitDefaults() {
	if c.Level == "" {
		c.Level = DefaultConsoleLevel
	}
	if c.Format == "" {
		c.Format = "human"
	}
	if c.StacktraceLevel == "" {
		c.StacktraceLevel = DefaultStacktraceLevel
	}
}

// Sample writes the sample configuration to the dst writer.
func (c *ConsoleConfig) Sample(dst io.Writer, _ config.Path, _ config.CtxMap) {
	config.WriteString(dst, loggingConsoleSample)
}

// ConfigName returns the name of the console configuration block.
func (c *ConsoleConfig) ConfigName() string {
	return "console"
}

var (
	// ConsoleLevel allows interacting with the logging level at runtime.
	// It is initialized after a successful call to Setup.
	ConsoleLevel zap.AtomicLevel

	zapLogger = zap.NewNop()
)

// Setup configures the logging library with the given config.
func Setup(cfg Config, opts ...Option) error {
	o := applyOptions(opts)
	cfg.InitDefaults()
	zCfg, stOpts, err := zapConfig(cfg.Console)
	if err != nil {
		return err
	}
	logger, err := zCfg.Build(append(o.zapOptions(), stOpts...)...)
	if err != nil {
		return err
	}
	ConsoleLevel = zCfg.Level
	zapLogger = logger
	zap.ReplaceGlobals(logger)
	return nil
}

func zapConfig(cfg ConsoleConfig) (zap.Config, []zap.Option, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(cfg.Level)); err != nil {
		return zap.Config{}, nil, fmt.Errorf("unable to parse log.console.level %q: %w",
			cfg.Level, err)
	}
	encoding := "console"
	switch strings.ToLower(cfg.Format) {
	case "human":
	case "json":
		encoding = "json"
	default:
		return zap.Config{}, nil, fmt.Errorf("unsupported log.console.format %q", cfg.Format)
	}
	zCfg := zap.NewProductionConfig()
	zCfg.Level = zap.NewAtomicLevelAt(lvl)
	zCfg.Encoding = encoding
	zCfg.DisableCaller = cfg.DisableCaller
	zCfg.Sampling = nil
	zCfg.DisableStacktrace = true
	zCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zCfg.OutputPaths = []string{"stderr"}
	zCfg.ErrorOutputPaths = []string{"stderr"}
	if cfg.StacktraceLevel == "none" || cfg.StacktraceLevel == "" {
		return zCfg, nil, nil
	}
	var stLvl zapcore.Level
	if err := stLvl.UnmarshalText([]byte(cfg.StacktraceLevel)); err != nil {
		return zap.Config{}, nil, fmt.Errorf("unable to parse log.console.stacktrace_level %q: %w",
			cfg.StacktraceLevel, err)
	}
	return zCfg, []zap.Option{zap.AddStacktrace(stLvl)}, nil
}

// HandlePanic catches panics and logs them.
func HandlePanic() {
	if msg := recover(); msg != nil {
		zapLogger.Error("Panic", zap.Any("msg", msg), zap.String("stack", string(debug.Stack())))
		zapLogger.Error("=====================> Service panicked!")
		Flush()
		os.Exit(255)
	}
}

// Flush writes the logs to the underlying buffer.
func Flush() {
	_ = zapLogger.Sync()
}
