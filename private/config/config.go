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

// Package config defines how service configuration structs are initialized,
// validated and documented.
//
// A configuration struct implements Config. InitDefaults fills in every field
// left at its zero value, Validate checks the result, and Sample writes a
// commented TOML block that decodes back into the defaults. Nested structs
// that implement TableSampler get their own [table] in the sample. Sample may
// panic on write errors.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/sfcgate/sfcgate/pkg/private/serrors"
)

// ID is the sample context key holding the service identifier.
const ID = "id"

// Config is implemented by every configuration struct.
type Config interface {
	Sampler
	Validator
	Defaulter
}

type Validator interface {
	// Validate checks the struct and all nested structs.
	Validate() error
}

type Defaulter interface {
	// InitDefaults sets every unset field to its default.
	InitDefaults()
}

type Sampler interface {
	// Sample writes a commented TOML sample to dst.
	Sample(dst io.Writer, path Path, ctx CtxMap)
}

// TableSampler is a Sampler that lives in its own TOML table.
type TableSampler interface {
	Sampler
	// ConfigName is the table name of the block.
	ConfigName() string
}

// Path is the dotted table header of a config block.
type Path []string

// Extend returns a copy of p with s appended.
func (p Path) Extend(s string) Path {
	return append(append(make(Path, 0, len(p)+1), p...), s)
}

// NoValidator can be embedded by structs without constraints.
type NoValidator struct{}

func (NoValidator) Validate() error { return nil }

// NoDefaulter can be embedded by structs without defaults.
type NoDefaulter struct{}

func (NoDefaulter) InitDefaults() {}

// InitAll calls InitDefaults on each argument.
func InitAll(defaulters ...Defaulter) {
	for _, d := range defaulters {
		d.InitDefaults()
	}
}

// ValidateAll validates each argument and stops at the first failure.
func ValidateAll(validators ...Validator) error {
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return serrors.Wrap("invalid configuration", err, "block", fmt.Sprintf("%T", v))
		}
	}
	return nil
}

// Decode decodes TOML into cfg. Unknown keys are an error.
func Decode(raw []byte, cfg any) error {
	dec := toml.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// LoadFile reads and decodes a TOML file into cfg.
func LoadFile(file string, cfg any) error {
	raw, err := os.ReadFile(file)
	if err != nil {
		return serrors.Wrap("reading config", err, "file", file)
	}
	if err := Decode(raw, cfg); err != nil {
		return serrors.Wrap("decoding config", err, "file", file)
	}
	return nil
}
