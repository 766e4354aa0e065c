// Copyright 2021 Anapaya Systems
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

// Package command contains cobra subcommands shared by the sfcgate binaries.
package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sfcgate/sfcgate/private/config"
	"github.com/sfcgate/sfcgate/private/env"
)

// Pather returns the command path of the parent command. It is used to render
// examples that include the full invocation.
type Pather interface {
	CommandPath() string
}

// StringPather is a static Pather.
type StringPather string

func (s StringPather) CommandPath() string {
	return string(s)
}

// NewSampleConfig creates a command that prints a sample of the given config.
func NewSampleConfig(pather Pather, cfg config.Sampler, ctx config.CtxMap) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Display sample configuration file",
		Example: fmt.Sprintf("  %[1]s config > sfcgate.toml\n  %[1]s config | less",
			pather.CommandPath()),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config.WriteSample(cmd.OutOrStdout(), nil, ctx, cfg)
			return nil
		},
	}
}

// NewVersion creates a command that prints the build information.
func NewVersion(pather Pather) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Show the version information",
		Example: fmt.Sprintf("  %s version", pather.CommandPath()),
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), env.VersionInfo())
		},
	}
}
