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

// sfcctl is the command line client of the SFC admission gateway.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sfcgate/sfcgate/private/app/command"
)

// errRefused is returned when the gateway refused the request. The refusal is
// already reported on stdout.
var errRefused = errors.New("request refused by policy")

func main() {
	cmd := newRoot(filepath.Base(os.Args[0]))
	if err := cmd.Execute(); err != nil {
		code := exitCode(err)
		if code != 1 {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(code)
	}
}

func newRoot(name string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name,
		Short:         "Client of the SFC admission gateway",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Long: `sfcctl sends SFC requests to the admission gateway and shows its live
policy.

A request refused by the policy exits with code 1, all other errors exit with
code 2.`,
	}
	cmd.AddCommand(
		newCreate(cmd),
		newDelete(cmd),
		newQuery(cmd),
		newPolicy(cmd),
		command.NewVersion(cmd),
		command.NewGendocs(cmd),
	)
	return cmd
}

func exitCode(err error) int {
	if errors.Is(err, errRefused) {
		return 1
	}
	return 2
}
