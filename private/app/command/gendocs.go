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

package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/sfcgate/sfcgate/pkg/private/serrors"
)

// NewGendocs creates a hidden command that writes the reference of the whole
// command tree, one file per command, as markdown or man pages.
func NewGendocs(pather Pather) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:     "gendocs <directory>",
		Short:   "Generate the command reference",
		Example: fmt.Sprintf("  %s gendocs --format man docs/man", pather.CommandPath()),
		Args:    cobra.ExactArgs(1),
		Hidden:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, dir := cmd.Root(), args[0]
			root.DisableAutoGenTag = true
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return serrors.Wrap("creating directory", err, "dir", dir)
			}
			var err error
			switch format {
			case "markdown":
				err = doc.GenMarkdownTree(root, dir)
			case "man":
				err = doc.GenManTree(root, &doc.GenManHeader{
					Title:   root.Name(),
					Section: "1",
					Source:  "sfcgate",
				}, dir)
			default:
				return serrors.New("unsupported format", "format", format)
			}
			if err != nil {
				return serrors.Wrap("generating documentation", err, "format", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "markdown", "Output format (markdown|man)")
	return cmd
}
