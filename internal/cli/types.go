/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cli

import (
	"github.com/spf13/cobra"

	"dirpx.dev/typemeta"
)

// TypesOptions holds flags for the types command.
type TypesOptions struct {
	Dynamic bool
}

// NewTypesCommand creates the types command.
func NewTypesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TypesOptions{}
	cmd := &cobra.Command{
		Use:   "types",
		Short: "Print every operation table built in this process",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypes(rootOpts, opts, cmd)
		},
	}
	cmd.Flags().BoolVar(&opts.Dynamic, "dynamic", false, "only list types with dynamic identifiers")
	return cmd
}

func runTypes(rootOpts *RootOptions, opts *TypesOptions, cmd *cobra.Command) error {
	f := rootOpts.formatter(cmd)
	typemeta.Preload()

	entries := typemeta.Entries()
	f.VerboseLog("%d records in registry", len(entries))

	rows := make(Rows, 0, len(entries))
	for _, m := range entries {
		if opts.Dynamic && m.ID().Reserved() {
			continue
		}
		rows = append(rows, rowOf(m, m.Origin().String()))
	}
	return f.Success(typemeta.RunID(), rows)
}
