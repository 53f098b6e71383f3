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
	"dirpx.dev/typemeta/apis"
	"dirpx.dev/typemeta/reserved"
)

// NewReservedCommand creates the reserved command.
func NewReservedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reserved",
		Short: "Print the reserved identifier block",
		Long: `Print every slot of the reserved identifier block: the built-in types,
the uninitialized sentinel and the open slots.

The reserved block is identical in every run, so the listing carries no
run id.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReserved(rootOpts, cmd)
		},
	}
}

func runReserved(opts *RootOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	typemeta.Preload()
	return f.Success("", reservedRows())
}

func reservedRows() Rows {
	slots := reserved.Slots()
	rows := make(Rows, 0, len(slots))
	for _, s := range slots {
		switch s.Kind {
		case reserved.SlotSentinel:
			rows = append(rows, rowOf(typemeta.Meta{}, s.Kind.String()))
		case reserved.SlotOpen:
			if m, ok := typemeta.Lookup(s.ID); ok {
				rows = append(rows, rowOf(m, apis.OriginClaimed.String()))
				continue
			}
			rows = append(rows, TypeRow{ID: s.ID, Kind: s.Kind.String()})
		default:
			m, ok := typemeta.Lookup(s.ID)
			if !ok {
				// Preload builds every builtin; a miss means the table and the
				// registry disagree.
				panic("typemeta: builtin slot " + s.ID.String() + " has no record")
			}
			rows = append(rows, rowOf(m, s.Kind.String()))
		}
	}
	return rows
}
