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
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"dirpx.dev/typemeta"
	"dirpx.dev/typemeta/ident"
)

// Description is the detail view of one identifier.
type Description struct {
	TypeRow `yaml:",inline"`
	GoType  string `json:"go_type" yaml:"go_type"`
}

// RenderText implements TextRenderer.
func (d Description) RenderText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "id       %d\nname     %s\ngo type  %s\nkind     %s\nsize     %d\nops      %s\n",
		d.ID, d.Name, d.GoType, d.Kind, d.Size, d.ops())
	return err
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <id>",
		Short: "Describe the type that owns an identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(rootOpts, args[0], cmd)
		},
	}
}

func runDescribe(opts *RootOptions, arg string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	n, err := strconv.ParseUint(arg, 10, 16)
	if err != nil {
		msg := fmt.Sprintf("invalid identifier %q", arg)
		if werr := f.Error(ErrCodeBadID, msg); werr != nil {
			return werr
		}
		return WrapExitError(ExitCommandError, msg, err)
	}
	id := ident.ID(n)

	typemeta.Preload()
	m, ok := typemeta.Lookup(id)
	if !ok {
		msg := fmt.Sprintf("no type owns identifier %s", id)
		if werr := f.Error(ErrCodeUnknownID, msg); werr != nil {
			return werr
		}
		return NewExitError(ExitFailure, msg)
	}

	runID := ""
	if !id.Reserved() {
		runID = typemeta.RunID()
	}
	return f.Success(runID, Description{
		TypeRow: rowOf(m, m.Origin().String()),
		GoType:  m.Type().String(),
	})
}
