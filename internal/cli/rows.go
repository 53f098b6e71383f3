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

	"dirpx.dev/typemeta"
	"dirpx.dev/typemeta/ident"
)

// TypeRow is one line of a listing.
type TypeRow struct {
	ID        ident.ID `json:"id" yaml:"id"`
	Kind      string   `json:"kind" yaml:"kind"`
	Name      string   `json:"name" yaml:"name"`
	Size      uint64   `json:"size" yaml:"size"`
	Trivial   bool     `json:"trivial" yaml:"trivial"`
	NoCopy    bool     `json:"no_copy,omitempty" yaml:"no_copy,omitempty"`
	NoDefault bool     `json:"no_default,omitempty" yaml:"no_default,omitempty"`
}

func rowOf(m typemeta.Meta, kind string) TypeRow {
	caps := m.Capabilities()
	return TypeRow{
		ID:        m.ID(),
		Kind:      kind,
		Name:      m.Name(),
		Size:      uint64(m.ItemSize()),
		Trivial:   m.Constructor() == nil && m.Copier() == nil && m.Destructor() == nil,
		NoCopy:    caps.NoCopy,
		NoDefault: caps.NoDefault,
	}
}

// ops summarizes which element operations a row supports.
func (r TypeRow) ops() string {
	switch {
	case r.Trivial:
		return "trivial"
	case r.NoCopy && r.NoDefault:
		return "destroy"
	case r.NoCopy:
		return "construct,destroy"
	case r.NoDefault:
		return "copy,destroy"
	}
	return "construct,copy,destroy"
}

// Rows is a listing with a text rendering.
type Rows []TypeRow

// RenderText implements TextRenderer.
func (rs Rows) RenderText(w io.Writer) error {
	t := &table{header: []string{"ID", "KIND", "SIZE", "OPS", "NAME"}}
	for _, r := range rs {
		name, ops, size := r.Name, r.ops(), strconv.FormatUint(r.Size, 10)
		if r.Kind == "open" {
			name, ops, size = "(unclaimed)", "-", "-"
		}
		t.add(strconv.Itoa(int(r.ID)), r.Kind, size, ops, name)
	}
	if err := t.render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d types\n", len(rs))
	return err
}
