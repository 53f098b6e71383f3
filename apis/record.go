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

package apis

import (
	"reflect"

	"dirpx.dev/typemeta/ident"
)

// RecordSpec is the input to NewRecord.
type RecordSpec struct {
	Type         reflect.Type
	ID           ident.ID
	Name         string
	Size         uintptr
	Construct    Constructor
	Copy         Copier
	Destroy      Destructor
	Capabilities Capabilities
	Origin       Origin
}

// Record is the immutable operation table of one type. Exactly one Record
// exists per type for the life of the process; it is never modified after
// NewRecord returns and never freed.
type Record struct {
	typ    reflect.Type
	id     ident.ID
	name   string
	size   uintptr
	ctor   Constructor
	copy   Copier
	dtor   Destructor
	caps   Capabilities
	origin Origin
}

// NewRecord freezes spec into a Record.
func NewRecord(spec RecordSpec) *Record {
	return &Record{
		typ:    spec.Type,
		id:     spec.ID,
		name:   spec.Name,
		size:   spec.Size,
		ctor:   spec.Construct,
		copy:   spec.Copy,
		dtor:   spec.Destroy,
		caps:   spec.Capabilities,
		origin: spec.Origin,
	}
}

// Accessors never fail and are safe for concurrent use.

func (r *Record) Type() reflect.Type         { return r.typ }
func (r *Record) ID() ident.ID               { return r.id }
func (r *Record) Name() string               { return r.name }
func (r *Record) Size() uintptr              { return r.size }
func (r *Record) Constructor() Constructor   { return r.ctor }
func (r *Record) Copier() Copier             { return r.copy }
func (r *Record) Destructor() Destructor     { return r.dtor }
func (r *Record) Capabilities() Capabilities { return r.caps }
func (r *Record) Origin() Origin             { return r.origin }

// Trivial reports whether the record carries no element functions at all.
func (r *Record) Trivial() bool {
	return r.ctor == nil && r.copy == nil && r.dtor == nil
}
