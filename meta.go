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

package typemeta

import (
	"log/slog"
	"reflect"

	"dirpx.dev/typemeta/apis"
	"dirpx.dev/typemeta/ident"
	"dirpx.dev/typemeta/reserved"
)

// sentinel backs the zero Meta. It is never stored in the registry.
var sentinel = apis.NewRecord(apis.RecordSpec{
	ID:     ident.Uninitialized,
	Name:   reserved.SentinelName,
	Origin: apis.OriginSentinel,
})

// Meta is a handle to the operation table of one type.
//
// The zero Meta stands for "no type": size 0, no element functions, id
// ident.Uninitialized. Meta values are comparable with ==, which compares
// record identity; two handles are equal exactly when they describe the
// same type.
//
// Meta never allocates or frees element storage. It only tells the caller
// how to construct, copy and destroy elements living in memory the caller
// owns.
type Meta struct {
	rec *apis.Record
}

func (m Meta) record() *apis.Record {
	if m.rec == nil {
		return sentinel
	}
	return m.rec
}

// ID returns the identifier of the type.
func (m Meta) ID() ID { return m.record().ID() }

// ItemSize returns the size in bytes of one element.
func (m Meta) ItemSize() uintptr { return m.record().Size() }

// Name returns the display name of the type.
func (m Meta) Name() string { return m.record().Name() }

// Constructor returns the element constructor, or nil when zero-filling
// memory is enough.
func (m Meta) Constructor() apis.Constructor { return m.record().Constructor() }

// Copier returns the element copier, or nil when a bitwise copy is enough.
func (m Meta) Copier() apis.Copier { return m.record().Copier() }

// Destructor returns the element destructor, or nil when there is nothing
// to release. Callers must treat nil as "skip".
func (m Meta) Destructor() apis.Destructor { return m.record().Destructor() }

// Capabilities returns the operations the type refuses.
func (m Meta) Capabilities() apis.Capabilities { return m.record().Capabilities() }

// Origin tells how the identifier was obtained.
func (m Meta) Origin() apis.Origin { return m.record().Origin() }

// Type returns the Go type, or nil for the zero Meta.
func (m Meta) Type() reflect.Type { return m.record().Type() }

// IsZero reports whether m is the uninitialized handle.
func (m Meta) IsZero() bool { return m.rec == nil }

// Equal reports whether m and o describe the same type.
func (m Meta) Equal(o Meta) bool { return m.rec == o.rec }

// Less orders handles by identifier.
func (m Meta) Less(o Meta) bool { return m.ID() < o.ID() }

// Compare orders handles by identifier, for slices.SortFunc.
func Compare(a, b Meta) int { return ident.Compare(a.ID(), b.ID()) }

// String returns the display name.
func (m Meta) String() string { return m.Name() }

// LogValue groups id, name and size in structured logs.
func (m Meta) LogValue() slog.Value {
	r := m.record()
	return slog.GroupValue(
		slog.Any("id", r.ID()),
		slog.String("name", r.Name()),
		slog.Uint64("size", uint64(r.Size())),
	)
}
