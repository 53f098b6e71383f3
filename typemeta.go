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
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/google/uuid"

	"dirpx.dev/typemeta/apis"
	"dirpx.dev/typemeta/ident"
	"dirpx.dev/typemeta/numeric"
	"dirpx.dev/typemeta/ops"
	"dirpx.dev/typemeta/registry"
	"dirpx.dev/typemeta/reserved"
)

// ID is the process-unique identifier of a type.
type ID = ident.ID

// Markers and hooks recognised when building operation tables.
type (
	NoCopy    = ops.NoCopy
	NoDefault = ops.NoDefault
	Releaser  = ops.Releaser
)

var (
	// ErrEmptyName is returned when a registration carries no name.
	ErrEmptyName = errors.New("typemeta: empty name provided")
	// ErrConflictingRegistration indicates an attempt to re-register a type
	// with a different name or different capabilities.
	ErrConflictingRegistration = errors.New("typemeta: conflicting type registration")
	// ErrAlreadyRegistered is returned by Reserve when the type already
	// received a dynamic identifier.
	ErrAlreadyRegistered = errors.New("typemeta: type already has a record")
	// ErrReservedType is returned when registering a built-in reserved type.
	ErrReservedType = errors.New("typemeta: type is bound to a built-in reserved identifier")
	// ErrTrivialType is returned when capability flags are given for a
	// trivial kind, whose operations are always allowed.
	ErrTrivialType = errors.New("typemeta: capability flags do not apply to trivial kinds")
)

var (
	// records holds every operation table of the process. It is never reset.
	records = registry.New()
	// ids issues dynamic identifiers.
	ids = ident.NewAllocator(ident.FirstDynamic)
	// runID labels diagnostic output of this process.
	runID = sync.OnceValue(uuid.NewString)
)

// request carries registration input into the one-time build of a type.
type request struct {
	name  string
	caps  apis.Capabilities
	claim bool
	id    ident.ID
}

// Make returns the handle of T, building its operation table on first use.
// Concurrent first calls for the same T block until one of them has built
// the record and then all observe it.
//
// Make panics if the identifier space is exhausted; see ident.ErrExhausted.
func Make[T any]() Meta {
	rec, _ := ensure[T](request{})
	return Meta{rec: rec}
}

// Matches reports whether m is the handle of T. It never builds a record.
func Matches[T any](m Meta) bool {
	return m.rec != nil && m.rec.Type() == reflect.TypeFor[T]()
}

// IDOf returns the identifier of T. Built-in reserved types are answered
// from constants without touching the registry.
func IDOf[T any]() ID {
	if id, _, ok := reserved.Lookup[T](); ok {
		return id
	}
	return Make[T]().ID()
}

// NameOf returns the display name of T.
func NameOf[T any]() string {
	if _, name, ok := reserved.Lookup[T](); ok {
		return name
	}
	return Make[T]().Name()
}

// ItemSizeOf returns the in-memory size of one T.
func ItemSizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// RegisterOption adjusts a dynamic registration.
type RegisterOption func(*apis.Capabilities)

// WithoutCopy marks the type as not copy-assignable. Trivial kinds such as
// numbers and pointers reject it with ErrTrivialType.
func WithoutCopy() RegisterOption {
	return func(c *apis.Capabilities) { c.NoCopy = true }
}

// WithoutDefault marks the type as not default-constructible. Trivial kinds
// reject it with ErrTrivialType.
func WithoutDefault() RegisterOption {
	return func(c *apis.Capabilities) { c.NoDefault = true }
}

// Register gives T an explicit display name and capability flags. It is
// meant for package init, before T is used anywhere else: once T has a
// record, a registration that disagrees with it fails with
// ErrConflictingRegistration. Repeating an identical registration is a no-op.
func Register[T any](name string, opts ...RegisterOption) error {
	if name == "" {
		return ErrEmptyName
	}
	if id, builtin, ok := reserved.Lookup[T](); ok {
		return fmt.Errorf("%w: %s (id %s)", ErrReservedType, builtin, id)
	}

	var flags apis.Capabilities
	for _, opt := range opts {
		opt(&flags)
	}
	if t := reflect.TypeFor[T](); flags != (apis.Capabilities{}) && ops.Trivial(t.Kind()) {
		return fmt.Errorf("%w: %s", ErrTrivialType, t)
	}
	rec, fresh := ensure[T](request{name: name, caps: flags})
	if fresh {
		return nil
	}
	if rec.Name() == name && rec.Capabilities() == capabilities[T](rec.Type(), flags) {
		return nil
	}

	Logger().Warn("typemeta: conflicting registration",
		"type", rec.Type().String(), "id", rec.ID(), "have", rec.Name(), "want", name)
	return fmt.Errorf("%w: %s is already registered as %q", ErrConflictingRegistration, rec.Type(), rec.Name())
}

// Reserve binds T to an open slot of the reserved block, such as
// ident.Tensor. Like Register it belongs in package init: if T was already
// used and received a dynamic identifier, Reserve fails with
// ErrAlreadyRegistered and the slot stays open.
func Reserve[T any](id ID, name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if have, builtin, ok := reserved.Lookup[T](); ok {
		return fmt.Errorf("%w: %s (id %s)", ErrReservedType, builtin, have)
	}
	t := reflect.TypeFor[T]()
	if err := reserved.Claim(id, t); err != nil {
		return err
	}

	rec, fresh := ensure[T](request{name: name, claim: true, id: id})
	switch {
	case fresh:
		return nil
	case rec.Origin() == apis.OriginClaimed && rec.ID() == id:
		if rec.Name() == name {
			return nil
		}
		return fmt.Errorf("%w: %s is already reserved as %q", ErrConflictingRegistration, t, rec.Name())
	}
	reserved.Release(id, t)
	return fmt.Errorf("%w: %s has id %s", ErrAlreadyRegistered, rec.Name(), rec.ID())
}

// Lookup returns the handle that owns id in this run, if any type has it.
func Lookup(id ID) (Meta, bool) {
	rec, ok := records.LookupID(id)
	if !ok {
		return Meta{}, false
	}
	return Meta{rec: rec}, true
}

// Entries returns the handles of every type built so far, ordered by id.
func Entries() []Meta {
	recs := records.Records()
	out := make([]Meta, len(recs))
	for i, rec := range recs {
		out[i] = Meta{rec: rec}
	}
	return out
}

// Count returns the number of types built so far.
func Count() int {
	return records.Count()
}

// RunID returns a random identifier for this process run. Identifiers are
// only comparable between dumps that carry the same run id.
func RunID() string {
	return runID()
}

// builtins lists the constructors of every built-in reserved type.
var builtins = [...]func() Meta{
	Make[uint8],
	Make[int8],
	Make[int16],
	Make[int32],
	Make[int64],
	Make[numeric.Half],
	Make[float32],
	Make[float64],
	Make[numeric.ComplexHalf],
	Make[complex64],
	Make[complex128],
	Make[string],
	Make[bool],
	Make[uint16],
	Make[uint32],
	Make[*sync.Mutex],
	Make[*atomic.Bool],
	Make[[]int32],
	Make[[]int64],
	Make[[]uint64],
	Make[*bool],
	Make[*uint8],
	Make[*int32],
	Make[int],
	Make[[]int],
	Make[reserved.HighestPreallocated],
}

// Preload builds the records of all built-in reserved types. Call it during
// startup to keep first-use construction off hot paths.
func Preload() []Meta {
	out := make([]Meta, len(builtins))
	for i, mk := range builtins {
		out[i] = mk()
	}
	return out
}

func ensure[T any](req request) (*apis.Record, bool) {
	t := reflect.TypeFor[T]()
	if rec, ok := records.Lookup(t); ok {
		return rec, false
	}
	rec, fresh, err := records.Ensure(t, func() *apis.Record {
		return build[T](t, req)
	})
	if err != nil {
		panic(err)
	}
	return rec, fresh
}

// build assembles the record of T. It runs once per type.
func build[T any](t reflect.Type, req request) *apis.Record {
	s := st.Load()
	var zero T
	spec := apis.RecordSpec{
		Type:         t,
		Size:         unsafe.Sizeof(zero),
		Capabilities: capabilities[T](t, req.caps),
	}

	if id, name, ok := reserved.Lookup[T](); ok {
		spec.ID, spec.Name, spec.Origin = id, name, apis.OriginBuiltin
	} else if req.claim {
		spec.ID, spec.Name, spec.Origin = req.id, req.name, apis.OriginClaimed
	} else {
		id, err := ids.Next()
		if err != nil {
			s.logger().Error("typemeta: cannot allocate type identifier", "type", t.String(), "error", err)
			panic(err)
		}
		spec.ID, spec.Origin = id, apis.OriginDynamic
		spec.Name = req.name
		if spec.Name == "" {
			spec.Name = fallbackName(s, t)
		}
	}
	spec.Construct, spec.Copy, spec.Destroy = ops.For[T](spec.Name, spec.Capabilities)

	rec := apis.NewRecord(spec)
	s.logger().Debug("typemeta: built record",
		"id", rec.ID(), "name", rec.Name(), "size", rec.Size(), "origin", rec.Origin().String())
	return rec
}

// capabilities returns what T's record stores: nothing for trivial kinds,
// detected markers plus registration flags otherwise.
func capabilities[T any](t reflect.Type, flags apis.Capabilities) apis.Capabilities {
	if ops.Trivial(t.Kind()) {
		return apis.Capabilities{}
	}
	return ops.Detect[T]().Merge(flags)
}

func fallbackName(s *state, t reflect.Type) string {
	if name := s.res.ResolveType(t, s.cfg); name != "" {
		return name
	}
	return t.String()
}
