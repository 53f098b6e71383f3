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

// Package typemeta is a process-wide type identification and type-erasure
// registry.
//
// For any Go type T it provides two things:
//
//   - a small numeric identifier (ID) that is unique among the types of the
//     running process and stable for its lifetime, and
//
//   - an immutable operation table describing how to construct, copy and
//     destroy elements of T in memory the caller owns, together with the
//     element size and a display name.
//
// Generic containers (tensor or blob storage, arenas, columnar buffers) hold
// a Meta instead of a static type and drive element memory through it:
//
//	m := typemeta.Make[Sample]()
//	buf := make([]Sample, n)
//	if ctor := m.Constructor(); ctor != nil {
//		if err := ctor(unsafe.Pointer(unsafe.SliceData(buf)), n); err != nil {
//			return err
//		}
//	}
//
// # Identifiers
//
// The identifiers 0..27 form a fixed block. 0..10 follow the tensor element
// type enumeration in order (uint8, int8, int16, int32, int64, Half,
// float32, float64, ComplexHalf, complex64, complex128), 11 is reserved for
// the uninitialized handle, 12 is left open for the tensor type, and the
// rest bind common Go types up to 27, which is bound to
// reserved.HighestPreallocated. These bindings are constants resolved by a
// type switch (see package reserved) and cost nothing at run time.
//
// Every other type receives the next value of a global atomic counter the
// first time it is used. Such identifiers differ between runs and must
// never be persisted or sent to another process; ident.ID refuses msgpack
// encoding for that reason. Diagnostic output carries RunID so dumps from
// different runs are not confused.
//
// Running out of identifiers is fatal: Make logs the failure and panics
// with an error wrapping ident.ErrExhausted rather than reusing a value.
//
// # Operation tables
//
// Fundamental kinds (booleans, integers, floats, complex numbers) and
// pointers get a trivial table with nil element functions; callers
// zero-fill, bitwise-copy and skip destruction. Every other type gets three
// functions:
//
//   - construct zero-initialises n elements,
//   - copy assigns n elements in index order,
//   - destroy calls Release on elements implementing Releaser, in index
//     order, and then zeroes them.
//
// A type may refuse construction or copying by embedding NoDefault or
// NoCopy, or through the WithoutDefault and WithoutCopy registration
// options. A type that holds a lock by value, directly or in a struct field
// or array element, refuses copies the way vet's copylocks check does.
// Refused operations still have functions in the table; invoking them
// returns *ops.IllegalOperationError naming the type.
//
// # Registration
//
// Types work without registration: their display name then comes from the
// resolver chain, which asks a zero value of the type (apis.Namer) and otherwise
// renders the type structurally ("[]*model.User"). Register assigns an
// explicit name and capability flags; Reserve claims an open slot of the
// fixed block. Both belong in package init, before the type is used,
// because a record never changes once built.
//
// # Concurrency model
//
// Make, IDOf, Register and Reserve are safe for concurrent use. Each type
// has a once-gate: exactly one goroutine builds the record while others
// wait, and all of them observe the same fully built record. After that,
// Make is a lock-free map load, and every Meta accessor is a plain read of
// immutable data.
//
// The resolver configuration (Config, SetConfig, SetResolver, SetBuilder,
// SetLogger) lives in an immutable snapshot published through an atomic
// pointer. Writers take a short build mutex and swap in a new snapshot;
// changes only affect records built afterwards.
package typemeta
