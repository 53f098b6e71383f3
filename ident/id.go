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

package ident

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrNotSerializable is returned when an ID is handed to an encoder.
// Identifiers are only meaningful inside the process run that issued them.
var ErrNotSerializable = errors.New("typemeta(ident): type identifiers are run-specific and must not be serialized")

// ID is a small process-unique tag for a distinct Go type.
//
// Values below FirstDynamic are fixed constants; everything else is issued by
// an Allocator on first use and differs between runs.
type ID uint16

// Reserved identifiers. Uint8..Complex128 follow the tensor element type
// enumeration one-to-one and must not be reordered.
const (
	Uint8 ID = iota
	Int8
	Int16
	Int32
	Int64
	Half
	Float32
	Float64
	ComplexHalf
	Complex64
	Complex128
	// Uninitialized marks the zero handle and is never bound to a real type.
	Uninitialized
	// Tensor is left open for the package that defines the tensor type.
	Tensor
	String
	Bool
	Uint16
	Uint32
	MutexPtr
	AtomicBoolPtr
	Int32Slice
	Int64Slice
	Uint64Slice
	BoolPtr
	Uint8Ptr
	Int32Ptr
	Int
	IntSlice
	// HighestReserved is bound to an empty marker type and bounds the fixed set.
	HighestReserved
)

// FirstDynamic is the first identifier an Allocator issues.
const FirstDynamic = HighestReserved + 1

// String returns the decimal value of id.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Reserved reports whether id belongs to the fixed block.
func (id ID) Reserved() bool {
	return id <= HighestReserved
}

// Scalar reports whether id is one of the tensor element type ids.
func (id ID) Scalar() bool {
	return id < Uninitialized
}

// Less orders identifiers numerically.
func (id ID) Less(other ID) bool {
	return id < other
}

// Compare returns -1, 0 or +1 following numeric order.
// Suitable for slices.SortFunc and ordered containers.
func Compare(a, b ID) int {
	return cmp.Compare(a, b)
}

// LogValue renders id as a plain number in structured logs.
func (id ID) LogValue() slog.Value {
	return slog.Uint64Value(uint64(id))
}

var (
	_ fmt.Stringer          = ID(0)
	_ slog.LogValuer        = ID(0)
	_ msgpack.CustomEncoder = ID(0)
	_ msgpack.CustomDecoder = (*ID)(nil)
)

// EncodeMsgpack always fails: identifiers never leave the process.
func (id ID) EncodeMsgpack(*msgpack.Encoder) error {
	return fmt.Errorf("%w (id %d)", ErrNotSerializable, uint16(id))
}

// DecodeMsgpack always fails; see EncodeMsgpack.
func (id *ID) DecodeMsgpack(*msgpack.Decoder) error {
	return ErrNotSerializable
}
