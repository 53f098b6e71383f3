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

// Package reserved binds the fixed block of type identifiers to Go types.
//
// Built-in bindings are resolved by a type switch inside Lookup, so they cost
// nothing at run time and need no synchronization. Slots that the core leaves
// open (the tensor slot) can be claimed once per process by the package that
// defines the corresponding type.
package reserved

import (
	"sync"
	"sync/atomic"

	"dirpx.dev/typemeta/ident"
	"dirpx.dev/typemeta/numeric"
)

// HighestPreallocated is bound to ident.HighestReserved. It carries no data
// and only marks the upper end of the fixed block.
type HighestPreallocated struct{}

// Lookup returns the fixed identifier and display name of T when T is one of
// the built-in reserved types.
func Lookup[T any]() (ident.ID, string, bool) {
	switch any((*T)(nil)).(type) {
	case *uint8:
		return ident.Uint8, "uint8", true
	case *int8:
		return ident.Int8, "int8", true
	case *int16:
		return ident.Int16, "int16", true
	case *int32:
		return ident.Int32, "int32", true
	case *int64:
		return ident.Int64, "int64", true
	case *numeric.Half:
		return ident.Half, "numeric.Half", true
	case *float32:
		return ident.Float32, "float32", true
	case *float64:
		return ident.Float64, "float64", true
	case *numeric.ComplexHalf:
		return ident.ComplexHalf, "numeric.ComplexHalf", true
	case *complex64:
		return ident.Complex64, "complex64", true
	case *complex128:
		return ident.Complex128, "complex128", true
	case *string:
		return ident.String, "string", true
	case *bool:
		return ident.Bool, "bool", true
	case *uint16:
		return ident.Uint16, "uint16", true
	case *uint32:
		return ident.Uint32, "uint32", true
	case **sync.Mutex:
		return ident.MutexPtr, "*sync.Mutex", true
	case **atomic.Bool:
		return ident.AtomicBoolPtr, "*atomic.Bool", true
	case *[]int32:
		return ident.Int32Slice, "[]int32", true
	case *[]int64:
		return ident.Int64Slice, "[]int64", true
	case *[]uint64:
		return ident.Uint64Slice, "[]uint64", true
	case **bool:
		return ident.BoolPtr, "*bool", true
	case **uint8:
		return ident.Uint8Ptr, "*uint8", true
	case **int32:
		return ident.Int32Ptr, "*int32", true
	case *int:
		return ident.Int, "int", true
	case *[]int:
		return ident.IntSlice, "[]int", true
	case *HighestPreallocated:
		return ident.HighestReserved, "reserved.HighestPreallocated", true
	}
	return 0, "", false
}

// SlotKind classifies an identifier of the fixed block.
type SlotKind uint8

const (
	// SlotBuiltin is bound by Lookup.
	SlotBuiltin SlotKind = iota
	// SlotSentinel is the uninitialized marker.
	SlotSentinel
	// SlotOpen may be claimed by exactly one type per process.
	SlotOpen
)

func (k SlotKind) String() string {
	switch k {
	case SlotBuiltin:
		return "builtin"
	case SlotSentinel:
		return "sentinel"
	case SlotOpen:
		return "open"
	}
	return "unknown"
}

// Slot describes one identifier of the fixed block.
type Slot struct {
	ID   ident.ID
	Kind SlotKind
	// Name is the display name of the bound type; empty for open slots.
	Name string
}

var slots = [...]Slot{
	{ident.Uint8, SlotBuiltin, "uint8"},
	{ident.Int8, SlotBuiltin, "int8"},
	{ident.Int16, SlotBuiltin, "int16"},
	{ident.Int32, SlotBuiltin, "int32"},
	{ident.Int64, SlotBuiltin, "int64"},
	{ident.Half, SlotBuiltin, "numeric.Half"},
	{ident.Float32, SlotBuiltin, "float32"},
	{ident.Float64, SlotBuiltin, "float64"},
	{ident.ComplexHalf, SlotBuiltin, "numeric.ComplexHalf"},
	{ident.Complex64, SlotBuiltin, "complex64"},
	{ident.Complex128, SlotBuiltin, "complex128"},
	{ident.Uninitialized, SlotSentinel, SentinelName},
	{ident.Tensor, SlotOpen, ""},
	{ident.String, SlotBuiltin, "string"},
	{ident.Bool, SlotBuiltin, "bool"},
	{ident.Uint16, SlotBuiltin, "uint16"},
	{ident.Uint32, SlotBuiltin, "uint32"},
	{ident.MutexPtr, SlotBuiltin, "*sync.Mutex"},
	{ident.AtomicBoolPtr, SlotBuiltin, "*atomic.Bool"},
	{ident.Int32Slice, SlotBuiltin, "[]int32"},
	{ident.Int64Slice, SlotBuiltin, "[]int64"},
	{ident.Uint64Slice, SlotBuiltin, "[]uint64"},
	{ident.BoolPtr, SlotBuiltin, "*bool"},
	{ident.Uint8Ptr, SlotBuiltin, "*uint8"},
	{ident.Int32Ptr, SlotBuiltin, "*int32"},
	{ident.Int, SlotBuiltin, "int"},
	{ident.IntSlice, SlotBuiltin, "[]int"},
	{ident.HighestReserved, SlotBuiltin, "reserved.HighestPreallocated"},
}

// SentinelName is the display name of the uninitialized record.
const SentinelName = "nil (uninitialized)"

// Slots returns the fixed block in identifier order.
func Slots() []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots[:])
	return out
}

// SlotOf returns the description of id, or false when id is dynamic.
func SlotOf(id ident.ID) (Slot, bool) {
	if !id.Reserved() {
		return Slot{}, false
	}
	return slots[id], true
}
