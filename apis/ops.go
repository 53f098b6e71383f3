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

import "unsafe"

// Constructor zero-initialises n contiguous elements starting at dst.
type Constructor func(dst unsafe.Pointer, n int) error

// Copier assigns n contiguous elements from src onto dst, in index order.
type Copier func(src, dst unsafe.Pointer, n int) error

// Destructor releases n contiguous elements starting at ptr, in index order.
// It cannot fail.
type Destructor func(ptr unsafe.Pointer, n int)

// Capabilities records which element operations a type refuses.
// The zero value means every operation is allowed.
type Capabilities struct {
	NoDefault bool
	NoCopy    bool
}

// Merge returns the union of refusals in c and o.
func (c Capabilities) Merge(o Capabilities) Capabilities {
	return Capabilities{
		NoDefault: c.NoDefault || o.NoDefault,
		NoCopy:    c.NoCopy || o.NoCopy,
	}
}

// Origin tells how a record obtained its identifier.
type Origin uint8

const (
	// OriginSentinel is the uninitialized record only.
	OriginSentinel Origin = iota
	// OriginBuiltin marks the fixed reserved types.
	OriginBuiltin
	// OriginClaimed marks types that claimed an open reserved slot.
	OriginClaimed
	// OriginDynamic marks identifiers issued by the allocator.
	OriginDynamic
)

func (o Origin) String() string {
	switch o {
	case OriginSentinel:
		return "sentinel"
	case OriginBuiltin:
		return "builtin"
	case OriginClaimed:
		return "claimed"
	case OriginDynamic:
		return "dynamic"
	}
	return "unknown"
}
