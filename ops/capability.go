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

package ops

import (
	"reflect"
	"sync"

	"dirpx.dev/typemeta/apis"
)

// NoCopy may be embedded in a struct to mark it as not copy-assignable.
// Copy functions of such types fail with IllegalOperationError.
type NoCopy struct{}

func (NoCopy) refuseCopy() {}

// NoDefault may be embedded in a struct to mark it as not
// default-constructible: its zero value is not a usable element.
type NoDefault struct{}

func (NoDefault) refuseDefault() {}

type copyRefuser interface{ refuseCopy() }

type defaultRefuser interface{ refuseDefault() }

// Releaser is implemented by element types that hold resources beyond
// memory. Destructors call Release on each element before zeroing it.
type Releaser interface {
	Release()
}

// Detect derives the capabilities of T from its method set and layout.
// Types that hold a lock by value refuse copies, following vet's copylocks
// rule: see holdsLock.
func Detect[T any]() apis.Capabilities {
	var caps apis.Capabilities
	p := any((*T)(nil))
	if _, ok := p.(copyRefuser); ok {
		caps.NoCopy = true
	}
	if holdsLock(reflect.TypeFor[T]()) {
		caps.NoCopy = true
	}
	if _, ok := p.(defaultRefuser); ok {
		caps.NoDefault = true
	}
	return caps
}

var lockerType = reflect.TypeFor[sync.Locker]()

// holdsLock reports whether copying a value of t copies a lock: *t is a
// sync.Locker, or a struct field or array element held by value is. This
// catches sync.Mutex fields, sync.WaitGroup and the sync/atomic types, which
// carry a noCopy field. Pointers, slices and maps share the lock instead of
// copying it.
func holdsLock(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface:
		return false
	}
	if reflect.PointerTo(t).Implements(lockerType) {
		return true
	}
	switch t.Kind() {
	case reflect.Struct:
		for i := range t.NumField() {
			if holdsLock(t.Field(i).Type) {
				return true
			}
		}
	case reflect.Array:
		return t.Len() > 0 && holdsLock(t.Elem())
	}
	return false
}
