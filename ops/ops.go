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

// Package ops builds the type-erased element functions stored in operation
// tables. Dispatch happens at instantiation time through generics; nothing
// here inspects values at run time.
package ops

import (
	"reflect"
	"unsafe"

	"dirpx.dev/typemeta/apis"
)

// Trivial reports whether values of kind k need no element functions:
// construct is a zero fill, copy is a bitwise copy and destroy is a no-op.
func Trivial(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.Pointer, reflect.UnsafePointer:
		return true
	}
	return false
}

// For returns the element functions of T. All three are nil for trivial
// kinds. Otherwise construct and copy honour caps, substituting functions
// that fail with IllegalOperationError naming the type by name.
func For[T any](name string, caps apis.Capabilities) (apis.Constructor, apis.Copier, apis.Destructor) {
	if Trivial(reflect.TypeFor[T]().Kind()) {
		return nil, nil, nil
	}

	var ctor apis.Constructor = construct[T]
	if caps.NoDefault {
		ctor = refuseConstruct(name)
	}
	var cp apis.Copier = copyAssign[T]
	if caps.NoCopy {
		cp = refuseCopy(name)
	}
	return ctor, cp, destroy[T]
}

func construct[T any](dst unsafe.Pointer, n int) error {
	if err := checkSpan(dst, n); err != nil || n == 0 {
		return err
	}
	clear(unsafe.Slice((*T)(dst), n))
	return nil
}

func copyAssign[T any](src, dst unsafe.Pointer, n int) error {
	if err := checkSpan(src, n); err != nil || n == 0 {
		return err
	}
	if err := checkSpan(dst, n); err != nil {
		return err
	}
	from := unsafe.Slice((*T)(src), n)
	to := unsafe.Slice((*T)(dst), n)
	for i := range to {
		to[i] = from[i]
	}
	return nil
}

func destroy[T any](ptr unsafe.Pointer, n int) {
	if ptr == nil || n <= 0 {
		return
	}
	elems := unsafe.Slice((*T)(ptr), n)
	for i := range elems {
		if r, ok := any(&elems[i]).(Releaser); ok {
			r.Release()
		}
	}
	clear(elems)
}

func refuseConstruct(name string) apis.Constructor {
	return func(unsafe.Pointer, int) error {
		return &IllegalOperationError{TypeName: name, Op: OpConstruct}
	}
}

func refuseCopy(name string) apis.Copier {
	return func(unsafe.Pointer, unsafe.Pointer, int) error {
		return &IllegalOperationError{TypeName: name, Op: OpCopy}
	}
}

func checkSpan(p unsafe.Pointer, n int) error {
	switch {
	case n < 0:
		return ErrNegativeCount
	case n > 0 && p == nil:
		return ErrNilStorage
	}
	return nil
}
