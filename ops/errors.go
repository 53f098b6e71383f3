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
	"errors"
	"fmt"
)

var (
	// ErrIllegalOperation is the sentinel every IllegalOperationError unwraps to.
	ErrIllegalOperation = errors.New("typemeta(ops): illegal operation")
	// ErrNegativeCount is returned when an element count is below zero.
	ErrNegativeCount = errors.New("typemeta(ops): negative element count")
	// ErrNilStorage is returned when a nil pointer is passed with a non-zero count.
	ErrNilStorage = errors.New("typemeta(ops): nil storage with non-zero element count")
)

// Operation names an element operation of an operation table.
type Operation uint8

const (
	OpConstruct Operation = iota
	OpCopy
)

func (o Operation) String() string {
	switch o {
	case OpConstruct:
		return "construct"
	case OpCopy:
		return "copy"
	}
	return fmt.Sprintf("Operation(%d)", uint8(o))
}

// IllegalOperationError is returned by the stand-in functions installed for
// operations a type does not support. It is produced only when such a
// function is invoked, never when the table is built.
type IllegalOperationError struct {
	// TypeName is the display name of the element type.
	TypeName string
	// Op is the refused operation.
	Op Operation
}

func (e *IllegalOperationError) Error() string {
	switch e.Op {
	case OpConstruct:
		return "typemeta: type " + e.TypeName + " is not default-constructible"
	case OpCopy:
		return "typemeta: type " + e.TypeName + " does not allow assignment"
	}
	return "typemeta: type " + e.TypeName + " does not support " + e.Op.String()
}

func (e *IllegalOperationError) Unwrap() error {
	return ErrIllegalOperation
}
