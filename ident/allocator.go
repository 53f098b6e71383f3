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
	"errors"
	"fmt"
	"sync/atomic"

	"fortio.org/safecast"
)

// ErrExhausted is returned once every representable identifier was issued.
var ErrExhausted = errors.New("typemeta(ident): type identifier space exhausted")

// Allocator issues dynamic identifiers from a single atomic counter.
// The zero value is not usable; call NewAllocator.
type Allocator struct {
	// next holds the value the next successful call returns. It is wider than
	// ID so that exhaustion can be represented without wrapping to zero.
	next atomic.Uint32
}

// NewAllocator returns an Allocator whose first identifier is seed.
func NewAllocator(seed ID) *Allocator {
	a := &Allocator{}
	a.next.Store(uint32(seed))
	return a
}

// Next returns a fresh identifier. Once the range is used up every call
// returns ErrExhausted; the counter never moves past the limit.
func (a *Allocator) Next() (ID, error) {
	for {
		cur := a.next.Load()
		id, err := safecast.Conv[uint16](cur)
		if err != nil {
			return 0, fmt.Errorf("%w: counter at %d: %w", ErrExhausted, cur, err)
		}
		if a.next.CompareAndSwap(cur, cur+1) {
			return ID(id), nil
		}
	}
}

// Peek returns the identifier the next call to Next would try to issue.
func (a *Allocator) Peek() uint32 {
	return a.next.Load()
}
