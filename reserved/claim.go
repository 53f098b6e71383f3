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

package reserved

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/typemeta/ident"
)

var (
	// ErrNotClaimable is returned for identifiers outside the open slots.
	ErrNotClaimable = errors.New("typemeta(reserved): identifier is not an open reserved slot")
	// ErrAlreadyClaimed is returned when another type holds the slot.
	ErrAlreadyClaimed = errors.New("typemeta(reserved): reserved slot already claimed")
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("typemeta(reserved): nil reflect.Type provided")
)

// claims guards the open slots. Claims are rare (package init), so a plain
// mutex is enough.
var claims = struct {
	mu   sync.Mutex
	byID map[ident.ID]reflect.Type
}{byID: make(map[ident.ID]reflect.Type)}

// Claim binds the open slot id to t. Claiming the same (id, t) pair again
// succeeds.
func Claim(id ident.ID, t reflect.Type) error {
	if t == nil {
		return ErrNilType
	}
	s, ok := SlotOf(id)
	if !ok || s.Kind != SlotOpen {
		return fmt.Errorf("%w: %s", ErrNotClaimable, id)
	}

	claims.mu.Lock()
	defer claims.mu.Unlock()
	if held, ok := claims.byID[id]; ok {
		if held == t {
			return nil
		}
		return fmt.Errorf("%w: %s held by %s", ErrAlreadyClaimed, id, held)
	}
	claims.byID[id] = t
	return nil
}

// Release undoes a Claim made by t. It is a no-op if t does not hold id.
func Release(id ident.ID, t reflect.Type) {
	claims.mu.Lock()
	defer claims.mu.Unlock()
	if claims.byID[id] == t {
		delete(claims.byID, id)
	}
}

// Holder returns the type currently holding the open slot id.
func Holder(id ident.ID) (reflect.Type, bool) {
	claims.mu.Lock()
	defer claims.mu.Unlock()
	t, ok := claims.byID[id]
	return t, ok
}
