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

package registry

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"dirpx.dev/typemeta/apis"
	"dirpx.dev/typemeta/ident"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("typemeta(registry): nil reflect.Type provided")
	// ErrNotBuilt is returned when the one-time build of a type did not
	// produce a record, typically because it panicked.
	ErrNotBuilt = errors.New("typemeta(registry): record construction did not complete")
	// ErrDuplicateID signals two types sharing one identifier. It is raised
	// as a panic from inside the build because the store cannot recover.
	ErrDuplicateID = errors.New("typemeta(registry): identifier already bound to another type")
)

// New constructs an empty Registry.
func New() apis.Registry {
	return &registry{}
}

// registry is a sync.Map of per-type slots. Each slot owns a sync.Once so
// exactly one goroutine builds the record while others wait for it.
type registry struct {
	// slots maps reflect.Type to *slot.
	slots sync.Map
	// byID maps ident.ID to *apis.Record for reverse lookups.
	byID sync.Map
	// mu serializes indexing so the id check and the counter stay consistent.
	mu sync.Mutex
	// count tracks the number of built records.
	count atomic.Int64
}

type slot struct {
	once sync.Once
	rec  atomic.Pointer[apis.Record]
}

// Ensure returns the record for t, building it through build on first use.
func (r *registry) Ensure(t reflect.Type, build func() *apis.Record) (*apis.Record, bool, error) {
	if t == nil {
		return nil, false, ErrNilType
	}

	// Fast path: already built.
	v, ok := r.slots.Load(t)
	if !ok {
		v, _ = r.slots.LoadOrStore(t, &slot{})
	}
	s := v.(*slot)
	if rec := s.rec.Load(); rec != nil {
		return rec, false, nil
	}

	fresh := false
	s.once.Do(func() {
		rec := build()
		if rec == nil {
			return
		}
		r.index(rec)
		s.rec.Store(rec)
		fresh = true
	})

	rec := s.rec.Load()
	if rec == nil {
		return nil, false, fmt.Errorf("%w: %s", ErrNotBuilt, t)
	}
	return rec, fresh, nil
}

// index publishes rec under its identifier.
func (r *registry) index(rec *apis.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, loaded := r.byID.LoadOrStore(rec.ID(), rec); loaded {
		other := prev.(*apis.Record)
		panic(fmt.Errorf("%w: id %s wanted by %s, held by %s", ErrDuplicateID, rec.ID(), rec.Name(), other.Name()))
	}
	r.count.Add(1)
}

// Lookup returns the record for t if it was built.
func (r *registry) Lookup(t reflect.Type) (*apis.Record, bool) {
	if t == nil {
		return nil, false
	}
	v, ok := r.slots.Load(t)
	if !ok {
		return nil, false
	}
	rec := v.(*slot).rec.Load()
	return rec, rec != nil
}

// LookupID returns the record bound to id.
func (r *registry) LookupID(id ident.ID) (*apis.Record, bool) {
	v, ok := r.byID.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*apis.Record), true
}

// Records returns a snapshot ordered by identifier.
func (r *registry) Records() []*apis.Record {
	out := make([]*apis.Record, 0, r.Count())
	r.byID.Range(func(_, value any) bool {
		out = append(out, value.(*apis.Record))
		return true
	})
	slices.SortFunc(out, func(a, b *apis.Record) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return out
}

// Count returns the number of built records.
func (r *registry) Count() int {
	return int(r.count.Load())
}
