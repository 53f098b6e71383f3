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

package registry_test

import (
	"reflect"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"dirpx.dev/typemeta/apis"
	"dirpx.dev/typemeta/ident"
	"dirpx.dev/typemeta/registry"
)

// A few named types to avoid anonymous/unnamed pitfalls.
type T0 struct{}
type T1 struct{}
type T2 struct{}
type T3 struct{}
type T4 struct{}
type T5 struct{}
type T6 struct{}
type T7 struct{}
type T8 struct{}
type T9 struct{}

// TestConcurrentEnsure verifies that concurrent first use of the same types
// runs each build exactly once and every caller sees the same record.
func TestConcurrentEnsure(t *testing.T) {
	reg := registry.New()

	types := []reflect.Type{
		reflect.TypeOf(T0{}), reflect.TypeOf(T1{}), reflect.TypeOf(T2{}),
		reflect.TypeOf(T3{}), reflect.TypeOf(T4{}), reflect.TypeOf(T5{}),
		reflect.TypeOf(T6{}), reflect.TypeOf(T7{}), reflect.TypeOf(T8{}),
		reflect.TypeOf(T9{}),
	}

	var next atomic.Uint32
	next.Store(uint32(ident.FirstDynamic))
	builds := make([]atomic.Int32, len(types))

	workers := runtime.GOMAXPROCS(0) * 4
	seen := make([][]*apis.Record, workers)

	start := make(chan struct{})
	wg := sync.WaitGroup{}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			<-start
			seen[w] = make([]*apis.Record, len(types))
			for i := range types {
				j := (i + w) % len(types)
				tt := types[j]
				rec, _, err := reg.Ensure(tt, func() *apis.Record {
					builds[j].Add(1)
					return apis.NewRecord(apis.RecordSpec{
						Type: tt,
						ID:   ident.ID(next.Add(1) - 1),
						Name: tt.String(),
					})
				})
				if err != nil {
					t.Errorf("ensure %v: %v", tt, err)
					return
				}
				seen[w][j] = rec
				_ = reg.Count()
				_ = reg.Records()
			}
		}(w)
	}
	close(start)
	wg.Wait()

	for j := range types {
		if n := builds[j].Load(); n != 1 {
			t.Fatalf("type %v built %d times, want 1", types[j], n)
		}
		for w := 1; w < workers; w++ {
			if seen[w][j] != seen[0][j] {
				t.Fatalf("worker %d saw a different record for %v", w, types[j])
			}
		}
	}
	if reg.Count() != len(types) {
		t.Fatalf("count mismatch: got %d want %d", reg.Count(), len(types))
	}
	ids := map[ident.ID]bool{}
	for _, r := range reg.Records() {
		if ids[r.ID()] {
			t.Fatalf("duplicate id %s", r.ID())
		}
		ids[r.ID()] = true
	}
}
