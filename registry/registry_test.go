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
	"errors"
	"reflect"
	"testing"

	"dirpx.dev/typemeta/apis"
	"dirpx.dev/typemeta/ident"
	"dirpx.dev/typemeta/registry"
)

type A struct{}
type B struct{ n int }

func rec(t reflect.Type, id ident.ID, name string) *apis.Record {
	return apis.NewRecord(apis.RecordSpec{
		Type:   t,
		ID:     id,
		Name:   name,
		Size:   t.Size(),
		Origin: apis.OriginDynamic,
	})
}

func TestEnsureBuildsOnce(t *testing.T) {
	reg := registry.New()
	ta := reflect.TypeOf(A{})

	calls := 0
	build := func() *apis.Record {
		calls++
		return rec(ta, 40, "registry_test.A")
	}

	r1, fresh, err := reg.Ensure(ta, build)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if !fresh {
		t.Fatalf("first Ensure must report fresh")
	}
	r2, fresh, err := reg.Ensure(ta, build)
	if err != nil {
		t.Fatalf("ensure again: %v", err)
	}
	if fresh {
		t.Fatalf("second Ensure must not report fresh")
	}
	if r1 != r2 {
		t.Fatalf("records differ: %p vs %p", r1, r2)
	}
	if calls != 1 {
		t.Fatalf("build called %d times, want 1", calls)
	}
}

func TestEnsureNilType(t *testing.T) {
	reg := registry.New()
	if _, _, err := reg.Ensure(nil, nil); !errors.Is(err, registry.ErrNilType) {
		t.Fatalf("err = %v, want ErrNilType", err)
	}
	if _, ok := reg.Lookup(nil); ok {
		t.Fatalf("Lookup(nil) must miss")
	}
}

func TestLookup(t *testing.T) {
	reg := registry.New()
	ta, tb := reflect.TypeOf(A{}), reflect.TypeOf(B{})

	if _, ok := reg.Lookup(ta); ok {
		t.Fatalf("lookup before build must miss")
	}
	want, _, _ := reg.Ensure(ta, func() *apis.Record { return rec(ta, 40, "A") })

	got, ok := reg.Lookup(ta)
	if !ok || got != want {
		t.Fatalf("Lookup = %v,%v want %v", got, ok, want)
	}
	if _, ok := reg.Lookup(tb); ok {
		t.Fatalf("unrelated type must miss")
	}
	byID, ok := reg.LookupID(40)
	if !ok || byID != want {
		t.Fatalf("LookupID = %v,%v want %v", byID, ok, want)
	}
	if _, ok := reg.LookupID(41); ok {
		t.Fatalf("unknown id must miss")
	}
}

func TestRecordsSortedByID(t *testing.T) {
	reg := registry.New()
	ta, tb := reflect.TypeOf(A{}), reflect.TypeOf(B{})
	_, _, _ = reg.Ensure(tb, func() *apis.Record { return rec(tb, 90, "B") })
	_, _, _ = reg.Ensure(ta, func() *apis.Record { return rec(ta, 30, "A") })

	recs := reg.Records()
	if len(recs) != 2 || reg.Count() != 2 {
		t.Fatalf("len=%d count=%d, want 2", len(recs), reg.Count())
	}
	if recs[0].Name() != "A" || recs[1].Name() != "B" {
		t.Fatalf("order = %s,%s want A,B", recs[0].Name(), recs[1].Name())
	}
}

func TestFailedBuildIsReported(t *testing.T) {
	reg := registry.New()
	ta := reflect.TypeOf(A{})

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("panic from build must propagate")
			}
		}()
		_, _, _ = reg.Ensure(ta, func() *apis.Record { panic("boom") })
	}()

	_, _, err := reg.Ensure(ta, func() *apis.Record { return rec(ta, 1, "A") })
	if !errors.Is(err, registry.ErrNotBuilt) {
		t.Fatalf("err = %v, want ErrNotBuilt", err)
	}
	if reg.Count() != 0 {
		t.Fatalf("count = %d, want 0", reg.Count())
	}
}

func TestDuplicateIDPanics(t *testing.T) {
	reg := registry.New()
	ta, tb := reflect.TypeOf(A{}), reflect.TypeOf(B{})
	_, _, _ = reg.Ensure(ta, func() *apis.Record { return rec(ta, 50, "A") })

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, registry.ErrDuplicateID) {
			t.Fatalf("recover = %v, want ErrDuplicateID", r)
		}
		if _, ok := reg.Lookup(tb); ok {
			t.Fatalf("rejected record must not be published")
		}
	}()
	_, _, _ = reg.Ensure(tb, func() *apis.Record { return rec(tb, 50, "B") })
}

// This ensures the interface is satisfied; not a test but a compile-time check.
var _ apis.Registry = registry.New()
