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

package reflect_test

import (
	"errors"
	"path"
	"reflect"
	"testing"

	"dirpx.dev/typemeta/apis"
	uref "dirpx.dev/typemeta/utils/reflect"
)

// Local test types.
type A struct{}
type B struct{}
type G[T any] struct{}
type W[T any] struct{ V T }

// pkg is the package prefix non-qualified names carry in this test binary.
var pkg = path.Base(reflect.TypeOf(A{}).PkgPath())

// cfg returns a convenient baseline Config for tests.
func cfg(opts ...func(*apis.Config)) apis.Config {
	c := apis.Config{MaxDepth: 8}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func TestDemangle_Structural(t *testing.T) {
	conf := cfg()

	cases := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"builtin", reflect.TypeOf(0), "int"},
		{"plain", reflect.TypeOf(A{}), pkg + ".A"},
		{"ptr", reflect.TypeOf(&A{}), "*" + pkg + ".A"},
		{"slice", reflect.TypeOf([]A{}), "[]" + pkg + ".A"},
		{"array", reflect.TypeOf([2]A{}), "[2]" + pkg + ".A"},
		{"map", reflect.TypeOf(map[string]*B{}), "map[string]*" + pkg + ".B"},
		{"chan", reflect.TypeOf((chan A)(nil)), "chan " + pkg + ".A"},
		{"recv chan", reflect.TypeOf((<-chan int)(nil)), "<-chan int"},
		{"send chan", reflect.TypeOf((chan<- []B)(nil)), "chan<- []" + pkg + ".B"},
		{"chan of recv chan", reflect.TypeOf((chan (<-chan int))(nil)), "chan (<-chan int)"},
		{"func literal", reflect.TypeOf(func(int) string { return "" }), "func(int) string"},
		{"struct literal", reflect.TypeOf(struct{ X int }{}), "struct { X int }"},
		{"interface", reflect.TypeFor[error](), "error"},
		{"empty interface", reflect.TypeFor[any](), "interface {}"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Demangle(tc.typ, conf)
			if err != nil {
				t.Fatalf("Demangle(%v) returned error: %v", tc.typ, err)
			}
			if got != tc.want {
				t.Fatalf("Demangle(%v) = %q, want %q", tc.typ, got, tc.want)
			}
		})
	}
}

func TestDemangle_Qualified(t *testing.T) {
	full := reflect.TypeOf(A{}).PkgPath()
	conf := cfg(func(c *apis.Config) { c.QualifiedNames = true })

	got, err := uref.Demangle(reflect.TypeOf([]*A{}), conf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "[]*" + full + ".A"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDemangle_Generics(t *testing.T) {
	typ := reflect.TypeOf(G[A]{})

	got, err := uref.Demangle(typ, cfg())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := pkg + ".G[" + pkg + ".A]"; got != want {
		t.Fatalf("short: got %q, want %q", got, want)
	}

	got, _ = uref.Demangle(typ, cfg(func(c *apis.Config) { c.StripTypeParams = true }))
	if want := pkg + ".G"; got != want {
		t.Fatalf("stripped: got %q, want %q", got, want)
	}

	got, _ = uref.Demangle(reflect.TypeOf(W[map[string]int]{}), cfg())
	if want := pkg + ".W[map[string]int]"; got != want {
		t.Fatalf("builtin args: got %q, want %q", got, want)
	}
}

func TestDemangle_MaxDepth(t *testing.T) {
	conf := cfg(func(c *apis.Config) { c.MaxDepth = 1 })

	if _, err := uref.Demangle(reflect.TypeOf([]A{}), conf); err != nil {
		t.Fatalf("depth 1 must allow one level: %v", err)
	}
	_, err := uref.Demangle(reflect.TypeOf([][]A{}), conf)
	if !errors.Is(err, uref.ErrReflectDepthExceeded) {
		t.Fatalf("err = %v, want ErrReflectDepthExceeded", err)
	}

	// Zero falls back to the default depth.
	if _, err := uref.Demangle(reflect.TypeOf([][]A{}), cfg(func(c *apis.Config) { c.MaxDepth = 0 })); err != nil {
		t.Fatalf("default depth: %v", err)
	}
}

func TestDemangle_NilType(t *testing.T) {
	if _, err := uref.Demangle(nil, cfg()); !errors.Is(err, uref.ErrReflectNilType) {
		t.Fatalf("err = %v, want ErrReflectNilType", err)
	}
}
