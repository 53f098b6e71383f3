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

package reflect

import (
	"errors"
	"path"
	"reflect"
	"strconv"
	"strings"

	"dirpx.dev/typemeta/apis"
	"dirpx.dev/typemeta/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectDepthExceeded is returned when a composite type nests deeper
	// than Config.MaxDepth.
	ErrReflectDepthExceeded = errors.New("reflect: type nesting exceeds MaxDepth")
)

// Demangle renders t as a readable display name.
//
// Named types are written as "pkg.Name", where pkg is the last element of the
// import path unless cfg.QualifiedNames is set. Predeclared types keep their
// bare name. Pointers, slices, arrays, maps and channels are rendered
// structurally around their element names, so []*model.User stays
// "[]*model.User". Unnamed func, struct and interface types use
// reflect.Type.String.
//
// If cfg.MaxDepth <= 0, DefaultMaxDepth is used.
func Demangle(t reflect.Type, cfg apis.Config) (string, error) {
	if t == nil {
		return "", ErrReflectNilType
	}
	depth := cfg.MaxDepth
	if depth <= 0 {
		depth = config.DefaultMaxDepth
	}
	var b strings.Builder
	if err := write(&b, t, cfg, depth); err != nil {
		return "", err
	}
	return b.String(), nil
}

func write(b *strings.Builder, t reflect.Type, cfg apis.Config, depth int) error {
	if t.Name() != "" {
		b.WriteString(named(t, cfg))
		return nil
	}

	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		if depth == 0 {
			return ErrReflectDepthExceeded
		}
	default:
		// Unnamed func, struct and interface literals.
		b.WriteString(t.String())
		return nil
	}

	switch t.Kind() {
	case reflect.Pointer:
		b.WriteByte('*')
	case reflect.Slice:
		b.WriteString("[]")
	case reflect.Array:
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(t.Len()))
		b.WriteByte(']')
	case reflect.Map:
		b.WriteString("map[")
		if err := write(b, t.Key(), cfg, depth-1); err != nil {
			return err
		}
		b.WriteByte(']')
	case reflect.Chan:
		return writeChan(b, t, cfg, depth)
	}
	return write(b, t.Elem(), cfg, depth-1)
}

func writeChan(b *strings.Builder, t reflect.Type, cfg apis.Config, depth int) error {
	switch t.ChanDir() {
	case reflect.RecvDir:
		b.WriteString("<-chan ")
	case reflect.SendDir:
		b.WriteString("chan<- ")
	default:
		b.WriteString("chan ")
	}
	elem := t.Elem()
	// "chan (<-chan int)" needs parentheses to stay unambiguous.
	paren := t.ChanDir() == reflect.BothDir && elem.Name() == "" &&
		elem.Kind() == reflect.Chan && elem.ChanDir() == reflect.RecvDir
	if paren {
		b.WriteByte('(')
	}
	if err := write(b, elem, cfg, depth-1); err != nil {
		return err
	}
	if paren {
		b.WriteByte(')')
	}
	return nil
}

// named renders a defined type according to cfg.
func named(t reflect.Type, cfg apis.Config) string {
	name := t.Name()
	switch {
	case cfg.StripTypeParams:
		name = stripTypeParams(name)
	case !cfg.QualifiedNames:
		name = shortenTypeArgs(name)
	}
	p := t.PkgPath()
	if p == "" {
		return name
	}
	if cfg.QualifiedNames {
		return p + "." + name
	}
	return path.Base(p) + "." + name
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}

// shortenTypeArgs reduces import paths inside generic arguments to their last
// element: "Box[example.com/app/model.User]" -> "Box[model.User]".
func shortenTypeArgs(s string) string {
	i := strings.IndexByte(s, '[')
	if i < 0 || !strings.Contains(s[i:], "/") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	tok := -1
	flush := func(end int) {
		if tok < 0 {
			return
		}
		word := s[tok:end]
		if j := strings.LastIndexByte(word, '/'); j >= 0 {
			word = word[j+1:]
		}
		b.WriteString(word)
		tok = -1
	}
	for k := i; k < len(s); k++ {
		switch s[k] {
		case '[', ']', ',', ' ', '*', '(', ')':
			flush(k)
			b.WriteByte(s[k])
		default:
			if tok < 0 {
				tok = k
			}
		}
	}
	flush(len(s))
	return b.String()
}
