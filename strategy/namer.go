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

package strategy

import (
	"reflect"

	"dirpx.dev/typemeta/apis"
)

var namerType = reflect.TypeFor[apis.Namer]()

// NewNamerStrategy returns the strategy that lets a type name itself through
// apis.Namer.
func NewNamerStrategy() apis.Strategy {
	return namerStrategy{}
}

// namerStrategy asks the type for its own name. A type that is only known
// by its reflect.Type is asked through a fresh zero value, which is why
// TypeMetaName must not read receiver state.
type namerStrategy struct{}

var _ apis.Strategy = namerStrategy{}

// TryResolve calls TypeMetaName on v, or on a zero value of v's type when
// only *T implements apis.Namer. An empty name is not handled.
func (s namerStrategy) TryResolve(v any, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	if n, ok := v.(apis.Namer); ok {
		return nonEmpty(n.TypeMetaName())
	}
	return s.TryResolveType(reflect.TypeOf(v), cfg)
}

// TryResolveType names t through a zero value. Pointer and interface types
// are never handled: their zero value is nil.
func (namerStrategy) TryResolveType(t reflect.Type, _ apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	if k := t.Kind(); k == reflect.Pointer || k == reflect.Interface {
		return "", false
	}
	// *T carries the method set of both receivers.
	if !reflect.PointerTo(t).Implements(namerType) {
		return "", false
	}
	return nonEmpty(reflect.New(t).Interface().(apis.Namer).TypeMetaName())
}

func nonEmpty(name string) (string, bool) {
	return name, name != ""
}
