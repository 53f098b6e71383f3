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
	"sync"

	"dirpx.dev/typemeta/apis"
	uref "dirpx.dev/typemeta/utils/reflect"
)

// NewReflectStrategy creates an apis.Strategy that derives display names from
// the type structure using utils/reflect.Demangle, with memoization.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal fallback. It handles every non-nil type:
// when Demangle gives up (nesting beyond MaxDepth) it uses reflect.Type.String.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// cacheKey ensures memoization respects all config knobs that affect naming.
type cacheKey struct {
	t         reflect.Type
	qualified bool
	strip     bool
	maxDepth  int
}

// typeNameCache caches display names by (type, config knobs). The set of
// types in a program is finite, so entries are never evicted.
var typeNameCache sync.Map // key: cacheKey, val: string

// TryResolve names v's dynamic type.
func (reflectStrategy) TryResolve(v any, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	return byType(reflect.TypeOf(v), cfg), true
}

// TryResolveType names t.
func (reflectStrategy) TryResolveType(t reflect.Type, cfg apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	return byType(t, cfg), true
}

// byType resolves the display name for t with memoization.
func byType(t reflect.Type, cfg apis.Config) string {
	key := cacheKey{
		t:         t,
		qualified: cfg.QualifiedNames,
		strip:     cfg.StripTypeParams,
		maxDepth:  cfg.MaxDepth,
	}
	if v, ok := typeNameCache.Load(key); ok {
		return v.(string)
	}

	name, err := uref.Demangle(t, cfg)
	if err != nil {
		name = t.String()
	}

	v, _ := typeNameCache.LoadOrStore(key, name)
	return v.(string)
}
