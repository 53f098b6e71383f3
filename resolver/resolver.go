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

package resolver

import (
	"reflect"
	"slices"

	"dirpx.dev/typemeta/apis"
)

// New returns a resolver that asks strategies in order and keeps the first
// non-empty name. Nil strategies are dropped. The result is safe for
// concurrent use when the strategies are.
func New(strategies ...apis.Strategy) apis.Resolver {
	return chain(slices.DeleteFunc(slices.Clone(strategies), func(s apis.Strategy) bool {
		return s == nil
	}))
}

// chain is immutable once built.
type chain []apis.Strategy

// Resolve names the dynamic type of v. When no strategy answers for the
// value itself, v's type goes through ResolveType, so only a nil v yields "".
func (c chain) Resolve(v any, cfg apis.Config) string {
	if v == nil {
		return ""
	}
	if name, ok := c.first(func(s apis.Strategy) (string, bool) { return s.TryResolve(v, cfg) }); ok {
		return name
	}
	return c.ResolveType(reflect.TypeOf(v), cfg)
}

// ResolveType names t. A record always needs a display name, so a type no
// strategy handles is named by reflect.Type.String.
func (c chain) ResolveType(t reflect.Type, cfg apis.Config) string {
	if t == nil {
		return ""
	}
	if name, ok := c.first(func(s apis.Strategy) (string, bool) { return s.TryResolveType(t, cfg) }); ok {
		return name
	}
	return t.String()
}

func (c chain) first(try func(apis.Strategy) (string, bool)) (string, bool) {
	for _, s := range c {
		if name, ok := try(s); ok && name != "" {
			return name, true
		}
	}
	return "", false
}
