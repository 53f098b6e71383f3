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

package apis

// Config carries read-only knobs for fallback display names, that is names
// of types that were never registered explicitly. It is passed by value and
// should be treated as immutable by implementations.
//
// Changing the Config only affects records built afterwards; a record's name
// is fixed at the moment its type is first used.
type Config struct {
	// QualifiedNames renders named types with their full import path
	// ("example.com/app/model.User") instead of the last path element
	// ("model.User").
	QualifiedNames bool

	// StripTypeParams drops generic instantiation arguments from names:
	// "Box[int]" becomes "Box".
	StripTypeParams bool

	// MaxDepth bounds recursion into composite types (pointers, slices, maps,
	// arrays, channels). Deeper types fall back to reflect.Type.String.
	MaxDepth int
}
