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

import (
	"reflect"

	"dirpx.dev/typemeta/ident"
)

// Registry stores the single Record of every type seen by the process.
// Records are added once and never removed, so there is no Reset.
type Registry interface {
	// Ensure returns the Record for t, running build exactly once per type
	// across all goroutines. fresh is true only for the caller whose build
	// produced the record.
	Ensure(t reflect.Type, build func() *Record) (rec *Record, fresh bool, err error)
	// Lookup returns the Record for t if it has been built.
	Lookup(t reflect.Type) (*Record, bool)
	// LookupID returns the Record that owns id in this run.
	LookupID(id ident.ID) (*Record, bool)
	// Records returns a snapshot ordered by identifier.
	Records() []*Record
	// Count returns the number of built records.
	Count() int
}
