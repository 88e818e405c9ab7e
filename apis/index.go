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

import "reflect"

// Index is an in-memory collection of live objects, each with an optional
// display name, queryable by runtime type.
//
// Implementations are not required to be safe for concurrent use. Callers
// that share an Index between goroutines must synchronize access or wrap it
// (see index.Synchronized).
type Index interface {
	// Add registers obj under name ("" means unnamed). It reports whether a
	// new entry was created. Re-adding an indexed object follows
	// Config.Duplicates.
	Add(obj any, name string) (added bool, err error)
	// Remove unregisters obj and reports whether it was present.
	Remove(obj any) bool
	// Get returns, in insertion order, every object whose dynamic type is
	// assignable to t. A nil t yields nil.
	Get(t reflect.Type) []any
	// All returns every object in insertion order.
	All() []any
	// Entries returns a snapshot of all entries in insertion order.
	Entries() []Entry
	// Name returns the name registered for obj, if any.
	Name(obj any) (name string, ok bool)
	// Contains reports whether obj is indexed.
	Contains(obj any) bool
	// Len returns the number of indexed objects.
	Len() int
	// Clear removes all entries.
	Clear()
}

// Entry is a single (object, name) association in an Index snapshot.
type Entry struct {
	// Object is the indexed value.
	Object any
	// Name is the registered display name, or "".
	Name string
	// Type is the dynamic type of Object.
	Type reflect.Type
}
