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

// Package index implements the named object index behind the object service.
//
// An index holds arbitrary values, each at most once, with an optional display
// name. Identity is by address for pointers, maps, channels, funcs and slices,
// and by value for everything else that is comparable at run time; values that
// are neither (e.g., a struct holding a slice) cannot be indexed.
//
// Get(t) is covariant: it returns every object whose dynamic type is
// assignable to t. Querying an interface type returns all implementations;
// querying a concrete type returns exact matches only, since Go has no
// subclassing. Results are in insertion order.
//
// NamedObjectIndex is not safe for concurrent use; Synchronized adds an
// RWMutex around any apis.Index.
package index
