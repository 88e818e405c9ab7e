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
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// ErrNotIdentifiable is returned for values that have neither an address
// nor a dynamically comparable representation (e.g., a struct holding a slice).
var ErrNotIdentifiable = errors.New("reflect: value has no identity")

// addrKey identifies reference-like values by type and address.
// n disambiguates slices that share a backing array start.
type addrKey struct {
	t reflect.Type
	p uintptr
	n int
}

// IdentityKey returns a comparable key that is equal for two values exactly
// when they denote the same object.
//
// Pointers, maps, channels, funcs, unsafe pointers and slices are keyed by
// their address; other values are keyed by themselves when they are
// dynamically comparable and equal to themselves. A nil v yields
// ErrReflectNilType.
func IdentityKey(v any) (any, error) {
	if v == nil {
		return nil, ErrReflectNilType
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return addrKey{t: rv.Type(), p: rv.Pointer()}, nil
	case reflect.Slice:
		return addrKey{t: rv.Type(), p: rv.Pointer(), n: rv.Len()}, nil
	}
	if !rv.Comparable() {
		return nil, fmt.Errorf("%w: %s", ErrNotIdentifiable, rv.Type())
	}
	// NaN anywhere in the value makes it unequal to itself.
	if !rv.Equal(rv) {
		return nil, fmt.Errorf("%w: %s is not equal to itself", ErrNotIdentifiable, rv.Type())
	}
	return v, nil
}

// IdentityHash returns a 32-bit hash that is stable for the lifetime of v.
// Reference-like values hash to their address; everything else hashes its
// Go-syntax rendering with xxhash.
func IdentityHash(v any) uint32 {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer, reflect.Slice:
		return uint32(rv.Pointer())
	}
	return uint32(xxhash.Sum64String(fmt.Sprintf("%#v", v)))
}
