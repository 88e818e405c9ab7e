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

package index

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/ofx/apis"
	"dirpx.dev/ofx/config"
	uref "dirpx.dev/ofx/utils/reflect"
)

var (
	// ErrNilObject is returned when a nil object is provided.
	ErrNilObject = fmt.Errorf("ofx(index): nil object provided: %w", apis.ErrInvalidArgument)
	// ErrNotIdentifiable is returned for objects without a usable identity.
	ErrNotIdentifiable = fmt.Errorf("ofx(index): object has no identity: %w", apis.ErrInvalidArgument)
	// ErrDuplicateObject is returned by Add under the Reject policy when the
	// object is already indexed.
	ErrDuplicateObject = errors.New("ofx(index): object already indexed")
)

// New constructs a NamedObjectIndex that handles re-registration according
// to cfg.Duplicates.
func New(cfg apis.Config) *NamedObjectIndex {
	return &NamedObjectIndex{
		cfg: config.Sanitize(cfg),
		pos: make(map[any]int),
	}
}

// NamedObjectIndex keeps objects in insertion order together with optional
// display names. Objects are identified by reference for pointer-like values
// and by value otherwise; each object is held at most once.
//
// NamedObjectIndex is not safe for concurrent use. Wrap it with Synchronized
// when it is shared between goroutines.
type NamedObjectIndex struct {
	// cfg carries the duplicate policy.
	cfg apis.Config
	// entries holds the objects in insertion order.
	entries []entry
	// pos maps identity keys to positions in entries.
	pos map[any]int
}

type entry struct {
	key  any
	obj  any
	name string
	typ  reflect.Type
}

// Reconfigurable is implemented by indexes that can take a new
// configuration without being rebuilt.
type Reconfigurable interface {
	Reconfigure(cfg apis.Config)
}

// Ensure NamedObjectIndex implements apis.Index and Reconfigurable.
var (
	_ apis.Index     = (*NamedObjectIndex)(nil)
	_ Reconfigurable = (*NamedObjectIndex)(nil)
)

// Add registers obj under name. See apis.DuplicatePolicy for what happens
// when obj is already indexed.
func (x *NamedObjectIndex) Add(obj any, name string) (bool, error) {
	key, err := identity(obj)
	if err != nil {
		return false, err
	}

	if i, ok := x.pos[key]; ok {
		switch x.cfg.Duplicates {
		case apis.Reject:
			return false, ErrDuplicateObject
		case apis.Rename:
			if name != "" {
				x.entries[i].name = name
			}
		}
		return false, nil
	}

	x.pos[key] = len(x.entries)
	x.entries = append(x.entries, entry{
		key:  key,
		obj:  obj,
		name: name,
		typ:  reflect.TypeOf(obj),
	})
	return true, nil
}

// Remove unregisters obj. It reports false for unknown or unidentifiable objects.
func (x *NamedObjectIndex) Remove(obj any) bool {
	key, err := identity(obj)
	if err != nil {
		return false
	}
	i, ok := x.pos[key]
	if !ok {
		return false
	}

	delete(x.pos, key)
	copy(x.entries[i:], x.entries[i+1:])
	x.entries[len(x.entries)-1] = entry{}
	x.entries = x.entries[:len(x.entries)-1]
	for j := i; j < len(x.entries); j++ {
		x.pos[x.entries[j].key] = j
	}
	return true
}

// Get returns every object whose dynamic type is assignable to t.
func (x *NamedObjectIndex) Get(t reflect.Type) []any {
	if t == nil {
		return nil
	}
	out := make([]any, 0, len(x.entries))
	for _, e := range x.entries {
		if e.typ.AssignableTo(t) {
			out = append(out, e.obj)
		}
	}
	return out
}

// All returns every object in insertion order.
func (x *NamedObjectIndex) All() []any {
	out := make([]any, len(x.entries))
	for i, e := range x.entries {
		out[i] = e.obj
	}
	return out
}

// Entries returns a snapshot of all entries in insertion order.
func (x *NamedObjectIndex) Entries() []apis.Entry {
	out := make([]apis.Entry, len(x.entries))
	for i, e := range x.entries {
		out[i] = apis.Entry{Object: e.obj, Name: e.name, Type: e.typ}
	}
	return out
}

// Name returns the name registered for obj. Unnamed entries report ("", false).
func (x *NamedObjectIndex) Name(obj any) (string, bool) {
	key, err := identity(obj)
	if err != nil {
		return "", false
	}
	i, ok := x.pos[key]
	if !ok || x.entries[i].name == "" {
		return "", false
	}
	return x.entries[i].name, true
}

// Contains reports whether obj is indexed.
func (x *NamedObjectIndex) Contains(obj any) bool {
	key, err := identity(obj)
	if err != nil {
		return false
	}
	_, ok := x.pos[key]
	return ok
}

// Len returns the number of indexed objects.
func (x *NamedObjectIndex) Len() int {
	return len(x.entries)
}

// Clear removes all entries.
func (x *NamedObjectIndex) Clear() {
	x.entries = nil
	x.pos = make(map[any]int)
}

// Reconfigure applies cfg to later calls. Indexed entries are kept.
func (x *NamedObjectIndex) Reconfigure(cfg apis.Config) {
	x.cfg = config.Sanitize(cfg)
}

// identity maps obj to its identity key, translating utils errors into
// index errors.
func identity(obj any) (any, error) {
	if obj == nil {
		return nil, ErrNilObject
	}
	key, err := uref.IdentityKey(obj)
	if err != nil {
		return nil, fmt.Errorf("%w: %T", ErrNotIdentifiable, obj)
	}
	return key, nil
}
