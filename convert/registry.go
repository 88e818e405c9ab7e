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

package convert

import (
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/ofx/apis"
)

// Registry dispatches conversions to registered converters in registration
// order. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	convs []apis.Converter
}

// NewRegistry returns a Registry holding convs. Nil entries are skipped.
func NewRegistry(convs ...apis.Converter) *Registry {
	r := &Registry{}
	for _, c := range convs {
		if c != nil {
			r.convs = append(r.convs, c)
		}
	}
	return r
}

// Register appends c to the dispatch order.
func (r *Registry) Register(c apis.Converter) error {
	if c == nil {
		return ErrNilConverter
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.convs = append(r.convs, c)
	return nil
}

// Converters returns the registered converters in dispatch order.
func (r *Registry) Converters() []apis.Converter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]apis.Converter, len(r.convs))
	copy(out, r.convs)
	return out
}

// Lookup returns the first converter that can convert src to dest.
func (r *Registry) Lookup(src any, dest reflect.Type) (apis.Converter, bool) {
	for _, c := range r.Converters() {
		if c.CanConvert(src, dest) {
			return c, true
		}
	}
	return nil, false
}

// Convert converts src to dest with the first capable converter.
//
// When none is capable, the first converter whose input type matches src is
// asked anyway so that its error (for example a *ParseError) reaches the
// caller. Otherwise the result is ErrNoConverter.
func (r *Registry) Convert(src any, dest reflect.Type) (any, error) {
	if c, ok := r.Lookup(src, dest); ok {
		return c.Convert(src, dest)
	}
	if src != nil {
		st := reflect.TypeOf(src)
		for _, c := range r.Converters() {
			if in := c.InputType(); in != nil && st.AssignableTo(in) {
				return c.Convert(src, dest)
			}
		}
	}
	return nil, fmt.Errorf("%w: %T -> %v", ErrNoConverter, src, dest)
}

// CanConvert reports whether any registered converter can convert src to dest.
func (r *Registry) CanConvert(src any, dest reflect.Type) bool {
	_, ok := r.Lookup(src, dest)
	return ok
}
