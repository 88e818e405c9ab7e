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

package builder

import (
	"dirpx.dev/ofx/apis"
	"dirpx.dev/ofx/convert"
	"dirpx.dev/ofx/index"
	"dirpx.dev/ofx/resolver"
)

// New creates and returns a new instance of an apis.Builder.
// It is the explicit bootstrap that wires the built-in index, naming chain
// and converters together.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildIndex builds a synchronized index for cfg.
//
// A synchronized previous index is reconfigured and returned as is, so
// writes that race the rebuild stay in the published index. Any other
// previous index has its entries copied in insertion order with their names.
func (b *builder) BuildIndex(cfg apis.Config, prev apis.Index, _ any) apis.Index {
	if r, ok := prev.(index.Reconfigurable); ok && index.IsSynchronized(prev) {
		r.Reconfigure(cfg)
		return prev
	}
	nidx := index.Synchronized(index.New(cfg))
	if prev != nil {
		for _, e := range prev.Entries() {
			_, _ = nidx.Add(e.Object, e.Name)
		}
	}
	return nidx
}

// BuildResolver builds the default naming chain over idx. The previous
// resolver is stateless and is not consulted.
func (b *builder) BuildResolver(_ apis.Config, idx apis.Index, _ apis.Resolver, _ any) apis.Resolver {
	return resolver.Default(idx)
}

// BuildConverters returns the built-in converters.
func (b *builder) BuildConverters(_ apis.Config, _ any) []apis.Converter {
	return []apis.Converter{
		convert.NewStringToNumber(),
	}
}
