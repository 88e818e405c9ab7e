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
	"dirpx.dev/ofx/apis"
)

// NewIndexStrategy creates an apis.Strategy that returns names explicitly
// registered in idx.
func NewIndexStrategy(idx apis.Index) apis.Strategy {
	return &indexStrategy{idx: idx}
}

// indexStrategy consults a provided apis.Index.
type indexStrategy struct {
	idx apis.Index
}

// Ensure indexStrategy implements apis.Strategy.
var _ apis.Strategy = (*indexStrategy)(nil)

// TryResolve looks up the name registered for v.
func (s *indexStrategy) TryResolve(v any, _ apis.Config) (string, bool) {
	if v == nil || s.idx == nil {
		return "", false
	}
	return s.idx.Name(v)
}
