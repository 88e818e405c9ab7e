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
	"fmt"

	"dirpx.dev/ofx/apis"
)

// NewStringerStrategy creates an apis.Strategy that uses fmt.Stringer.
func NewStringerStrategy() apis.Strategy {
	return stringerStrategy{}
}

// stringerStrategy renders values that describe themselves.
type stringerStrategy struct{}

// Ensure stringerStrategy implements apis.Strategy.
var _ apis.Strategy = stringerStrategy{}

// TryResolve returns v.String() when v is a fmt.Stringer with a non-empty
// rendering. A String method that panics on a nil receiver falls through.
func (stringerStrategy) TryResolve(v any, _ apis.Config) (name string, ok bool) {
	s, isStringer := v.(fmt.Stringer)
	if !isStringer {
		return "", false
	}
	defer func() {
		if recover() != nil {
			name, ok = "", false
		}
	}()
	if name = s.String(); name != "" {
		return name, true
	}
	return "", false
}
