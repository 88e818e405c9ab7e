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
	"reflect"
	"strconv"

	"dirpx.dev/ofx/apis"
	uref "dirpx.dev/ofx/utils/reflect"
)

// NewIdentityStrategy creates an apis.Strategy that synthesizes a
// "pkg.Type@hex" name. It handles every non-nil value and is meant to close
// a chain.
func NewIdentityStrategy() apis.Strategy {
	return identityStrategy{}
}

// identityStrategy is the universal fallback. The type part comes from
// utils/reflect.TypeName and the hex part from utils/reflect.IdentityHash.
type identityStrategy struct{}

// Ensure identityStrategy implements apis.Strategy.
var _ apis.Strategy = identityStrategy{}

// TryResolve computes the identity name for v.
func (identityStrategy) TryResolve(v any, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	return IdentityName(v, cfg), true
}

// IdentityName returns "pkg.Type@hex" for v. Unnamed slices, arrays, maps
// and channels keep their full type ("[]pkg.Type@hex") so they are not
// mistaken for their element.
func IdentityName(v any, cfg apis.Config) string {
	return identityType(reflect.TypeOf(v), cfg) + "@" + strconv.FormatUint(uint64(uref.IdentityHash(v)), 16)
}

func identityType(t reflect.Type, cfg apis.Config) string {
	if t.Name() == "" {
		switch t.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
			return t.String()
		}
	}
	return uref.TypeName(t, cfg)
}
