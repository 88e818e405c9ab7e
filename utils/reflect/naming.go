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
	"path"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/ofx/apis"
)

// cacheKey ensures memoization respects all config knobs that affect naming.
type cacheKey struct {
	t              reflect.Type
	includeBuiltin bool
	maxUnwrap      int16
	mapPreferElem  bool
}

// typeNameCache caches resolved type names by (type, config knobs).
var typeNameCache sync.Map // key: cacheKey, val: string

// TypeName returns a stable "pkg.Type" name for t.
//
// The nearest named type is found with Normalize and generic instantiation
// parameters are stripped. Builtin types yield their bare name when
// cfg.IncludeBuiltins is set and "builtin.<name>" otherwise. Types without a
// nearest named type fall back to t.String().
func TypeName(t reflect.Type, cfg apis.Config) string {
	if t == nil {
		return "<nil>"
	}
	key := cacheKey{
		t:              t,
		includeBuiltin: cfg.IncludeBuiltins,
		maxUnwrap:      int16(cfg.MaxUnwrap),
		mapPreferElem:  cfg.MapPreferElem,
	}
	if v, ok := typeNameCache.Load(key); ok {
		return v.(string)
	}

	var name string
	base, err := Normalize(t, cfg)
	switch {
	case err != nil || base == nil:
		name = t.String()
	case base.PkgPath() != "":
		name = path.Base(base.PkgPath()) + "." + stripTypeParams(base.Name())
	case cfg.IncludeBuiltins:
		name = base.Name()
	default:
		name = "builtin." + base.Name()
	}

	typeNameCache.Store(key, name)
	return name
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
