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
	"reflect"

	"dirpx.dev/ofx/apis"
)

// Of returns the objects in idx that are assignable to T, typed as T.
// T is usually an interface. Objects of a named type that are assignable to
// an unnamed T (a NamerFunc to func() string, a chan int to <-chan int) are
// converted to T.
func Of[T any](idx apis.Index) []T {
	t := reflect.TypeFor[T]()
	objs := idx.Get(t)
	out := make([]T, 0, len(objs))
	for _, o := range objs {
		if v, ok := o.(T); ok {
			out = append(out, v)
			continue
		}
		out = append(out, reflect.ValueOf(o).Convert(t).Interface().(T))
	}
	return out
}
