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

package apis

import "reflect"

// Converter turns a value of its input type into a value of a requested
// destination type.
type Converter interface {
	// Convert converts src to dest. It fails when src is not of the input
	// type, dest is not supported, or the conversion itself fails.
	Convert(src any, dest reflect.Type) (any, error)
	// CanConvert reports whether Convert(src, dest) would succeed.
	CanConvert(src any, dest reflect.Type) bool
	// InputType is the source type this converter accepts.
	InputType() reflect.Type
	// OutputType is the broadest type this converter produces.
	OutputType() reflect.Type
}
