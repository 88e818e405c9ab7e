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

// Namer is implemented by objects that know their own display name.
//
// EntityName should be cheap and must not block. Returning "" means the
// object has no opinion and lets the next naming strategy decide.
type Namer interface {
	EntityName() string
}

// NamerFunc adapts a plain function to Namer.
type NamerFunc func() string

// EntityName calls f.
func (f NamerFunc) EntityName() string {
	return f()
}
