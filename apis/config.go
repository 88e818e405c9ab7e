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

// Config carries read-only knobs for indexing and naming.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Duplicates decides what Add does with an object that is already indexed.
	Duplicates DuplicatePolicy `yaml:"duplicates" toml:"duplicates"`

	// IncludeBuiltins controls whether builtin/no-package named types
	// (e.g., "int", "string") keep their bare name in identity fallbacks.
	// If false, such types are rendered as "builtin.<name>".
	IncludeBuiltins bool `yaml:"include_builtins" toml:"include_builtins"`

	// MaxUnwrap limits container unwrapping depth (ptr/slice/array/chan/map)
	// when searching for the nearest named type of an object.
	MaxUnwrap int `yaml:"max_unwrap" toml:"max_unwrap"`

	// MapPreferElem controls which side of map[K]V is considered “primary”
	// when searching for a nearest named inner type. If true, prefer V; otherwise K.
	MapPreferElem bool `yaml:"map_prefer_elem" toml:"map_prefer_elem"`
}
