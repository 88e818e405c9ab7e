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
	"strings"

	"dirpx.dev/ofx/apis"
)

// Kind is a numeric destination supported by StringToNumber.
// The set is closed: signed integers of 8, 16, 32 and 64 bits and
// floating point numbers of 32 and 64 bits.
type Kind int

const (
	// Int8 parses into int8.
	Int8 Kind = iota + 1
	// Int16 parses into int16.
	Int16
	// Int32 parses into int32.
	Int32
	// Int64 parses into int64.
	Int64
	// Float32 parses into float32.
	Float32
	// Float64 parses into float64.
	Float64
)

// Kinds lists every supported Kind in declaration order.
func Kinds() []Kind {
	return []Kind{Int8, Int16, Int32, Int64, Float32, Float64}
}

// ErrUnsupportedKind is returned when a destination is outside the supported set.
var ErrUnsupportedKind = fmt.Errorf("ofx(convert): unsupported destination kind: %w", apis.ErrInvalidArgument)

// String returns the Go spelling of the kind ("int8" ... "float64").
// Unknown values render as "Unknown(<n>)".
func (k Kind) String() string {
	switch k {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Valid reports whether k is a supported kind.
func (k Kind) Valid() bool {
	return k >= Int8 && k <= Float64
}

// Bits returns the bit size of k, or 0 for unknown kinds.
func (k Kind) Bits() int {
	switch k {
	case Int8:
		return 8
	case Int16:
		return 16
	case Int32, Float32:
		return 32
	case Int64, Float64:
		return 64
	default:
		return 0
	}
}

// IsFloat reports whether k is a floating point kind.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64
}

// Type returns the builtin Go type for k, or nil for unknown kinds.
func (k Kind) Type() reflect.Type {
	switch k {
	case Int8:
		return reflect.TypeFor[int8]()
	case Int16:
		return reflect.TypeFor[int16]()
	case Int32:
		return reflect.TypeFor[int32]()
	case Int64:
		return reflect.TypeFor[int64]()
	case Float32:
		return reflect.TypeFor[float32]()
	case Float64:
		return reflect.TypeFor[float64]()
	default:
		return nil
	}
}

// ParseKind parses the names produced by String. Matching is
// case-insensitive and surrounding whitespace is trimmed.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
}

// MustParseKind is like ParseKind but panics on invalid input.
func MustParseKind(s string) Kind {
	k, err := ParseKind(s)
	if err != nil {
		panic(err)
	}
	return k
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// float64Type is the result type for interface destinations.
var float64Type = reflect.TypeFor[float64]()

// KindOf maps a destination type to a Kind.
//
// Builtin numeric types and named types whose underlying kind is supported map
// directly. Interface types that float64 satisfies (such as any) map to
// Float64, which has the broadest range. Everything else is unsupported.
func KindOf(t reflect.Type) (Kind, error) {
	if t == nil {
		return 0, fmt.Errorf("%w: <nil>", ErrUnsupportedKind)
	}
	switch t.Kind() {
	case reflect.Int8:
		return Int8, nil
	case reflect.Int16:
		return Int16, nil
	case reflect.Int32:
		return Int32, nil
	case reflect.Int64:
		return Int64, nil
	case reflect.Float32:
		return Float32, nil
	case reflect.Float64:
		return Float64, nil
	case reflect.Interface:
		if float64Type.Implements(t) {
			return Float64, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedKind, t)
}
