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
	"strconv"

	"dirpx.dev/ofx/apis"
)

// Number is the set of destination types ParseAs accepts.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// NewStringToNumber returns the string-to-number converter.
func NewStringToNumber() *StringToNumber {
	return &StringToNumber{}
}

// StringToNumber converts decimal text to int8, int16, int32, int64, float32
// or float64 (and named types over them).
//
// Integers follow strconv.ParseInt in base 10 and floats follow
// strconv.ParseFloat. Values that overflow the destination are parse errors.
// Interface destinations satisfied by float64, such as any, produce float64.
// StringToNumber is stateless and safe for concurrent use.
type StringToNumber struct{}

// Ensure StringToNumber implements apis.Converter.
var _ apis.Converter = (*StringToNumber)(nil)

var (
	stringType = reflect.TypeFor[string]()
	numberType = reflect.TypeFor[any]()
)

// InputType returns string.
func (*StringToNumber) InputType() reflect.Type {
	return stringType
}

// OutputType returns the interface type used for "any number" destinations.
func (*StringToNumber) OutputType() reflect.Type {
	return numberType
}

// Convert parses src, which must be a string, into a value of type dest.
func (c *StringToNumber) Convert(src any, dest reflect.Type) (any, error) {
	s, ok := src.(string)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrSourceNotString, src)
	}
	kind, err := KindOf(dest)
	if err != nil {
		return nil, err
	}

	out := dest
	if dest.Kind() == reflect.Interface {
		out = float64Type
	}
	v := reflect.New(out).Elem()

	if kind.IsFloat() {
		f, err := strconv.ParseFloat(s, kind.Bits())
		if err != nil {
			return nil, &ParseError{Input: s, Kind: kind, Err: err}
		}
		v.SetFloat(f)
	} else {
		n, err := strconv.ParseInt(s, 10, kind.Bits())
		if err != nil {
			return nil, &ParseError{Input: s, Kind: kind, Err: err}
		}
		v.SetInt(n)
	}
	return v.Interface(), nil
}

// CanConvert reports whether Convert(src, dest) would succeed. The only way
// to know is to parse, so it does.
func (c *StringToNumber) CanConvert(src any, dest reflect.Type) bool {
	_, err := c.Convert(src, dest)
	return err == nil
}

// ConvertKind parses s into the builtin type of k.
func (c *StringToNumber) ConvertKind(s string, k Kind) (any, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, k)
	}
	return c.Convert(s, k.Type())
}

// ParseAs parses s into T.
func ParseAs[T Number](s string) (T, error) {
	var c StringToNumber
	v, err := c.Convert(s, reflect.TypeFor[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
