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

package convert_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/ofx/apis"
	"dirpx.dev/ofx/convert"
)

// upper converts strings to upper-case strings.
type upper struct{}

func (upper) Convert(src any, dest reflect.Type) (any, error) {
	s, ok := src.(string)
	if !ok || dest != reflect.TypeFor[string]() {
		return nil, errors.New("upper: unsupported")
	}
	return strings.ToUpper(s), nil
}

func (u upper) CanConvert(src any, dest reflect.Type) bool {
	_, err := u.Convert(src, dest)
	return err == nil
}

func (upper) InputType() reflect.Type  { return reflect.TypeFor[string]() }
func (upper) OutputType() reflect.Type { return reflect.TypeFor[string]() }

func TestRegistry_Dispatch(t *testing.T) {
	r := convert.NewRegistry(nil, upper{}, convert.NewStringToNumber())
	require.Len(t, r.Converters(), 2, "nil converters are skipped")

	got, err := r.Convert("abc", reflect.TypeFor[string]())
	require.NoError(t, err)
	assert.Equal(t, "ABC", got)

	got, err = r.Convert("42", reflect.TypeFor[int32]())
	require.NoError(t, err)
	assert.Equal(t, int32(42), got)

	c, ok := r.Lookup("42", reflect.TypeFor[int8]())
	require.True(t, ok)
	assert.IsType(t, &convert.StringToNumber{}, c)
	assert.True(t, r.CanConvert("1.5", reflect.TypeFor[float64]()))
	assert.False(t, r.CanConvert("abc", reflect.TypeFor[int32]()))
}

func TestRegistry_Errors(t *testing.T) {
	r := convert.NewRegistry(convert.NewStringToNumber())

	// Nobody can convert, but a converter accepts strings: its error surfaces.
	_, err := r.Convert("abc", reflect.TypeFor[int32]())
	assert.ErrorIs(t, err, convert.ErrParse)

	_, err = r.Convert(42, reflect.TypeFor[int32]())
	assert.ErrorIs(t, err, convert.ErrNoConverter)
	assert.ErrorIs(t, err, apis.ErrInvalidArgument)

	_, err = r.Convert(nil, reflect.TypeFor[int32]())
	assert.ErrorIs(t, err, convert.ErrNoConverter)

	assert.ErrorIs(t, r.Register(nil), convert.ErrNilConverter)
}

func TestRegistry_ConvertersIsSnapshot(t *testing.T) {
	r := convert.NewRegistry()
	snap := r.Converters()
	require.NoError(t, r.Register(upper{}))
	assert.Empty(t, snap)
	assert.Len(t, r.Converters(), 1)
}
