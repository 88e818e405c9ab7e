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

package reflect_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/ofx/apis"
	uref "dirpx.dev/ofx/utils/reflect"
)

// Local test types.
type A struct{ n int }
type G[T any] struct{ v T }

// cfg returns a convenient baseline Config for tests.
func cfg(opts ...func(*apis.Config)) apis.Config {
	c := apis.Config{
		IncludeBuiltins: true,
		MaxUnwrap:       8,
		MapPreferElem:   true,
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func TestNormalize_Containers(t *testing.T) {
	want := reflect.TypeOf(A{})
	cases := map[string]reflect.Type{
		"plain": reflect.TypeOf(A{}),
		"ptr":   reflect.TypeOf(&A{}),
		"slice": reflect.TypeOf([]A{}),
		"array": reflect.TypeOf([2]A{}),
		"chan":  reflect.TypeOf((chan A)(nil)),
		"map":   reflect.TypeOf(map[string]A{}),
	}
	for name, typ := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := uref.Normalize(typ, cfg())
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestNormalize_MapPreference(t *testing.T) {
	tMap := reflect.TypeOf(map[string]A{})

	got, err := uref.Normalize(tMap, cfg(func(c *apis.Config) { c.MapPreferElem = false }))
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(""), got)

	// Unnamed element falls back to the key.
	tAnon := reflect.TypeOf(map[string]struct{ X int }{})
	got, err = uref.Normalize(tAnon, cfg())
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(""), got)
}

func TestNormalize_MaxUnwrap(t *testing.T) {
	tPP := reflect.TypeOf((**A)(nil))

	_, err := uref.Normalize(tPP, cfg(func(c *apis.Config) { c.MaxUnwrap = 1 }))
	assert.ErrorIs(t, err, uref.ErrReflectTypeNotNamed)

	got, err := uref.Normalize(tPP, cfg())
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(A{}), got)

	// Zero falls back to the default depth.
	got, err = uref.Normalize(tPP, cfg(func(c *apis.Config) { c.MaxUnwrap = 0 }))
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(A{}), got)
}

func TestNormalize_Errors(t *testing.T) {
	_, err := uref.Normalize(nil, cfg())
	assert.ErrorIs(t, err, uref.ErrReflectNilType)

	_, err = uref.Normalize(reflect.TypeOf(struct{ X int }{}), cfg())
	assert.ErrorIs(t, err, uref.ErrReflectTypeNotNamed)
}

func TestTypeName(t *testing.T) {
	cases := []struct {
		name string
		typ  reflect.Type
		cfg  apis.Config
		want string
	}{
		{"named", reflect.TypeOf(A{}), cfg(), "reflect_test.A"},
		{"pointer", reflect.TypeOf(&A{}), cfg(), "reflect_test.A"},
		{"generic strips params", reflect.TypeOf(G[int]{}), cfg(), "reflect_test.G"},
		{"builtin visible", reflect.TypeOf(0), cfg(), "int"},
		{"builtin hidden", reflect.TypeOf(0), cfg(func(c *apis.Config) { c.IncludeBuiltins = false }), "builtin.int"},
		{"anonymous", reflect.TypeOf(struct{ X int }{}), cfg(), "struct { X int }"},
		{"nil", nil, cfg(), "<nil>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, uref.TypeName(tc.typ, tc.cfg))
			// Second call hits the cache and must agree.
			assert.Equal(t, tc.want, uref.TypeName(tc.typ, tc.cfg))
		})
	}
}
