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

package index_test

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/ofx/apis"
	"dirpx.dev/ofx/config"
	"dirpx.dev/ofx/index"
)

type shape interface{ Area() int }

type square struct{ side int }

func (s *square) Area() int { return s.side * s.side }

type rect struct{ w, h int }

func (r *rect) Area() int { return r.w * r.h }

type label struct{ text string }

func (l *label) String() string { return l.text }

var (
	shapeType    = reflect.TypeFor[shape]()
	stringerType = reflect.TypeFor[fmt.Stringer]()
	anyType      = reflect.TypeFor[any]()
)

func newIndex(opts ...config.Option) *index.NamedObjectIndex {
	return index.New(config.NewConfig(opts...))
}

func TestAdd_GetCovariant(t *testing.T) {
	idx := newIndex()
	sq := &square{side: 2}
	rc := &rect{w: 2, h: 3}
	lb := &label{text: "hello"}

	for _, o := range []any{sq, lb, rc} {
		added, err := idx.Add(o, "")
		require.NoError(t, err)
		require.True(t, added)
	}

	assert.Equal(t, []any{sq, rc}, idx.Get(shapeType), "interface query returns implementations in insertion order")
	assert.Equal(t, []any{lb}, idx.Get(stringerType))
	assert.Equal(t, []any{sq, lb, rc}, idx.Get(anyType))
	assert.Equal(t, []any{rc}, idx.Get(reflect.TypeOf(rc)), "exact type")
	assert.Empty(t, idx.Get(reflect.TypeFor[square]()), "value type is not assignable from pointer")
	assert.Empty(t, idx.Get(reflect.TypeFor[error]()), "unrelated interface")
	assert.Nil(t, idx.Get(nil))
	assert.Equal(t, 3, idx.Len())
}

func TestAdd_NilObject(t *testing.T) {
	idx := newIndex()
	_, err := idx.Add(nil, "x")
	require.ErrorIs(t, err, index.ErrNilObject)
	require.ErrorIs(t, err, apis.ErrInvalidArgument)
	assert.Equal(t, 0, idx.Len())
}

func TestAdd_NotIdentifiable(t *testing.T) {
	type holder struct{ items []int }
	idx := newIndex()
	_, err := idx.Add(holder{items: []int{1}}, "")
	require.ErrorIs(t, err, index.ErrNotIdentifiable)
	require.ErrorIs(t, err, apis.ErrInvalidArgument)

	// The same value behind a pointer has an address and is accepted.
	added, err := idx.Add(&holder{items: []int{1}}, "")
	require.NoError(t, err)
	assert.True(t, added)
}

func TestAdd_IdentityNotEquality(t *testing.T) {
	idx := newIndex()
	a := &square{side: 1}
	b := &square{side: 1}

	_, err := idx.Add(a, "")
	require.NoError(t, err)
	added, err := idx.Add(b, "")
	require.NoError(t, err)
	assert.True(t, added, "equal but distinct pointers are distinct objects")
	assert.Equal(t, 2, idx.Len())
	assert.True(t, idx.Contains(a))
	assert.True(t, idx.Contains(b))
	assert.False(t, idx.Contains(&square{side: 1}))
}

func TestAdd_ValueObjects(t *testing.T) {
	idx := newIndex()
	_, err := idx.Add(42, "answer")
	require.NoError(t, err)
	_, err = idx.Add("42", "text")
	require.NoError(t, err)

	assert.Equal(t, 2, idx.Len(), "int 42 and string \"42\" are different objects")
	name, ok := idx.Name(42)
	assert.True(t, ok)
	assert.Equal(t, "answer", name)
	assert.Equal(t, []any{42}, idx.Get(reflect.TypeFor[int]()))
}

func TestDuplicatePolicy(t *testing.T) {
	obj := &square{side: 3}

	t.Run("ignore", func(t *testing.T) {
		idx := newIndex(config.WithDuplicates(apis.Ignore))
		added, err := idx.Add(obj, "first")
		require.NoError(t, err)
		require.True(t, added)

		added, err = idx.Add(obj, "second")
		require.NoError(t, err)
		assert.False(t, added)
		name, _ := idx.Name(obj)
		assert.Equal(t, "first", name)
		assert.Equal(t, 1, idx.Len())
	})

	t.Run("rename", func(t *testing.T) {
		idx := newIndex(config.WithDuplicates(apis.Rename))
		_, err := idx.Add(obj, "first")
		require.NoError(t, err)

		added, err := idx.Add(obj, "second")
		require.NoError(t, err)
		assert.False(t, added)
		name, _ := idx.Name(obj)
		assert.Equal(t, "second", name)

		// An empty name never erases an existing one.
		_, err = idx.Add(obj, "")
		require.NoError(t, err)
		name, _ = idx.Name(obj)
		assert.Equal(t, "second", name)
		assert.Equal(t, 1, idx.Len())
	})

	t.Run("reject", func(t *testing.T) {
		idx := newIndex(config.WithDuplicates(apis.Reject))
		_, err := idx.Add(obj, "first")
		require.NoError(t, err)

		added, err := idx.Add(obj, "second")
		require.ErrorIs(t, err, index.ErrDuplicateObject)
		assert.False(t, added)
		name, _ := idx.Name(obj)
		assert.Equal(t, "first", name)
		assert.Equal(t, 1, idx.Len())
	})
}

func TestRemove(t *testing.T) {
	idx := newIndex()
	a, b, c := &square{side: 1}, &rect{w: 1, h: 2}, &square{side: 3}
	for _, o := range []any{a, b, c} {
		_, err := idx.Add(o, "")
		require.NoError(t, err)
	}

	assert.True(t, idx.Remove(b))
	assert.False(t, idx.Remove(b), "second removal is a no-op")
	assert.False(t, idx.Remove(nil))
	assert.False(t, idx.Remove(&square{side: 1}))

	assert.Equal(t, []any{a, c}, idx.Get(anyType))
	assert.Equal(t, []any{a, c}, idx.Get(shapeType))
	assert.False(t, idx.Contains(b))

	// Positions stay consistent after removal from the middle.
	assert.True(t, idx.Remove(c))
	assert.Equal(t, []any{a}, idx.All())
	assert.True(t, idx.Remove(a))
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.All())
}

func TestRemove_ThenReAdd(t *testing.T) {
	idx := newIndex(config.WithDuplicates(apis.Reject))
	a := &square{side: 1}
	_, err := idx.Add(a, "a")
	require.NoError(t, err)
	require.True(t, idx.Remove(a))

	added, err := idx.Add(a, "again")
	require.NoError(t, err)
	assert.True(t, added)
	name, _ := idx.Name(a)
	assert.Equal(t, "again", name)
}

func TestNameAndEntries(t *testing.T) {
	idx := newIndex()
	named, unnamed := &label{text: "x"}, &label{text: "y"}
	_, _ = idx.Add(named, "primary")
	_, _ = idx.Add(unnamed, "")

	name, ok := idx.Name(named)
	assert.True(t, ok)
	assert.Equal(t, "primary", name)

	_, ok = idx.Name(unnamed)
	assert.False(t, ok, "unnamed entry")
	_, ok = idx.Name(&label{})
	assert.False(t, ok, "unknown object")
	_, ok = idx.Name(nil)
	assert.False(t, ok)

	entries := idx.Entries()
	require.Len(t, entries, 2)
	assert.Same(t, named, entries[0].Object)
	assert.Equal(t, "primary", entries[0].Name)
	assert.Equal(t, reflect.TypeOf(named), entries[0].Type)
	assert.Equal(t, "", entries[1].Name)
}

func TestClear(t *testing.T) {
	idx := newIndex()
	a := &square{side: 1}
	_, _ = idx.Add(a, "a")
	snap := idx.Entries()

	idx.Clear()
	assert.Equal(t, 0, idx.Len())
	assert.False(t, idx.Contains(a))
	assert.Len(t, snap, 1, "snapshots survive Clear")

	added, err := idx.Add(a, "")
	require.NoError(t, err)
	assert.True(t, added)
}

func TestReferenceKinds(t *testing.T) {
	idx := newIndex(config.WithDuplicates(apis.Reject))
	m := map[string]int{"a": 1}
	ch := make(chan int)
	s := []int{1, 2, 3}

	for _, o := range []any{m, ch, s, s[:2]} {
		_, err := idx.Add(o, "")
		require.NoError(t, err, "%T", o)
	}
	assert.Equal(t, 4, idx.Len(), "a shorter reslice is a different object")

	_, err := idx.Add(m, "")
	assert.True(t, errors.Is(err, index.ErrDuplicateObject), "maps are identified by reference")
	assert.True(t, idx.Remove(s))
	assert.True(t, idx.Contains(s[:2]))
}

func TestOf(t *testing.T) {
	idx := newIndex()
	sq, rc := &square{side: 2}, &rect{w: 1, h: 5}
	_, _ = idx.Add(sq, "")
	_, _ = idx.Add(&label{text: "l"}, "")
	_, _ = idx.Add(rc, "")

	shapes := index.Of[shape](idx)
	require.Len(t, shapes, 2)
	assert.Equal(t, 4, shapes[0].Area())
	assert.Equal(t, 5, shapes[1].Area())

	assert.Equal(t, []*rect{rc}, index.Of[*rect](idx))
	assert.Empty(t, index.Of[error](idx))
}

func TestOf_AssignableUnnamedTypes(t *testing.T) {
	idx := newIndex()
	fn := apis.NamerFunc(func() string { return "fn" })
	ch := make(chan int, 1)
	_, _ = idx.Add(fn, "")
	_, _ = idx.Add(ch, "")

	fns := index.Of[func() string](idx)
	require.Len(t, fns, 1)
	assert.Equal(t, "fn", fns[0]())

	recv := index.Of[<-chan int](idx)
	require.Len(t, recv, 1)
	ch <- 7
	assert.Equal(t, 7, <-recv[0], "the converted channel is the registered one")
}

func TestAdd_NaN(t *testing.T) {
	idx := newIndex()
	_, err := idx.Add(math.NaN(), "")
	assert.ErrorIs(t, err, index.ErrNotIdentifiable)
	assert.ErrorIs(t, err, apis.ErrInvalidArgument)
	assert.Zero(t, idx.Len())
	assert.False(t, idx.Contains(math.NaN()))
}

func TestReconfigure(t *testing.T) {
	idx := newIndex()
	sq := &square{side: 1}
	_, _ = idx.Add(sq, "one")

	idx.Reconfigure(config.NewConfig(config.WithDuplicates(apis.Reject)))
	_, err := idx.Add(sq, "")
	assert.ErrorIs(t, err, index.ErrDuplicateObject)
	name, ok := idx.Name(sq)
	assert.True(t, ok)
	assert.Equal(t, "one", name, "entries survive reconfiguration")

	s := index.Synchronized(idx)
	require.True(t, index.IsSynchronized(s))
	assert.False(t, index.IsSynchronized(idx))
	s.(index.Reconfigurable).Reconfigure(config.NewConfig(config.WithDuplicates(apis.Rename)))
	_, err = s.Add(sq, "renamed")
	require.NoError(t, err)
	name, _ = s.Name(sq)
	assert.Equal(t, "renamed", name)
}
