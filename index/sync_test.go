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
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/ofx/apis"
	"dirpx.dev/ofx/config"
	"dirpx.dev/ofx/index"
)

// TestSynchronized_ConcurrentAddGetRemove verifies that the synchronized
// wrapper keeps the index consistent under concurrent use.
func TestSynchronized_ConcurrentAddGetRemove(t *testing.T) {
	idx := index.Synchronized(index.New(config.DefaultConfig()))

	// Baseline objects that are never removed.
	base := make([]*square, 10)
	for i := range base {
		base[i] = &square{side: i + 1}
		if _, err := idx.Add(base[i], ""); err != nil {
			t.Fatalf("add base %d: %v", i, err)
		}
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				if got := idx.Get(shapeType); len(got) < len(base) {
					t.Errorf("Get(shape) returned %d objects, want at least %d", len(got), len(base))
					return
				}
				_ = idx.Len()
				_ = idx.Entries()
				_, _ = idx.Name(base[i%len(base)])
			}
		}()
	}

	// Writers: add and remove private objects, re-add base objects.
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				r := &rect{w: id, h: i}
				if _, err := idx.Add(r, "tmp"); err != nil {
					t.Errorf("add: %v", err)
					return
				}
				_, _ = idx.Add(base[(i+id)%len(base)], "") // idempotent
				if !idx.Remove(r) {
					t.Errorf("remove: object vanished")
					return
				}
			}
		}(w)
	}

	wg.Wait()

	if idx.Len() != len(base) {
		t.Fatalf("len mismatch: got %d want %d", idx.Len(), len(base))
	}
	for i, obj := range idx.All() {
		if obj != any(base[i]) {
			t.Fatalf("order mismatch at %d: got %v want %v", i, obj, base[i])
		}
	}
}

func TestSynchronized_Idempotent(t *testing.T) {
	inner := index.New(config.DefaultConfig())
	s := index.Synchronized(inner)
	if index.Synchronized(s) != s {
		t.Fatal("wrapping a synchronized index must return it unchanged")
	}

	obj := &label{text: "a"}
	if _, err := s.Add(obj, "a"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if !inner.Contains(obj) {
		t.Fatal("wrapper must delegate to the wrapped index")
	}
	if got := s.Get(reflect.TypeOf(obj)); len(got) != 1 {
		t.Fatalf("Get: got %d objects, want 1", len(got))
	}
	s.Clear()
	if inner.Len() != 0 {
		t.Fatalf("Clear: inner len = %d, want 0", inner.Len())
	}
}

// This ensures the interface is satisfied; not a test but a compile-time check.
var _ apis.Index = index.Synchronized(index.New(config.DefaultConfig()))
