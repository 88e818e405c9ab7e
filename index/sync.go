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
	"sync"

	"dirpx.dev/ofx/apis"
)

// Synchronized wraps idx so that every method holds a lock.
// Reads share an RWMutex read lock; mutations take the write lock.
// Wrapping an already synchronized index returns it unchanged.
func Synchronized(idx apis.Index) apis.Index {
	if s, ok := idx.(*syncIndex); ok {
		return s
	}
	return &syncIndex{idx: idx}
}

// IsSynchronized reports whether idx was returned by Synchronized.
func IsSynchronized(idx apis.Index) bool {
	_, ok := idx.(*syncIndex)
	return ok
}

type syncIndex struct {
	mu  sync.RWMutex
	idx apis.Index
}

// Ensure syncIndex implements apis.Index.
var _ apis.Index = (*syncIndex)(nil)

func (s *syncIndex) Add(obj any, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx.Add(obj, name)
}

func (s *syncIndex) Remove(obj any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idx.Remove(obj)
}

func (s *syncIndex) Get(t reflect.Type) []any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx.Get(t)
}

func (s *syncIndex) All() []any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx.All()
}

func (s *syncIndex) Entries() []apis.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx.Entries()
}

func (s *syncIndex) Name(obj any) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx.Name(obj)
}

func (s *syncIndex) Contains(obj any) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx.Contains(obj)
}

func (s *syncIndex) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx.Len()
}

func (s *syncIndex) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idx.Clear()
}

// Reconfigure forwards cfg to the wrapped index if it is Reconfigurable.
func (s *syncIndex) Reconfigure(cfg apis.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.idx.(Reconfigurable); ok {
		r.Reconfigure(cfg)
	}
}
