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

// Package service implements the object service: an index of live objects
// that announces additions and removals on an event bus and follows
// created/deleted notifications published by the rest of the application.
package service

import (
	"fmt"
	"log/slog"
	"reflect"

	"dirpx.dev/ofx/apis"
	"dirpx.dev/ofx/config"
	"dirpx.dev/ofx/event"
	"dirpx.dev/ofx/index"
	"dirpx.dev/ofx/resolver"
)

// ErrNilObject is returned when a nil object is passed to Name.
var ErrNilObject = fmt.Errorf("ofx(service): nil object provided: %w", apis.ErrInvalidArgument)

// ObjectService keeps track of registered objects.
//
// Objects are added and removed directly or through apis.ObjectCreated and
// apis.ObjectDeleted events on the bus. Every actual change, renames
// included, is announced with apis.ObjectsAdded or apis.ObjectsRemoved;
// no-op calls publish nothing.
//
// ObjectService inherits the concurrency contract of its index: use
// index.Synchronized when the service is shared between goroutines.
type ObjectService struct {
	cfg    apis.Config
	idx    apis.Index
	bus    *event.Bus
	res    apis.Resolver
	log    *slog.Logger
	unsubs []func()
}

// Option configures an ObjectService.
type Option func(*ObjectService)

// WithConfig sets the configuration handed to the resolver.
// The index is built by the caller and keeps its own configuration.
func WithConfig(cfg apis.Config) Option {
	return func(s *ObjectService) {
		s.cfg = config.Sanitize(cfg)
	}
}

// WithBus makes the service publish to and listen on b.
func WithBus(b *event.Bus) Option {
	return func(s *ObjectService) {
		if b != nil {
			s.bus = b
		}
	}
}

// WithResolver replaces the default naming chain.
func WithResolver(r apis.Resolver) Option {
	return func(s *ObjectService) {
		if r != nil {
			s.res = r
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *ObjectService) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates an ObjectService over idx. A nil idx gets a fresh index built
// from the configured Config. The service subscribes to created/deleted
// events immediately; call Close to detach it from the bus.
func New(idx apis.Index, opts ...Option) *ObjectService {
	s := &ObjectService{
		cfg: config.DefaultConfig(),
		idx: idx,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.idx == nil {
		s.idx = index.New(s.cfg)
	}
	if s.bus == nil {
		s.bus = event.NewBus()
	}
	if s.res == nil {
		s.res = resolver.Default(s.idx)
	}

	s.unsubs = append(s.unsubs,
		s.bus.Subscribe(apis.ObjectCreated, s.onCreated),
		s.bus.Subscribe(apis.ObjectDeleted, s.onDeleted),
	)
	return s
}

// Index returns the underlying index.
func (s *ObjectService) Index() apis.Index {
	return s.idx
}

// Bus returns the event bus the service publishes to.
func (s *ObjectService) Bus() *event.Bus {
	return s.bus
}

// Objects returns the registered objects assignable to t, in insertion order.
func (s *ObjectService) Objects(t reflect.Type) []any {
	return s.idx.Get(t)
}

// ObjectsOf returns the objects registered with s that are assignable to T.
func ObjectsOf[T any](s *ObjectService) []T {
	return index.Of[T](s.idx)
}

// AddObject registers obj without a name.
func (s *ObjectService) AddObject(obj any) error {
	return s.AddNamedObject(obj, "")
}

// AddNamedObject registers obj under name and announces the addition.
// Re-registration follows the index's duplicate policy. It is announced
// again only when it changed the registered name (apis.Rename).
func (s *ObjectService) AddNamedObject(obj any, name string) error {
	prev, _ := s.idx.Name(obj)
	added, err := s.idx.Add(obj, name)
	if err != nil {
		return err
	}
	if !added {
		if cur, _ := s.idx.Name(obj); name == "" || name == prev || cur != name {
			s.log.Debug("object already registered", "type", typeOf(obj), "name", name)
			return nil
		}
		s.log.Debug("object renamed", "type", typeOf(obj), "from", prev, "to", name)
		s.bus.Publish(apis.NewEvent(apis.ObjectsAdded, obj))
		return nil
	}
	s.log.Debug("object added", "type", typeOf(obj), "name", name)
	s.bus.Publish(apis.NewEvent(apis.ObjectsAdded, obj))
	return nil
}

// RemoveObject unregisters obj and announces the removal.
// It reports whether obj was registered.
func (s *ObjectService) RemoveObject(obj any) bool {
	if !s.idx.Remove(obj) {
		return false
	}
	s.log.Debug("object removed", "type", typeOf(obj))
	s.bus.Publish(apis.NewEvent(apis.ObjectsRemoved, obj))
	return true
}

// Name returns a display name for obj: its registered name, else its
// apis.Namer name, else its fmt.Stringer rendering, else "pkg.Type@hex".
func (s *ObjectService) Name(obj any) (string, error) {
	if obj == nil {
		return "", ErrNilObject
	}
	return s.res.Resolve(obj, s.cfg), nil
}

// Close detaches the service from the bus. The index is left intact.
func (s *ObjectService) Close() {
	for _, u := range s.unsubs {
		u()
	}
	s.unsubs = nil
}

func (s *ObjectService) onCreated(ev apis.Event) {
	for _, obj := range ev.Objects {
		if err := s.AddObject(obj); err != nil {
			s.log.Warn("cannot register created object", "event", ev.ID, "type", typeOf(obj), "error", err)
		}
	}
}

func (s *ObjectService) onDeleted(ev apis.Event) {
	for _, obj := range ev.Objects {
		s.RemoveObject(obj)
	}
}

func typeOf(obj any) string {
	if obj == nil {
		return "<nil>"
	}
	return reflect.TypeOf(obj).String()
}
