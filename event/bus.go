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

package event

import (
	"sync"

	"dirpx.dev/ofx/apis"
)

// Publisher accepts events for delivery.
type Publisher interface {
	Publish(ev apis.Event)
}

// Bus is a synchronous, in-process event bus.
//
// Handlers run on the publisher's goroutine in subscription order. Publish
// takes a snapshot of the subscriber list first, so handlers may subscribe,
// unsubscribe or publish without deadlocking. Bus is safe for concurrent use.
type Bus struct {
	mu   sync.RWMutex
	subs []subscription
	next uint64
}

// subscription is a handler bound to one kind, or to all kinds when kind is 0.
type subscription struct {
	id      uint64
	kind    apis.EventKind
	handler apis.Handler
}

// Ensure Bus implements Publisher.
var _ Publisher = (*Bus)(nil)

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h for events of kind k and returns a function that
// removes the registration. Calling the returned function more than once is a no-op.
// A nil handler is ignored.
func (b *Bus) Subscribe(k apis.EventKind, h apis.Handler) (unsubscribe func()) {
	return b.subscribe(k, h)
}

// SubscribeAll registers h for events of every kind.
func (b *Bus) SubscribeAll(h apis.Handler) (unsubscribe func()) {
	return b.subscribe(0, h)
}

func (b *Bus) subscribe(k apis.EventKind, h apis.Handler) func() {
	if h == nil {
		return func() {}
	}

	b.mu.Lock()
	b.next++
	id := b.next
	b.subs = append(b.subs, subscription{id: id, kind: k, handler: h})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers ev to every matching handler.
func (b *Bus) Publish(ev apis.Event) {
	b.mu.RLock()
	subs := b.subs
	b.mu.RUnlock()

	for _, s := range subs {
		if s.kind == 0 || s.kind == ev.Kind {
			s.handler(ev)
		}
	}
}

// Len returns the number of active subscriptions.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Discard is a Publisher that drops every event.
var Discard Publisher = discard{}

type discard struct{}

func (discard) Publish(apis.Event) {}
