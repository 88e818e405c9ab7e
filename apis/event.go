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

import (
	"fmt"

	"github.com/google/uuid"
)

// EventKind identifies what happened to the objects carried by an Event.
type EventKind int

const (
	// ObjectCreated announces an object created elsewhere that should be indexed.
	ObjectCreated EventKind = iota + 1
	// ObjectDeleted announces an object deleted elsewhere that should be dropped.
	ObjectDeleted
	// ObjectsAdded is published after objects were added to an index.
	ObjectsAdded
	// ObjectsRemoved is published after objects were removed from an index.
	ObjectsRemoved
)

// String returns a short, stable identifier for k.
func (k EventKind) String() string {
	switch k {
	case ObjectCreated:
		return "object.created"
	case ObjectDeleted:
		return "object.deleted"
	case ObjectsAdded:
		return "objects.added"
	case ObjectsRemoved:
		return "objects.removed"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Event is a single notification delivered through an event bus.
type Event struct {
	// ID uniquely identifies this publication.
	ID uuid.UUID
	// Kind is the event kind.
	Kind EventKind
	// Objects are the affected objects.
	Objects []any
}

// NewEvent returns an Event of kind k carrying objs with a fresh ID.
func NewEvent(k EventKind, objs ...any) Event {
	return Event{ID: uuid.New(), Kind: k, Objects: objs}
}

// Object returns the first carried object, or nil.
func (e Event) Object() any {
	if len(e.Objects) == 0 {
		return nil
	}
	return e.Objects[0]
}

// Handler receives events. Handlers run synchronously on the publisher's goroutine.
type Handler func(Event)
