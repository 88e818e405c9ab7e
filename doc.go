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

// Package ofx provides a process-wide registry of live application objects
// and the string-to-number conversion used when binding textual input to
// numeric parameters.
//
// The registry indexes arbitrary Go values by runtime type and optional
// display name. Widgets and other consumers ask it for "every object usable
// as T" and for a human-readable name of each one:
//
//	ofx.AddNamed(img, "cells.tif")
//	for _, d := range ofx.ObjectsOf[Dataset]() {
//	    name, _ := ofx.Name(d)
//	    ...
//	}
//
// # Design
//
// The core is a read-mostly snapshot (state) published through an atomic
// pointer. A snapshot holds:
//
//   - Config: duplicate policy and type-naming knobs.
//
//   - Index: the objects themselves, in insertion order, keyed by identity
//     (address for pointer-like values, value otherwise). Lookup by type is
//     covariant: Objects(t) returns every object whose dynamic type is
//     assignable to t, so interface queries see all implementations.
//
//   - Resolver: the naming chain used by Name:
//     1. the name given at registration time,
//     2. apis.Namer.EntityName(), if non-empty,
//     3. fmt.Stringer.String(), if non-empty,
//     4. a synthesized "pkg.Type@hex".
//
//   - Converters: a convert.Registry seeded with convert.StringToNumber.
//
//   - Builder: the bootstrap that constructs Index, Resolver and converters
//     for a Config. Plugins are registered explicitly here; nothing is
//     discovered by scanning.
//
//   - Bus: a synchronous event bus. The object service listens for
//     apis.ObjectCreated / apis.ObjectDeleted and announces
//     apis.ObjectsAdded / apis.ObjectsRemoved after every actual change.
//     The bus outlives snapshots, so subscribers never need to re-subscribe.
//
// # Concurrency model
//
// Reads load the current snapshot atomically and never take the build lock.
// The default builder wraps the index with index.Synchronized, so the
// package-level helpers are safe for concurrent use. A plain
// index.NamedObjectIndex (and a service.ObjectService built over one) is not:
// callers own its synchronization.
//
// Writers (SetConfig, SetBuilder, SetExt, SetIndex, SetResolver, SetAll, ...)
// take a short build mutex, assemble a new snapshot, migrate indexed objects
// into any rebuilt index, and publish it.
//
// # Pinning
//
// SetIndex and SetResolver install caller-owned layers and pin them: later
// rebuilds leave pinned layers alone until UnpinIndex / UnpinResolver.
//
// # Re-registration
//
// Adding an object that is already indexed is governed by
// apis.Config.Duplicates: Ignore (default) keeps the entry untouched, Rename
// lets a non-empty name overwrite the old one, Reject returns
// index.ErrDuplicateObject. No policy ever stores an object twice, and only
// actual insertions publish apis.ObjectsAdded.
package ofx
