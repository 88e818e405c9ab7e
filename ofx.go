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

package ofx

import (
	"errors"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/ofx/apis"
	"dirpx.dev/ofx/builder"
	"dirpx.dev/ofx/config"
	"dirpx.dev/ofx/convert"
	"dirpx.dev/ofx/event"
	"dirpx.dev/ofx/index"
	"dirpx.dev/ofx/service"
)

// init publishes the default snapshot.
func init() {
	buildMu.Lock()
	defer buildMu.Unlock()
	s := assemble(&state{
		cfg: config.DefaultConfig(),
		bld: builder.New(),
		bus: event.NewBus(),
		log: slog.Default(),
	}, nil)
	s.svc = attach(s)
	st.Store(s)
}

var (
	// ErrNilIndex is returned when a builder returns a nil index.
	ErrNilIndex = errors.New("ofx: builder returned nil index")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("ofx: builder returned nil resolver")
)

// Add registers obj without a name in the process-wide object service.
func Add(obj any) error {
	return st.Load().svc.AddObject(obj)
}

// AddNamed registers obj under name in the process-wide object service.
func AddNamed(obj any, name string) error {
	return st.Load().svc.AddNamedObject(obj, name)
}

// Remove unregisters obj from the process-wide object service.
func Remove(obj any) bool {
	return st.Load().svc.RemoveObject(obj)
}

// Objects returns the registered objects assignable to t.
func Objects(t reflect.Type) []any {
	return st.Load().svc.Objects(t)
}

// ObjectsOf returns the registered objects assignable to T.
func ObjectsOf[T any]() []T {
	return index.Of[T](st.Load().idx)
}

// Name returns the display name of obj. It fails for a nil obj.
func Name(obj any) (string, error) {
	return st.Load().svc.Name(obj)
}

// Publish delivers ev on the process-wide bus. Publishing apis.ObjectCreated
// or apis.ObjectDeleted adds or removes the carried objects.
func Publish(ev apis.Event) {
	st.Load().bus.Publish(ev)
}

// Convert converts src to dest with the registered converters.
func Convert(src any, dest reflect.Type) (any, error) {
	return st.Load().conv.Convert(src, dest)
}

// CanConvert reports whether Convert(src, dest) would succeed.
func CanConvert(src any, dest reflect.Type) bool {
	return st.Load().conv.CanConvert(src, dest)
}

// Service returns the process-wide object service.
func Service() *service.ObjectService {
	return st.Load().svc
}

// Index returns the process-wide index.
func Index() apis.Index {
	return st.Load().idx
}

// Resolver returns the process-wide naming resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// Converters returns the process-wide converter registry.
func Converters() *convert.Registry {
	return st.Load().conv
}

// Bus returns the process-wide event bus. The bus survives every rebuild,
// so subscriptions stay attached.
func Bus() *event.Bus {
	return st.Load().bus
}

// Config returns the process-wide configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig replaces the configuration and rebuilds non-pinned layers.
// The default builder reconfigures the index in place, so objects added
// concurrently with the rebuild are kept.
func SetConfig(cfg apis.Config) {
	update(func(s *state) { s.cfg = config.Sanitize(cfg) })
}

// Builder returns the process-wide builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder replaces the builder and rebuilds non-pinned layers.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	update(func(s *state) { s.bld = b })
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	update(func(s *state) { s.ext = ext })
}

// ExtAs returns the extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// SetLogger sets the logger used by the process-wide object service.
func SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	update(func(s *state) { s.log = l })
}

// SetIndex installs idx as the process-wide index and pins it.
// The caller is responsible for its synchronization.
func SetIndex(idx apis.Index) {
	if idx == nil {
		return
	}
	update(func(s *state) {
		s.idx = idx
		s.pidx = true
	})
}

// IsIndexPinned reports whether the index is pinned.
func IsIndexPinned() bool {
	return st.Load().pidx
}

// PinIndex stops rebuilds from replacing the current index.
func PinIndex() {
	update(func(s *state) { s.pidx = true })
}

// UnpinIndex lets the next rebuild replace the index again.
func UnpinIndex() {
	update(func(s *state) { s.pidx = false })
}

// SetResolver installs res as the process-wide resolver and pins it.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}
	update(func(s *state) {
		s.res = res
		s.pres = true
	})
}

// IsResolverPinned reports whether the resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pres
}

// UnpinResolver lets the next rebuild replace the resolver again.
func UnpinResolver() {
	update(func(s *state) { s.pres = false })
}

// SetAll replaces every component at once. Nil arguments leave the
// corresponding component unchanged (rebuilt when not supplied), except for
// ext which is always replaced. Supplied idx/res are pinned; the others are
// unpinned. Mainly used by tests to get a deterministic snapshot.
func SetAll(cfg *apis.Config, ext any, idx apis.Index, res apis.Resolver, bld apis.Builder) {
	update(func(s *state) {
		if cfg != nil {
			s.cfg = config.Sanitize(*cfg)
		}
		s.ext = ext
		if bld != nil {
			s.bld = bld
		}
		s.idx, s.pidx = idx, idx != nil
		s.res, s.pres = res, res != nil
	})
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the process-wide snapshot.
var st atomic.Pointer[state]

// state is an immutable snapshot published atomically via st.Store; never
// mutate fields of a published state. Writers copy, edit and swap.
type state struct {
	// cfg is the configuration.
	cfg apis.Config
	// ext is the opaque extension config handed to the builder.
	ext any
	// bld builds idx, res and converters.
	bld apis.Builder
	// idx is the object index.
	idx apis.Index
	// res is the naming resolver.
	res apis.Resolver
	// conv dispatches conversions.
	conv *convert.Registry
	// bus carries object events; shared by all snapshots.
	bus *event.Bus
	// log is the service logger.
	log *slog.Logger
	// svc wraps idx, res and bus.
	svc *service.ObjectService
	// pidx indicates whether idx is pinned.
	pidx bool
	// pres indicates whether res is pinned.
	pres bool
}

// update copies the current snapshot, applies edit, rebuilds the dependent
// layers and publishes the result. If the rebuild panics, the current
// snapshot stays published with its service still attached.
func update(edit func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	edit(&next)
	assemble(&next, old)

	next.svc = attach(&next)
	old.svc.Close()
	st.Store(&next)
}

// assemble fills in the non-pinned layers of s from its builder. prev, if
// any, is handed to the builder as the previous index and resolver.
func assemble(s *state, prev *state) *state {
	var prevIdx apis.Index
	var prevRes apis.Resolver
	if prev != nil {
		prevIdx, prevRes = prev.idx, prev.res
	}

	if !s.pidx || s.idx == nil {
		s.idx = s.bld.BuildIndex(s.cfg, prevIdx, s.ext)
		s.pidx = false
	}
	if s.idx == nil {
		panic(ErrNilIndex)
	}
	if !s.pres || s.res == nil {
		s.res = s.bld.BuildResolver(s.cfg, s.idx, prevRes, s.ext)
		s.pres = false
	}
	if s.res == nil {
		panic(ErrNilResolver)
	}

	s.conv = convert.NewRegistry(s.bld.BuildConverters(s.cfg, s.ext)...)
	return s
}

// attach creates the object service for s and subscribes it to the bus.
func attach(s *state) *service.ObjectService {
	return service.New(s.idx,
		service.WithConfig(s.cfg),
		service.WithBus(s.bus),
		service.WithResolver(s.res),
		service.WithLogger(s.log),
	)
}
