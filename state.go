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

package typemeta

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"dirpx.dev/typemeta/apis"
	"dirpx.dev/typemeta/builder"
	"dirpx.dev/typemeta/config"
)

// init seeds the global snapshot with the default config and builder.
func init() {
	s := &state{cfg: config.DefaultConfig(), bld: builder.New()}
	s.res = s.bld.BuildResolver(s.cfg, nil)
	st.Store(s)
}

// ErrNilResolver is raised when a builder returns a nil resolver.
var ErrNilResolver = errors.New("typemeta: builder returned nil resolver")

// Config returns the configuration used for fallback names.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig replaces the configuration and rebuilds the resolver unless it
// is pinned. Records that already exist keep their names.
func SetConfig(cfg apis.Config) {
	update(func(old *state) *state {
		next := old.clone()
		next.cfg = cfg
		if !old.pres {
			next.res = mustResolver(old.bld.BuildResolver(cfg, old.res))
		}
		return next
	})
}

// Resolver returns the resolver used for fallback names.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver installs res and pins it: later SetConfig or SetBuilder calls
// leave it in place until UnpinResolver. A nil res is ignored.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}
	update(func(old *state) *state {
		next := old.clone()
		next.res = res
		next.pres = true
		return next
	})
}

// UnpinResolver rebuilds the resolver from the current builder and config
// and lets future reconfiguration replace it again.
func UnpinResolver() {
	update(func(old *state) *state {
		next := old.clone()
		next.res = mustResolver(old.bld.BuildResolver(old.cfg, old.res))
		next.pres = false
		return next
	})
}

// IsResolverPinned reports whether the resolver was set explicitly.
func IsResolverPinned() bool {
	return st.Load().pres
}

// Builder returns the builder used to assemble resolvers.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder installs b and rebuilds the resolver unless it is pinned.
// A nil b is ignored. It panics with ErrNilResolver if b produces nil.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	update(func(old *state) *state {
		next := old.clone()
		next.bld = b
		if !old.pres {
			next.res = mustResolver(b.BuildResolver(old.cfg, old.res))
		}
		return next
	})
}

// Logger returns the logger used for registry events.
func Logger() *slog.Logger {
	return st.Load().logger()
}

// SetLogger routes registry events to l. A nil l restores slog.Default.
func SetLogger(l *slog.Logger) {
	update(func(old *state) *state {
		next := old.clone()
		next.log = l
		return next
	})
}

func mustResolver(res apis.Resolver) apis.Resolver {
	if res == nil {
		panic(ErrNilResolver)
	}
	return res
}

// update derives and publishes a new snapshot under buildMu. If fn panics
// nothing is published.
func update(fn func(old *state) *state) {
	buildMu.Lock()
	defer buildMu.Unlock()
	st.Store(fn(st.Load()))
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global snapshot.
var st atomic.Pointer[state]

// state is the global snapshot.
// Immutable once published via st.Store; never mutate fields of a published
// state. Writers clone, modify the clone and swap it in atomically.
type state struct {
	// cfg drives fallback naming.
	cfg apis.Config
	// res resolves fallback names.
	res apis.Resolver
	// bld assembles res from cfg.
	bld apis.Builder
	// log receives registry events; nil means slog.Default().
	log *slog.Logger
	// pres indicates whether res is pinned.
	pres bool
}

func (s *state) clone() *state {
	c := *s
	return &c
}

func (s *state) logger() *slog.Logger {
	if s.log != nil {
		return s.log
	}
	return slog.Default()
}
