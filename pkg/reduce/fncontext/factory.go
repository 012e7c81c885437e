/*
Copyright 2024 The Reduceflow Authors.

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

package fncontext

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rangerwolf/reduceflow/pkg/shared/logging"
	"github.com/rangerwolf/reduceflow/pkg/state"
	"github.com/rangerwolf/reduceflow/pkg/timer"
	"github.com/rangerwolf/reduceflow/pkg/window"
)

// Factory builds the call contexts for one key of one reduce stage. The
// engine creates a Factory per keyed invocation stream and calls one of the
// For* constructors per reduce function invocation. Construction is pure
// wiring: no storage or timer I/O happens until the reduce function goes
// through the returned context, and every call produces a fresh object graph
// with no caching in between.
type Factory[K any, I any, O any, W window.Comparable] struct {
	key           K
	windowing     *window.Windowing[W]
	store         state.Store[K]
	activeWindows window.ActiveSet[W]
	registry      timer.Registry
	// options are the engine's execution options, passed through opaquely to
	// the store on every state lookup
	options any
	log     *zap.SugaredLogger
}

// NewFactory wires a context factory for the given key. All collaborators are
// required; a nil collaborator is a bug in the surrounding engine.
func NewFactory[K any, I any, O any, W window.Comparable](
	ctx context.Context,
	key K,
	windowing *window.Windowing[W],
	store state.Store[K],
	activeWindows window.ActiveSet[W],
	registry timer.Registry,
	options any) *Factory[K, I, O, W] {
	if windowing == nil || windowing.Coder == nil {
		panic("fncontext: factory requires a windowing policy with a coder")
	}
	if store == nil {
		panic("fncontext: factory requires a state store")
	}
	if activeWindows == nil {
		panic("fncontext: factory requires an active window set")
	}
	if registry == nil {
		panic("fncontext: factory requires a timer registry")
	}
	return &Factory[K, I, O, W]{
		key:           key,
		windowing:     windowing,
		store:         store,
		activeWindows: activeWindows,
		registry:      registry,
		options:       options,
		log:           logging.FromContext(ctx),
	}
}

func (f *Factory[K, I, O, W]) stateAccessorFor(w W, style Style) *stateAccessor[K, W] {
	return newStateAccessor(f.activeWindows, f.windowing.Coder, f.store, state.NewContext(f.options, w), w, style)
}

// Base returns a plain context for the window under the given style.
func (f *Factory[K, I, O, W]) Base(w W, style Style) *Context[K, I, O, W] {
	contextsBuilt.WithLabelValues("base").Inc()
	accessor := f.stateAccessorFor(w, style)
	return &Context[K, I, O, W]{
		key:       f.key,
		window:    w,
		windowing: f.windowing,
		state:     accessor,
		timers:    newTimers(f.registry, accessor.namespace()),
	}
}

// ForValue returns the context for processing one element, carrying the value
// and its event timestamp.
func (f *Factory[K, I, O, W]) ForValue(w W, value I, timestamp time.Time, style Style) *ProcessValueContext[K, I, O, W] {
	contextsBuilt.WithLabelValues("value").Inc()
	accessor := f.stateAccessorFor(w, style)
	return &ProcessValueContext[K, I, O, W]{
		Context: Context[K, I, O, W]{
			key:       f.key,
			window:    w,
			windowing: f.windowing,
			state:     accessor,
			timers:    newTimers(f.registry, accessor.namespace()),
		},
		value:     value,
		timestamp: timestamp,
	}
}

// ForTrigger returns the context for a trigger firing, carrying the pane
// metadata and the output callback results are emitted through.
func (f *Factory[K, I, O, W]) ForTrigger(w W, pane window.PaneInfo, style Style, callbacks OnTriggerCallbacks[O]) *OnTriggerContext[K, I, O, W] {
	contextsBuilt.WithLabelValues("trigger").Inc()
	accessor := f.stateAccessorFor(w, style)
	return &OnTriggerContext[K, I, O, W]{
		Context: Context[K, I, O, W]{
			key:       f.key,
			window:    w,
			windowing: f.windowing,
			state:     accessor,
			timers:    newTimers(f.registry, accessor.namespace()),
		},
		pane:      pane,
		callbacks: callbacks,
	}
}

// ForMerge returns the context for committing a merge of toBeMerged into
// mergeResult: single-window state resolves to the merged write address,
// per-window state still sees each source window's pre-merge address.
func (f *Factory[K, I, O, W]) ForMerge(toBeMerged []W, mergeResult W, style Style) *OnMergeContext[K, I, O, W] {
	contextsBuilt.WithLabelValues("merge").Inc()
	f.log.Debugw("Building merge context", zap.Int("windows", len(toBeMerged)))
	accessor := newMergingStateAccessor(f.activeWindows, f.windowing.Coder, f.store, toBeMerged, mergeResult, style)
	return &OnMergeContext[K, I, O, W]{
		key:       f.key,
		window:    mergeResult,
		windowing: f.windowing,
		state:     accessor,
		timers:    newTimers(f.registry, accessor.namespace()),
	}
}

// ForPremerge returns the context for inspecting a window's candidate state
// before any merge is committed. Premerge is always Renamed, and its state
// view enumerates every read address the active window set reports.
func (f *Factory[K, I, O, W]) ForPremerge(w W) *OnMergeContext[K, I, O, W] {
	contextsBuilt.WithLabelValues("premerge").Inc()
	accessor := newPremergingStateAccessor(f.activeWindows, f.windowing.Coder, f.store, w)
	return &OnMergeContext[K, I, O, W]{
		key:       f.key,
		window:    w,
		windowing: f.windowing,
		state:     accessor,
		timers:    newTimers(f.registry, accessor.namespace()),
	}
}
