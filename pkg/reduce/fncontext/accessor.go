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
	"github.com/rangerwolf/reduceflow/pkg/state"
	"github.com/rangerwolf/reduceflow/pkg/window"
)

// StateAccessor resolves a named state tag to the storage handle backing it
// for the context's window, under the context's addressing style.
type StateAccessor[K any] interface {
	Access(tag state.Tag[K]) state.State
}

// MergingStateAccessor additionally resolves state across every window taking
// part in a merge, so the reduce function can read each source window's
// accumulator and fold them together.
type MergingStateAccessor[K any, W window.Comparable] interface {
	StateAccessor[K]
	// AccessInEachMergingWindow returns one handle per merging window, each
	// resolved under that window's pre-merge addressing.
	AccessInEachMergingWindow(tag state.Tag[K]) map[W]state.State
}

// PremergingStateAccessor is the MergingStateAccessor served before a merge
// decision is final. It additionally exposes the raw candidate address set
// for merge-decision logic outside this layer.
type PremergingStateAccessor[K any, W window.Comparable] interface {
	MergingStateAccessor[K, W]
	MergingWindows() []W
}

// stateAccessor resolves state for a single window.
type stateAccessor[K any, W window.Comparable] struct {
	activeWindows   window.ActiveSet[W]
	coder           window.Coder[W]
	store           state.Store[K]
	sctx            state.Context
	window          W
	windowNamespace state.Namespace
	style           Style
}

var _ StateAccessor[string] = (*stateAccessor[string, *window.IntervalWindow])(nil)

func newStateAccessor[K any, W window.Comparable](
	activeWindows window.ActiveSet[W],
	coder window.Coder[W],
	store state.Store[K],
	sctx state.Context,
	w W,
	style Style) *stateAccessor[K, W] {
	if sctx == nil {
		panic("fncontext: state accessor requires a state context")
	}
	a := &stateAccessor[K, W]{
		activeWindows: activeWindows,
		coder:         coder,
		store:         store,
		sctx:          sctx,
		window:        w,
		style:         style,
	}
	// the window's own namespace is pure to derive and is needed for timers
	// even under Renamed, so it is computed once up front
	a.windowNamespace = a.namespaceFor(w)
	return a
}

func (a *stateAccessor[K, W]) namespaceFor(w W) state.Namespace {
	return state.ForWindow(a.coder.Encode(w))
}

// namespace returns the window's own namespace, which also scopes the
// context's timers. Timer scoping never follows state renames.
func (a *stateAccessor[K, W]) namespace() state.Namespace {
	return a.windowNamespace
}

func (a *stateAccessor[K, W]) Access(tag state.Tag[K]) state.State {
	ns := a.style.resolve(
		func() state.Namespace { return a.windowNamespace },
		func() state.Namespace { return a.namespaceFor(a.activeWindows.WriteStateAddress(a.window)) },
	)
	namespaceResolutions.WithLabelValues(a.style.String()).Inc()
	return a.store.State(ns, tag, a.sctx)
}

// mergingStateAccessor resolves state for a committed merge: single-window
// access goes to the merged write address, per-window access still sees each
// source window's pre-merge address.
type mergingStateAccessor[K any, W window.Comparable] struct {
	stateAccessor[K, W]
	toBeMerged []W
}

var _ MergingStateAccessor[string, *window.IntervalWindow] = (*mergingStateAccessor[string, *window.IntervalWindow])(nil)

func newMergingStateAccessor[K any, W window.Comparable](
	activeWindows window.ActiveSet[W],
	coder window.Coder[W],
	store state.Store[K],
	toBeMerged []W,
	mergeResult W,
	style Style) *mergingStateAccessor[K, W] {
	return &mergingStateAccessor[K, W]{
		stateAccessor: *newStateAccessor(activeWindows, coder, store, state.WindowOnly(mergeResult), mergeResult, style),
		toBeMerged:    toBeMerged,
	}
}

func (m *mergingStateAccessor[K, W]) Access(tag state.Tag[K]) state.State {
	ns := m.style.resolve(
		func() state.Namespace { return m.windowNamespace },
		func() state.Namespace {
			return m.namespaceFor(m.activeWindows.MergedWriteStateAddress(m.toBeMerged, m.window))
		},
	)
	namespaceResolutions.WithLabelValues(m.style.String()).Inc()
	return m.store.State(ns, tag, m.sctx)
}

func (m *mergingStateAccessor[K, W]) AccessInEachMergingWindow(tag state.Tag[K]) map[W]state.State {
	states := make(map[W]state.State, len(m.toBeMerged))
	for _, mergingWindow := range m.toBeMerged {
		mergingWindow := mergingWindow
		ns := m.style.resolve(
			func() state.Namespace { return m.namespaceFor(mergingWindow) },
			func() state.Namespace {
				return m.namespaceFor(m.activeWindows.WriteStateAddress(mergingWindow))
			},
		)
		namespaceResolutions.WithLabelValues(m.style.String()).Inc()
		states[mergingWindow] = m.store.State(ns, tag, m.sctx)
	}
	return states
}

// premergingStateAccessor resolves state before any merge is committed. It is
// always Renamed, and its multi-window view enumerates every namespace that
// may hold state contributing to the window, not a single resolved address.
type premergingStateAccessor[K any, W window.Comparable] struct {
	stateAccessor[K, W]
}

var _ PremergingStateAccessor[string, *window.IntervalWindow] = (*premergingStateAccessor[string, *window.IntervalWindow])(nil)

func newPremergingStateAccessor[K any, W window.Comparable](
	activeWindows window.ActiveSet[W],
	coder window.Coder[W],
	store state.Store[K],
	w W) *premergingStateAccessor[K, W] {
	return &premergingStateAccessor[K, W]{
		stateAccessor: *newStateAccessor(activeWindows, coder, store, state.WindowOnly(w), w, Renamed),
	}
}

// MergingWindows returns the raw candidate address set, for merge-decision
// logic outside this layer.
func (p *premergingStateAccessor[K, W]) MergingWindows() []W {
	return p.activeWindows.ReadStateAddresses(p.window)
}

func (p *premergingStateAccessor[K, W]) AccessInEachMergingWindow(tag state.Tag[K]) map[W]state.State {
	addresses := p.activeWindows.ReadStateAddresses(p.window)
	states := make(map[W]state.State, len(addresses))
	for _, stateAddressWindow := range addresses {
		namespaceResolutions.WithLabelValues(p.style.String()).Inc()
		states[stateAddressWindow] = p.store.State(p.namespaceFor(stateAddressWindow), tag, p.sctx)
	}
	return states
}
