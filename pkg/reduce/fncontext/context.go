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
	"time"

	"github.com/rangerwolf/reduceflow/pkg/window"
)

// Context is the base call context: key and window identity, the windowing
// policy, a state accessor bound to the invocation's addressing style, and
// the window's timer handle. The variants below are structural siblings that
// add call-specific payload; none of them retain anything beyond the single
// invocation they were built for.
type Context[K any, I any, O any, W window.Comparable] struct {
	key       K
	window    W
	windowing *window.Windowing[W]
	state     StateAccessor[K]
	timers    *Timers
}

// Key returns the key being processed.
func (c *Context[K, I, O, W]) Key() K {
	return c.key
}

// Window returns the window the invocation is for.
func (c *Context[K, I, O, W]) Window() W {
	return c.window
}

// Windowing returns the stage's windowing policy, unmodified.
func (c *Context[K, I, O, W]) Windowing() *window.Windowing[W] {
	return c.windowing
}

// State returns the invocation's state accessor.
func (c *Context[K, I, O, W]) State() StateAccessor[K] {
	return c.state
}

// Timers returns the window's timer handle.
func (c *Context[K, I, O, W]) Timers() *Timers {
	return c.timers
}

// ProcessValueContext is the context for processing one input element against
// one of the windows it was assigned to.
type ProcessValueContext[K any, I any, O any, W window.Comparable] struct {
	Context[K, I, O, W]
	value     I
	timestamp time.Time
}

// Value returns the input element.
func (c *ProcessValueContext[K, I, O, W]) Value() I {
	return c.value
}

// Timestamp returns the element's event timestamp.
func (c *ProcessValueContext[K, I, O, W]) Timestamp() time.Time {
	return c.timestamp
}

// OnTriggerCallbacks receives the values the reduce function emits when a
// trigger fires. Emission is synchronous; backpressure from downstream is the
// callback's to apply.
type OnTriggerCallbacks[O any] interface {
	Output(value O)
}

// OutputFunc adapts a function into OnTriggerCallbacks.
type OutputFunc[O any] func(O)

func (f OutputFunc[O]) Output(value O) {
	f(value)
}

// OnTriggerContext is the context for a trigger firing, when the reduce
// function must produce a pane of output for the window.
type OnTriggerContext[K any, I any, O any, W window.Comparable] struct {
	Context[K, I, O, W]
	pane      window.PaneInfo
	callbacks OnTriggerCallbacks[O]
}

// PaneInfo describes the pane being fired.
func (c *OnTriggerContext[K, I, O, W]) PaneInfo() window.PaneInfo {
	return c.pane
}

// Output emits one result value for the pane.
func (c *OnTriggerContext[K, I, O, W]) Output(value O) {
	c.callbacks.Output(value)
}

// OnMergeContext is the context for merge handling, both for committing a
// merge (combine the source windows' state) and for premerge inspection of
// every address that could contribute to a window.
type OnMergeContext[K any, I any, O any, W window.Comparable] struct {
	key       K
	window    W
	windowing *window.Windowing[W]
	state     MergingStateAccessor[K, W]
	timers    *Timers
}

// Key returns the key being processed.
func (c *OnMergeContext[K, I, O, W]) Key() K {
	return c.key
}

// Window returns the merge result window, or the window under premerge
// inspection.
func (c *OnMergeContext[K, I, O, W]) Window() W {
	return c.window
}

// Windowing returns the stage's windowing policy, unmodified.
func (c *OnMergeContext[K, I, O, W]) Windowing() *window.Windowing[W] {
	return c.windowing
}

// State returns the invocation's merging state accessor.
func (c *OnMergeContext[K, I, O, W]) State() MergingStateAccessor[K, W] {
	return c.state
}

// Timers returns the timer handle scoped to the context's window.
func (c *OnMergeContext[K, I, O, W]) Timers() *Timers {
	return c.timers
}
