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

package state

// Store is the durable state storage engine for one key of one reduce stage.
// State returns the handle for (namespace, tag); it must not touch storage,
// all I/O is deferred to the handle's own methods. Requesting the same
// (namespace, tag) twice must address the same persisted value.
//
// The key type parameter matches the tag's: a store only accepts tags declared
// for its key type.
type Store[K any] interface {
	State(namespace Namespace, tag Tag[K], sctx Context) State
}

// Context carries the per-invocation surroundings a storage engine may need,
// such as pipeline options or side input access. The addressing layer treats
// it as opaque and only threads it through to Store.State.
type Context interface {
	// Options returns the engine's execution options, or nil if the context
	// was built for a window alone.
	Options() any
	// Window returns the window the state access is happening under.
	Window() any
}

type stateContext struct {
	options any
	window  any
}

// NewContext returns a Context carrying both execution options and the window.
// The window must not be nil; building a state context without a window is a
// bug in the surrounding engine.
func NewContext(options any, window any) Context {
	if window == nil {
		panic("state: state context requires a window")
	}
	return &stateContext{options: options, window: window}
}

// WindowOnly returns a Context carrying just the window. Used where execution
// options are not in scope, e.g. merge handling.
func WindowOnly(window any) Context {
	if window == nil {
		panic("state: state context requires a window")
	}
	return &stateContext{window: window}
}

func (c *stateContext) Options() any {
	return c.options
}

func (c *stateContext) Window() any {
	return c.window
}
