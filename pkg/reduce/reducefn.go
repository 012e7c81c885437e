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

// Package reduce defines the aggregation function boundary of the engine. The
// engine drives a ReduceFn through the call contexts built by fncontext; the
// function reads and writes per-window state and schedules timers only
// through the context it is handed.
package reduce

import (
	"context"

	"github.com/rangerwolf/reduceflow/pkg/reduce/fncontext"
	"github.com/rangerwolf/reduceflow/pkg/window"
)

// ReduceFn is a user aggregation function over a keyed, windowed stream. Any
// error returned is propagated to the engine unchanged and may be retried
// there; this layer performs no retries.
type ReduceFn[K any, I any, O any, W window.Comparable] interface {
	// ProcessValue is invoked once per element per assigned window.
	ProcessValue(ctx context.Context, c *fncontext.ProcessValueContext[K, I, O, W]) error
	// OnTrigger is invoked when a trigger fires and the function must emit a
	// pane of output through the context's Output callback.
	OnTrigger(ctx context.Context, c *fncontext.OnTriggerContext[K, I, O, W]) error
	// OnMerge is invoked when windows merge, with per-window access to every
	// source window's state so the function can fold accumulators together.
	OnMerge(ctx context.Context, c *fncontext.OnMergeContext[K, I, O, W]) error
	// ClearState is invoked when a window is finished and its state must be
	// released.
	ClearState(ctx context.Context, c *fncontext.Context[K, I, O, W]) error
}
