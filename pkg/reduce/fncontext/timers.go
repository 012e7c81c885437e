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
	"fmt"
	"time"

	"github.com/rangerwolf/reduceflow/pkg/state"
	"github.com/rangerwolf/reduceflow/pkg/timer"
)

// Timers is the per-window timer handle handed to the reduce function. Timer
// registrations are scoped to one window namespace; the clock queries read
// through to the engine's global clocks and are not window-scoped.
type Timers struct {
	namespace state.Namespace
	registry  timer.Registry
}

func newTimers(registry timer.Registry, namespace state.Namespace) *Timers {
	// timers only exist per window, a global-scoped timer handle is a bug in
	// the surrounding engine
	if namespace.Kind() != state.KindWindow {
		panic(fmt.Sprintf("fncontext: timers require a window-scoped namespace, got %v", namespace))
	}
	return &Timers{
		namespace: namespace,
		registry:  registry,
	}
}

// SetTimer registers a timer for the context's window at the given time.
func (t *Timers) SetTimer(timestamp time.Time, domain timer.Domain) {
	t.registry.SetTimer(timer.Data{Namespace: t.namespace, Timestamp: timestamp, Domain: domain})
}

// DeleteTimer cancels a previously set timer for the context's window.
func (t *Timers) DeleteTimer(timestamp time.Time, domain timer.Domain) {
	t.registry.DeleteTimer(timer.Data{Namespace: t.namespace, Timestamp: timestamp, Domain: domain})
}

// CurrentProcessingTime returns the worker's wall-clock time.
func (t *Timers) CurrentProcessingTime() time.Time {
	return t.registry.CurrentProcessingTime()
}

// CurrentSynchronizedProcessingTime returns the synchronized processing time,
// or false if no synchronized clock is tracked.
func (t *Timers) CurrentSynchronizedProcessingTime() (time.Time, bool) {
	return t.registry.CurrentSynchronizedProcessingTime()
}

// CurrentEventTime returns the current input watermark.
func (t *Timers) CurrentEventTime() time.Time {
	return t.registry.CurrentEventTime()
}
