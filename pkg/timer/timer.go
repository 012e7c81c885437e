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

// Package timer defines the engine's global timer registry boundary. The
// registry fires the reduce engine's triggers; the addressing layer only
// registers and deletes timers against it, scoped by state namespace.
package timer

import (
	"fmt"
	"time"

	"github.com/rangerwolf/reduceflow/pkg/state"
)

// Domain says which clock a timer fires on.
type Domain int

const (
	// EventTime timers fire when the input watermark passes the timestamp.
	EventTime Domain = iota
	// ProcessingTime timers fire when wall-clock time passes the timestamp.
	ProcessingTime
	// SynchronizedProcessingTime timers fire when all upstream workers'
	// processing clocks have passed the timestamp.
	SynchronizedProcessingTime
)

func (d Domain) String() string {
	switch d {
	case EventTime:
		return "EventTime"
	case ProcessingTime:
		return "ProcessingTime"
	case SynchronizedProcessingTime:
		return "SynchronizedProcessingTime"
	default:
		return "Unknown"
	}
}

// Data identifies one timer registration. Two registrations with the same
// (namespace, timestamp, domain) are the same timer; setting it twice is a
// no-op, deleting it cancels it.
type Data struct {
	Namespace state.Namespace
	Timestamp time.Time
	Domain    Domain
}

func (d Data) String() string {
	return fmt.Sprintf("timer{%s, %v, %s}", d.Namespace, d.Timestamp.UnixMilli(), d.Domain)
}

// Registry is the engine's global timer registry plus its clock/watermark
// queries. Implementations are engine-wide; namespace scoping happens in the
// Data, not in the registry.
type Registry interface {
	// SetTimer registers the timer, overwriting an identical registration.
	SetTimer(data Data)
	// DeleteTimer cancels the timer if it is registered.
	DeleteTimer(data Data)
	// CurrentProcessingTime returns the wall-clock time of the worker.
	CurrentProcessingTime() time.Time
	// CurrentSynchronizedProcessingTime returns the synchronized processing
	// time, or false if no synchronized clock is tracked.
	CurrentSynchronizedProcessingTime() (time.Time, bool)
	// CurrentEventTime returns the current input watermark.
	CurrentEventTime() time.Time
}
