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

package window

import (
	"time"
)

// Window is a time-delimited grouping bucket for elements sharing a key.
// Implementations are immutable values; identity is established by the
// Coder's encoding, never by the struct fields directly.
type Window interface {
	// StartTime returns the inclusive start of the window.
	StartTime() time.Time
	// EndTime returns the exclusive end of the window.
	EndTime() time.Time
}

// Comparable constrains the window type parameter of the addressing layer.
// Windows end up as map keys in the merging accessors, so the concrete type
// has to be strictly comparable (pointer windows qualify).
type Comparable interface {
	comparable
	Window
}

// Coder deterministically encodes a window to bytes. Two windows are the same
// window iff their encodings are byte-equal; state namespaces are derived from
// the encoding, so the encoding must be stable across processes.
type Coder[W Window] interface {
	Encode(w W) []byte
}

// Strategy represents the windowing strategy
type Strategy int

const (
	Fixed Strategy = iota
	Sliding
	Session
	Global
)

func (s Strategy) String() string {
	switch s {
	case Fixed:
		return "Fixed"
	case Sliding:
		return "Sliding"
	case Session:
		return "Session"
	case Global:
		return "Global"
	default:
		return "Unknown"
	}
}

// Merges returns true if windows produced under this strategy can merge with
// one another. Only merging strategies need renamed state addressing.
func (s Strategy) Merges() bool {
	return s == Session
}

// Windowing bundles the windowing policy for one reduce stage: the strategy,
// the window coder used to derive state namespaces, and the lateness horizon.
// It is handed through every call context unmodified for the reduce function's
// own use.
type Windowing[W Window] struct {
	Strategy        Strategy
	Coder           Coder[W]
	AllowedLateness time.Duration
}
