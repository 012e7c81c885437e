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

import "fmt"

// Timing says where a pane sits relative to the watermark passing the end of
// its window.
type Timing int

const (
	// Early panes fire before the watermark reaches the end of the window.
	Early Timing = iota
	// OnTime is the single pane fired when the watermark passes the window end.
	OnTime
	// Late panes fire after the on-time pane, for late data.
	Late
	// Unknown is used when the timing of a pane cannot be determined.
	Unknown
)

func (t Timing) String() string {
	switch t {
	case Early:
		return "Early"
	case OnTime:
		return "OnTime"
	case Late:
		return "Late"
	default:
		return "Unknown"
	}
}

// PaneInfo describes one discrete output produced by a trigger firing for a
// window. The reduce function receives it on every trigger so it can mark or
// route speculative vs. final results.
type PaneInfo struct {
	// IsFirst is true for the first pane produced for the window.
	IsFirst bool
	// IsLast is true for the last pane that will ever be produced for the window.
	IsLast bool
	Timing Timing
	// Index counts panes produced for the window, starting at zero.
	Index int64
	// NonSpeculativeIndex counts only on-time and late panes. It is -1 for
	// early (speculative) panes.
	NonSpeculativeIndex int64
}

// NoFiring is the pane used when the result is known to be the one and only
// firing for the window.
var NoFiring = PaneInfo{IsFirst: true, IsLast: true, Timing: Unknown}

// FirstPane returns the pane for the first firing with the given timing.
func FirstPane(timing Timing) PaneInfo {
	nonSpeculative := int64(0)
	if timing == Early {
		nonSpeculative = -1
	}
	return PaneInfo{IsFirst: true, Timing: timing, NonSpeculativeIndex: nonSpeculative}
}

func (p PaneInfo) String() string {
	return fmt.Sprintf("pane{first=%t, last=%t, timing=%s, index=%d}", p.IsFirst, p.IsLast, p.Timing, p.Index)
}
