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
	"encoding/binary"
	"fmt"
	"time"
)

// IntervalWindow is the stock Window implementation: a half-open interval
// [start, end) with an optional slot (a hash-range for keys, multiple keys can
// go to the same slot).
type IntervalWindow struct {
	start time.Time
	end   time.Time
	slot  string
}

var _ Window = (*IntervalWindow)(nil)

// NewIntervalWindow returns a new IntervalWindow for the given interval.
func NewIntervalWindow(start time.Time, end time.Time, slot string) *IntervalWindow {
	return &IntervalWindow{
		start: start,
		end:   end,
		slot:  slot,
	}
}

// StartTime returns start of the window.
func (iw *IntervalWindow) StartTime() time.Time {
	return iw.start
}

// EndTime returns end of the window.
func (iw *IntervalWindow) EndTime() time.Time {
	return iw.end
}

// Slot returns the slot to which the window belongs.
func (iw *IntervalWindow) Slot() string {
	return iw.slot
}

func (iw *IntervalWindow) String() string {
	return fmt.Sprintf("%v-%v-%s", iw.start.UnixMilli(), iw.end.UnixMilli(), iw.slot)
}

// IntervalCoder encodes an IntervalWindow as big-endian (startMillis,
// endMillis) followed by the slot bytes. Fixed-width prefixes keep the byte
// order of encodings aligned with the time order of windows.
type IntervalCoder struct{}

var _ Coder[*IntervalWindow] = (*IntervalCoder)(nil)

func NewIntervalCoder() *IntervalCoder {
	return &IntervalCoder{}
}

func (ic *IntervalCoder) Encode(w *IntervalWindow) []byte {
	encoded := make([]byte, 16, 16+len(w.slot))
	binary.BigEndian.PutUint64(encoded[0:8], uint64(w.start.UnixMilli()))
	binary.BigEndian.PutUint64(encoded[8:16], uint64(w.end.UnixMilli()))
	return append(encoded, w.slot...)
}
