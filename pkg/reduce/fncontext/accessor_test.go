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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rangerwolf/reduceflow/pkg/state"
	"github.com/rangerwolf/reduceflow/pkg/window"
)

var bufferTag = state.NewTag[string]("buffered-values", state.BagTag)

func TestAccess_DirectNeverConsultsActiveSet(t *testing.T) {
	// the panicking active set fails the test if direct addressing ever
	// reaches for it
	fixture := newTestFixture(t, &panicActiveSet{})
	w := testWindow(0)

	resolved := fixture.factory.Base(w, Direct).State().Access(bufferTag).(*fakeState)

	assert.Equal(t, namespaceOf(w), resolved.namespace)
	assert.Equal(t, bufferTag.ID(), resolved.tag)
}

func TestAccess_RenamedResolvesWriteAddress(t *testing.T) {
	w := testWindow(0)
	addr := testWindow(time.Hour)
	fixture := newTestFixture(t, &fakeActiveSet{
		writeAddrs: map[*window.IntervalWindow]*window.IntervalWindow{w: addr},
	})

	resolved := fixture.factory.Base(w, Renamed).State().Access(bufferTag).(*fakeState)

	assert.Equal(t, namespaceOf(addr), resolved.namespace)
}

func TestForMerge_Renamed(t *testing.T) {
	w1, w2, w3 := testWindow(0), testWindow(time.Minute), testWindow(2*time.Minute)
	a1, a2, a3 := testWindow(10*time.Hour), testWindow(11*time.Hour), testWindow(12*time.Hour)
	w4 := testWindow(3 * time.Minute)
	activeSet := &fakeActiveSet{
		writeAddrs: map[*window.IntervalWindow]*window.IntervalWindow{w1: a1, w2: a2, w3: a3},
		merged:     w4,
	}
	fixture := newTestFixture(t, activeSet)

	mergeContext := fixture.factory.ForMerge([]*window.IntervalWindow{w1, w2, w3}, w4, Renamed)

	// consolidated state lives at the merged write address
	resolved := mergeContext.State().Access(bufferTag).(*fakeState)
	assert.Equal(t, namespaceOf(w4), resolved.namespace)

	// per-window view is keyed by exactly the merging set, each entry at its
	// own pre-merge write address
	each := mergeContext.State().AccessInEachMergingWindow(bufferTag)
	require.Len(t, each, 3)
	assert.Equal(t, namespaceOf(a1), each[w1].(*fakeState).namespace)
	assert.Equal(t, namespaceOf(a2), each[w2].(*fakeState).namespace)
	assert.Equal(t, namespaceOf(a3), each[w3].(*fakeState).namespace)
}

func TestForMerge_Direct(t *testing.T) {
	w1, w2 := testWindow(0), testWindow(time.Minute)
	w3 := testWindow(2 * time.Minute)
	fixture := newTestFixture(t, &panicActiveSet{})

	mergeContext := fixture.factory.ForMerge([]*window.IntervalWindow{w1, w2}, w3, Direct)

	resolved := mergeContext.State().Access(bufferTag).(*fakeState)
	assert.Equal(t, namespaceOf(w3), resolved.namespace)

	each := mergeContext.State().AccessInEachMergingWindow(bufferTag)
	require.Len(t, each, 2)
	assert.Equal(t, namespaceOf(w1), each[w1].(*fakeState).namespace)
	assert.Equal(t, namespaceOf(w2), each[w2].(*fakeState).namespace)
}

func TestForPremerge(t *testing.T) {
	w := testWindow(0)
	a1, a2 := testWindow(10*time.Hour), testWindow(11*time.Hour)
	activeSet := &fakeActiveSet{
		// the write address is primed differently to prove the premerge view
		// only follows read addresses
		writeAddrs: map[*window.IntervalWindow]*window.IntervalWindow{w: testWindow(20 * time.Hour)},
		readAddrs:  map[*window.IntervalWindow][]*window.IntervalWindow{w: {a1, a2}},
	}
	fixture := newTestFixture(t, activeSet)

	premergeContext := fixture.factory.ForPremerge(w)

	each := premergeContext.State().AccessInEachMergingWindow(bufferTag)
	require.Len(t, each, 2)
	assert.Equal(t, namespaceOf(a1), each[a1].(*fakeState).namespace)
	assert.Equal(t, namespaceOf(a2), each[a2].(*fakeState).namespace)

	premerging, ok := premergeContext.State().(PremergingStateAccessor[string, *window.IntervalWindow])
	require.True(t, ok)
	assert.Equal(t, []*window.IntervalWindow{a1, a2}, premerging.MergingWindows())
}

// single-window premerge access behaves as renamed
func TestForPremerge_SingleAccessIsRenamed(t *testing.T) {
	w := testWindow(0)
	addr := testWindow(time.Hour)
	fixture := newTestFixture(t, &fakeActiveSet{
		writeAddrs: map[*window.IntervalWindow]*window.IntervalWindow{w: addr},
	})

	resolved := fixture.factory.ForPremerge(w).State().Access(bufferTag).(*fakeState)
	assert.Equal(t, namespaceOf(addr), resolved.namespace)
}

// full merge lifecycle: read each source window's accumulator pre-commit,
// then find the consolidated state at one stable address post-commit
func TestMergeLifecycle(t *testing.T) {
	w1, w2, w3 := testWindow(0), testWindow(time.Minute), testWindow(2*time.Minute)
	w4 := testWindow(3 * time.Minute)
	activeSet := &fakeActiveSet{
		writeAddrs: map[*window.IntervalWindow]*window.IntervalWindow{w1: w1, w2: w2, w3: w3},
		merged:     w1,
	}
	fixture := newTestFixture(t, activeSet)

	// before commit: fold the three source accumulators
	each := fixture.factory.ForMerge([]*window.IntervalWindow{w1, w2, w3}, w4, Renamed).
		State().AccessInEachMergingWindow(bufferTag)
	require.Len(t, each, 3)
	assert.Equal(t, namespaceOf(w1), each[w1].(*fakeState).namespace)
	assert.Equal(t, namespaceOf(w2), each[w2].(*fakeState).namespace)
	assert.Equal(t, namespaceOf(w3), each[w3].(*fakeState).namespace)

	// commit: the active set now renames w4 to the merged write address
	activeSet.writeAddrs[w4] = activeSet.merged

	resolved := fixture.factory.Base(w4, Renamed).State().Access(bufferTag).(*fakeState)
	assert.Equal(t, namespaceOf(w1), resolved.namespace)
}

func TestNewStateAccessor_NilContextPanics(t *testing.T) {
	store := &fakeStore{}
	assert.Panics(t, func() {
		newStateAccessor[string](&panicActiveSet{}, testCoder, store, nil, testWindow(0), Direct)
	})
}

func TestStyle_String(t *testing.T) {
	assert.Equal(t, "Direct", Direct.String())
	assert.Equal(t, "Renamed", Renamed.String())
}
