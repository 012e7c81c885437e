package fncontext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rangerwolf/reduceflow/pkg/state"
	"github.com/rangerwolf/reduceflow/pkg/timer"
	"github.com/rangerwolf/reduceflow/pkg/window"
)

func TestNewTimers_RequiresWindowNamespace(t *testing.T) {
	registry := &fakeRegistry{}

	assert.Panics(t, func() {
		newTimers(registry, state.Global())
	})
	assert.NotPanics(t, func() {
		newTimers(registry, namespaceOf(testWindow(0)))
	})
}

func TestTimers_SetAndDelete(t *testing.T) {
	fixture := newTestFixture(t, &panicActiveSet{})
	w := testWindow(0)
	timestamp := time.Unix(1651129260, 0).UTC()

	timers := fixture.factory.Base(w, Direct).Timers()
	timers.SetTimer(timestamp, timer.EventTime)
	timers.DeleteTimer(timestamp, timer.ProcessingTime)

	require.Len(t, fixture.registry.setTimers, 1)
	assert.Equal(t, timer.Data{
		Namespace: namespaceOf(w),
		Timestamp: timestamp,
		Domain:    timer.EventTime,
	}, fixture.registry.setTimers[0])

	require.Len(t, fixture.registry.deletedTimers, 1)
	assert.Equal(t, timer.Data{
		Namespace: namespaceOf(w),
		Timestamp: timestamp,
		Domain:    timer.ProcessingTime,
	}, fixture.registry.deletedTimers[0])
}

// timer scoping always uses the window's own namespace, it never follows
// state renames
func TestTimers_MergeContextScopedToResultWindow(t *testing.T) {
	w1, w2 := testWindow(0), testWindow(time.Minute)
	w3 := testWindow(2 * time.Minute)
	activeSet := &fakeActiveSet{
		writeAddrs: map[*window.IntervalWindow]*window.IntervalWindow{w1: w1, w2: w2},
		merged:     w1,
	}
	fixture := newTestFixture(t, activeSet)
	timestamp := time.Unix(1651129260, 0).UTC()

	fixture.factory.ForMerge([]*window.IntervalWindow{w1, w2}, w3, Renamed).
		Timers().SetTimer(timestamp, timer.EventTime)

	require.Len(t, fixture.registry.setTimers, 1)
	assert.Equal(t, namespaceOf(w3), fixture.registry.setTimers[0].Namespace)
}

func TestTimers_ClockQueries(t *testing.T) {
	fixture := newTestFixture(t, &panicActiveSet{})
	fixture.registry.processingTime = time.Unix(100, 0).UTC()
	fixture.registry.eventTime = time.Unix(50, 0).UTC()

	timers := fixture.factory.Base(testWindow(0), Direct).Timers()

	assert.Equal(t, time.Unix(100, 0).UTC(), timers.CurrentProcessingTime())
	assert.Equal(t, time.Unix(50, 0).UTC(), timers.CurrentEventTime())

	_, ok := timers.CurrentSynchronizedProcessingTime()
	assert.False(t, ok)

	fixture.registry.synchronized = time.Unix(75, 0).UTC()
	fixture.registry.hasSynchronized = true
	synchronized, ok := timers.CurrentSynchronizedProcessingTime()
	assert.True(t, ok)
	assert.Equal(t, time.Unix(75, 0).UTC(), synchronized)
}

func TestDomain_String(t *testing.T) {
	assert.Equal(t, "EventTime", timer.EventTime.String())
	assert.Equal(t, "ProcessingTime", timer.ProcessingTime.String())
	assert.Equal(t, "SynchronizedProcessingTime", timer.SynchronizedProcessingTime.String())
	assert.Equal(t, "Unknown", timer.Domain(42).String())
}
