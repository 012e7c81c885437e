// Package fncontext builds the call contexts handed to a reduce function: one
// fresh bundle of (key, window, windowing policy, state accessor, timer
// handle, call payload) per invocation. The hard part it owns is state
// addressing under window merging. When windows merge, state accumulated
// under several windows must become visible under exactly one namespace,
// while pre-merge code must still be able to read every namespace that could
// contribute. The accessors here resolve a named state tag to the right
// physical namespace under two addressing styles: Direct (state lives at the
// window's own namespace, for strategies that never merge) and Renamed (state
// lives wherever the active window set currently points, so it survives
// merges under one stable address).
//
// Nothing in this package touches storage or the timer registry at
// construction time; resolution and I/O happen when the reduce function goes
// through the returned context. Contexts live for exactly one invocation and
// must not be shared or reused; processing per key is serialized by the
// engine above.
package fncontext
