// Package window defines the window identity primitives the reduce engine
// addresses state with. In the world of data processing on an unbounded stream,
// Windowing is a concept of grouping data using temporal boundaries; a reduce
// function is applied on each group with access to durable per-window state.
//
// Windows may be either aligned (e.g., Fixed, Sliding), i.e. applied across all
// the data for the window of time in question, or unaligned (e.g., Session),
// i.e. applied across only specific subsets of the data per key. Unaligned
// windows can merge over time, which means the state accumulated under several
// windows has to become visible under exactly one address after the merge. The
// ActiveSet collaborator tracks that address bookkeeping; this package only
// defines its boundary plus the window identity, its deterministic byte
// encoding (windows are compared and namespaced by encoded bytes), the
// windowing policy handed through to the reduce function, and pane metadata
// for trigger firings.
package window
