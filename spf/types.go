// Package spf implements the shortest-path-first kernel: a binary-heap
// Dijkstra search over a StrictMultiDiGraph, parameterized by a pluggable
// edgeselect.SelectorFunc and an optional multipath mode that merges
// equal-cost predecessors instead of keeping only the first one found.
//
// Complexity:
//
//	– Time:  O((V + E) log V), using a lazy decrease-key priority queue
//	   (stale heap entries are discarded on pop rather than updated in
//	   place).
//	– Space: O(V + E).
package spf

import "errors"

// Sentinel errors returned by Run.
var (
	// ErrNilGraph indicates a nil graph was passed to Run.
	ErrNilGraph = errors.New("spf: graph is nil")

	// ErrEmptySource indicates an empty source node ID was passed to Run.
	ErrEmptySource = errors.New("spf: source node ID is empty")

	// ErrUnknownSource indicates the source node does not exist in the graph.
	ErrUnknownSource = errors.New("spf: source node not found in graph")

	// ErrNilSelector indicates a nil SelectorFunc was passed to Run.
	ErrNilSelector = errors.New("spf: selector function is nil")
)
