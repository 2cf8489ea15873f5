// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by Edge.Key asc.
//   - Edge keys are monotonic, stable, and carried across Clone.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
package core

import (
	"sort"
	"sync/atomic"
)

// AddEdge creates a new parallel-edge-capable, capacitated, cost-weighted
// edge from -> to and returns its key, unique within g (see EdgeKey).
//
// Both endpoints must already exist (ErrUnknownEndpoint otherwise).
// Capacity and Cost must be non-negative.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to NodeID, capacity float64, cost int64, opts ...EdgeOption) (EdgeKey, error) {
	if from == "" || to == "" {
		return 0, ErrEmptyNodeID
	}
	if capacity < 0 {
		return 0, ErrNegativeCapacity
	}
	if cost < 0 {
		return 0, ErrNegativeCost
	}
	if !g.HasNode(from) {
		return 0, ErrUnknownEndpoint
	}
	if !g.HasNode(to) {
		return 0, ErrUnknownEndpoint
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	key := EdgeKey(atomic.AddUint64(&g.nextEdgeKey, 1))
	e := &Edge{
		Key:      key,
		From:     from,
		To:       to,
		Capacity: capacity,
		Cost:     cost,
		Flows:    make(map[FlowIndex]float64),
		Attrs:    make(map[string]interface{}),
	}
	for _, opt := range opts {
		opt(e)
	}

	g.edges[key] = e
	linkAdjacency(g, e)

	return key, nil
}

// RemoveEdge removes all edges u->v when key is nil, or exactly the edge
// identified by *key. Missing edges/nodes are a silent no-op.
//
// Complexity: O(p) where p is the number of parallel edges removed.
func (g *Graph) RemoveEdge(from, to NodeID, key *EdgeKey) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if key != nil {
		e, ok := g.edges[*key]
		if !ok || e.From != from || e.To != to {
			return
		}
		removeAdjacency(g, e)
		delete(g.edges, *key)
		cleanupAdjacency(g)
		return
	}

	for k := range g.adjOut[from][to] {
		e := g.edges[k]
		removeAdjacency(g, e)
		delete(g.edges, k)
	}
	cleanupAdjacency(g)
}

// HasEdge reports whether at least one edge from->to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to NodeID) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjOut[from][to]) > 0
}

// GetEdge returns the edge with the given key, or ErrEdgeNotFound.
//
// The returned *Edge is a live pointer: during calc_max_flow the flow engine
// mutates Flow/Flows on it directly per the single-writer concurrency model
// (see package flow); outside such a call, treat it as read-only.
//
// Complexity: O(1).
func (g *Graph) GetEdge(key EdgeKey) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[key]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Key asc.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// ResetFlows zeros Flow and Flows on every edge, in place. Used by the flow
// engine's reset_flow_graph option.
// Complexity: O(E).
func (g *Graph) ResetFlows() {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	for _, e := range g.edges {
		e.Flow = 0
		e.Flows = make(map[FlowIndex]float64)
	}
}
