// File: methods_clone.go
// Role: Deep cloning so flow-engine calls can leave input graphs pristine.
// Determinism:
//   - Clone carries over nextEdgeKey so future AddEdge calls on the clone
//     continue the same sequence and never collide with the source.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.
package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: nodes, edges (including Flow and
// Flows), and both adjacency indices. The flow engine clones its input
// whenever copy_graph is requested, so the caller's graph is never mutated.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph()
	atomic.StoreUint64(&clone.nextEdgeKey, atomic.LoadUint64(&g.nextEdgeKey))

	for id, n := range g.nodes {
		attrs := make(map[string]interface{}, len(n.Attrs))
		for k, v := range n.Attrs {
			attrs[k] = v
		}
		clone.nodes[id] = &Node{ID: id, Attrs: attrs}
		ensureAdjacency(clone, id)
	}

	for key, e := range g.edges {
		flows := make(map[FlowIndex]float64, len(e.Flows))
		for idx, v := range e.Flows {
			flows[idx] = v
		}
		attrs := make(map[string]interface{}, len(e.Attrs))
		for k, v := range e.Attrs {
			attrs[k] = v
		}
		ne := &Edge{
			Key:      key,
			From:     e.From,
			To:       e.To,
			Capacity: e.Capacity,
			Cost:     e.Cost,
			Flow:     e.Flow,
			Flows:    flows,
			Attrs:    attrs,
		}
		clone.edges[key] = ne
		linkAdjacency(clone, ne)
	}

	return clone
}
