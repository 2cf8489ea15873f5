// File: methods_adjacent.go
// Role: Neighborhood APIs (OutNeighbors, InEdges, OutEdges, EdgesBetween)
//       and the private adjacency-index helpers shared by the mutation paths.
// Determinism:
//   - OutEdges/InEdges/EdgesBetween are sorted by Edge.Key asc.
//   - OutNeighbors returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muEdgeAdj read lock; mutation helpers require the
//     caller to already hold the muEdgeAdj write lock.
package core

import "sort"

// OutEdges returns all edges with From == u, sorted by Key asc.
// Complexity: O(d log d) where d is out-degree.
func (g *Graph) OutEdges(u NodeID) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	for _, keys := range g.adjOut[u] {
		for key := range keys {
			out = append(out, g.edges[key])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out
}

// InEdges returns all edges with To == v, sorted by Key asc.
// Complexity: O(d log d) where d is in-degree.
func (g *Graph) InEdges(v NodeID) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	for _, keys := range g.adjIn[v] {
		for key := range keys {
			out = append(out, g.edges[key])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out
}

// EdgesBetween returns every parallel edge u->v, sorted by Key asc.
// Complexity: O(p log p) where p is the number of parallel edges.
func (g *Graph) EdgesBetween(u, v NodeID) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	keys := g.adjOut[u][v]
	out := make([]*Edge, 0, len(keys))
	for key := range keys {
		out = append(out, g.edges[key])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out
}

// OutNeighbors returns the unique set of nodes v for which at least one
// edge u->v exists, sorted lex asc.
// Complexity: O(d log d).
func (g *Graph) OutNeighbors(u NodeID) []NodeID {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]NodeID, 0, len(g.adjOut[u]))
	for v, keys := range g.adjOut[u] {
		if len(keys) > 0 {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

//–– Helpers ––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// ensureAdjacency guarantees the presence of an (empty) adjacency bucket for
// a freshly created node so later edge lookups never see a nil map.
// Must be called under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, id NodeID) {
	if g.adjOut[id] == nil {
		g.adjOut[id] = make(map[NodeID]map[EdgeKey]struct{})
	}
	if g.adjIn[id] == nil {
		g.adjIn[id] = make(map[NodeID]map[EdgeKey]struct{})
	}
}

// linkAdjacency records edge e in both the out- and in- adjacency indices.
// Must be called under muEdgeAdj write lock.
func linkAdjacency(g *Graph, e *Edge) {
	ensureAdjacency(g, e.From)
	ensureAdjacency(g, e.To)
	if g.adjOut[e.From][e.To] == nil {
		g.adjOut[e.From][e.To] = make(map[EdgeKey]struct{})
	}
	g.adjOut[e.From][e.To][e.Key] = struct{}{}
	if g.adjIn[e.To][e.From] == nil {
		g.adjIn[e.To][e.From] = make(map[EdgeKey]struct{})
	}
	g.adjIn[e.To][e.From][e.Key] = struct{}{}
}

// removeAdjacency deletes e.Key from both adjacency indices.
// Must be called under muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjOut[e.From][e.To]; m != nil {
		delete(m, e.Key)
		if len(m) == 0 {
			delete(g.adjOut[e.From], e.To)
		}
	}
	if m := g.adjIn[e.To][e.From]; m != nil {
		delete(m, e.Key)
		if len(m) == 0 {
			delete(g.adjIn[e.To], e.From)
		}
	}
}

// cleanupAdjacency prunes empty nested maps after node/edge removals.
// Must be called under muEdgeAdj write lock.
func cleanupAdjacency(g *Graph) {
	for u, toMap := range g.adjOut {
		for v, keys := range toMap {
			if len(keys) == 0 {
				delete(toMap, v)
			}
		}
		if len(toMap) == 0 {
			delete(g.adjOut, u)
		}
	}
	for v, fromMap := range g.adjIn {
		for u, keys := range fromMap {
			if len(keys) == 0 {
				delete(fromMap, u)
			}
		}
		if len(fromMap) == 0 {
			delete(g.adjIn, v)
		}
	}
}
