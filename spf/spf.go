// File: spf.go
// Role: Run executes one single-source shortest-path-first search, using a
// runner/heap split generalized to a pluggable edgeselect.SelectorFunc and
// optional multipath predecessor merging, grounded on the reference spf()
// function.
//
// Determinism:
//   - Ties within a predecessor's parallel-edge list are the selector's
//     responsibility (see edgeselect).
//   - PredOrder records each node's predecessors in first-discovered order
//     so pathbundle's DFS enumeration is reproducible.
package spf

import (
	"container/heap"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/edgeselect"
	"github.com/katalvlaran/netgraph/pathbundle"
)

// Result is the raw output of Run: per-node cost and the predecessor DAG.
type Result struct {
	Cost      map[core.NodeID]int64
	Pred      map[core.NodeID]map[core.NodeID][]core.EdgeKey
	PredOrder map[core.NodeID][]core.NodeID
}

// Run computes shortest-path costs and the predecessor DAG from src to every
// reachable node in g, using selector to choose admissible parallel edges
// between adjacent nodes.
//
// When multipath is false, each node keeps only its first-found minimum-cost
// predecessor; a strictly better path encountered later replaces it. When
// multipath is true, equal-cost predecessors discovered later are merged in
// rather than discarded.
//
// Complexity: O((V + E) log V).
func Run(g *core.Graph, src core.NodeID, selector edgeselect.SelectorFunc, multipath bool) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if src == "" {
		return nil, ErrEmptySource
	}
	if selector == nil {
		return nil, ErrNilSelector
	}
	if !g.HasNode(src) {
		return nil, ErrUnknownSource
	}

	r := &runner{
		g:         g,
		selector:  selector,
		multipath: multipath,
		cost:      map[core.NodeID]int64{src: 0},
		pred:      map[core.NodeID]map[core.NodeID][]core.EdgeKey{src: {}},
		predOrder: map[core.NodeID][]core.NodeID{},
		visited:   map[core.NodeID]bool{},
	}

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, cost: 0})
	r.process()

	return &Result{Cost: r.cost, Pred: r.pred, PredOrder: r.predOrder}, nil
}

// BuildBundle runs Run and packages the result as a PathBundle anchored at
// (src, dst). The bundle is empty (IsEmpty() == true) when dst is
// unreachable from src.
func BuildBundle(g *core.Graph, src, dst core.NodeID, selector edgeselect.SelectorFunc, multipath bool) (*pathbundle.PathBundle, error) {
	res, err := Run(g, src, selector, multipath)
	if err != nil {
		return nil, err
	}

	if _, ok := res.Pred[dst]; !ok {
		return pathbundle.New(src, dst, map[core.NodeID]map[core.NodeID][]core.EdgeKey{}, nil, 0), nil
	}

	return pathbundle.New(src, dst, res.Pred, res.PredOrder, res.Cost[dst]), nil
}

// runner holds the mutable state for a single Run execution.
type runner struct {
	g         *core.Graph
	selector  edgeselect.SelectorFunc
	multipath bool

	cost      map[core.NodeID]int64
	pred      map[core.NodeID]map[core.NodeID][]core.EdgeKey
	predOrder map[core.NodeID][]core.NodeID
	visited   map[core.NodeID]bool
	pq        nodePQ
}

// process repeatedly pops the least-cost unsettled node and relaxes its
// outgoing edges. Stale heap entries (a node already settled at a lower
// cost) are discarded on pop rather than updated in place.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax examines every out-neighbor of u, consulting the selector for the
// admissible parallel edges between u and each neighbor, and updates cost/
// pred accordingly.
//
// Note: relax does not skip a neighbor v just because v has already been
// visited. v's own outgoing relaxation depends only on cost[v], not on which
// predecessors feed it, so a later equal-cost predecessor discovered for an
// already-visited v is still merged in when multipath is enabled.
func (r *runner) relax(u core.NodeID) {
	for _, v := range r.g.OutNeighbors(u) {
		edges := r.g.EdgesBetween(u, v)
		edgeCost, keys := r.selector(u, v, edges)
		if len(keys) == 0 {
			continue
		}

		newCost := r.cost[u] + edgeCost
		existing, known := r.cost[v]

		switch {
		case !known || newCost < existing:
			r.cost[v] = newCost
			r.pred[v] = map[core.NodeID][]core.EdgeKey{u: keys}
			r.predOrder[v] = []core.NodeID{u}
			heap.Push(&r.pq, &nodeItem{id: v, cost: newCost})
		case r.multipath && newCost == existing:
			if r.pred[v] == nil {
				r.pred[v] = make(map[core.NodeID][]core.EdgeKey)
			}
			if _, seen := r.pred[v][u]; !seen {
				r.predOrder[v] = append(r.predOrder[v], u)
			}
			r.pred[v][u] = keys
		}
	}
}
