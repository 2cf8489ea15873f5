// File: heap.go
// Role: the min-heap priority queue Run uses for lazy decrease-key Dijkstra.
package spf

import "github.com/katalvlaran/netgraph/core"

// nodeItem represents a node and its current tentative cost from the source.
type nodeItem struct {
	id   core.NodeID
	cost int64
}

// nodePQ is a min-heap of *nodeItem ordered by cost ascending. Stale entries
// (for a node already finalized) are pushed and later ignored on pop rather
// than updated in place.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
