// Package pathbundle implements PathBundle: a compact predecessor-DAG
// representation of one or more equal-cost s->t paths, produced by the SPF
// kernel and consumed by capacity calculation, flow placement, and
// user-facing path enumeration.
//
// A PathBundle is immutable after construction: Pred, Nodes, and Edges never
// change once New returns. Path enumeration (ResolveToPaths) walks Pred
// depth-first in insertion order, matching the order nodes were first
// discovered by the SPF kernel rather than any subsequently imposed sort, so
// two bundles built from the same search agree on enumeration order.
package pathbundle

import "github.com/katalvlaran/netgraph/core"

// PathBundle is the (src, dst, pred, cost) tuple from the SPF kernel, plus
// the node/edge sets derived from it at construction time.
type PathBundle struct {
	Src  core.NodeID
	Dst  core.NodeID
	Cost int64

	// Pred[node][prev] = edge keys carrying flow from prev to node. A node
	// with an empty entry has no predecessor in this bundle; package spf
	// gives Src such an empty entry.
	Pred map[core.NodeID]map[core.NodeID][]core.EdgeKey

	// PredOrder[node] lists node's predecessors in first-discovered order,
	// since Pred's nested map cannot itself preserve insertion order. DFS
	// enumeration walks PredOrder, not a sorted view of Pred's keys.
	PredOrder map[core.NodeID][]core.NodeID

	nodes []core.NodeID
	edges []core.EdgeKey
}

// New constructs a PathBundle from a predecessor DAG and caches its derived
// node and edge sets. pred and predOrder are retained by reference, not
// copied: the SPF kernel must treat them as owned by the bundle once New is
// called.
func New(src, dst core.NodeID, pred map[core.NodeID]map[core.NodeID][]core.EdgeKey, predOrder map[core.NodeID][]core.NodeID, cost int64) *PathBundle {
	pb := &PathBundle{
		Src:       src,
		Dst:       dst,
		Cost:      cost,
		Pred:      pred,
		PredOrder: predOrder,
	}
	pb.nodes = make([]core.NodeID, 0, len(pred))
	seenEdge := make(map[core.EdgeKey]struct{})
	for node, byPrev := range pred {
		pb.nodes = append(pb.nodes, node)
		for _, keys := range byPrev {
			for _, k := range keys {
				if _, ok := seenEdge[k]; !ok {
					seenEdge[k] = struct{}{}
					pb.edges = append(pb.edges, k)
				}
			}
		}
	}

	return pb
}

// Nodes returns every node appearing in the predecessor DAG.
func (pb *PathBundle) Nodes() []core.NodeID { return pb.nodes }

// Edges returns the union of all edge keys appearing in the predecessor DAG.
func (pb *PathBundle) Edges() []core.EdgeKey { return pb.edges }

// IsEmpty reports whether Dst was unreachable when this bundle was built
// (no predecessor entries at all).
func (pb *PathBundle) IsEmpty() bool {
	return len(pb.Pred) == 0
}
