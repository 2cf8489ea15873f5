// File: place.go
// Role: C6 FlowPlacer, ported from place_flow_on_graph (place_flow.py): given
// a PathBundle's NodeCapacity bookkeeping (from CalcCapacity), distribute a
// requested flow volume across the bundle's edges under either the
// Proportional or EqualBalanced discipline, honoring the invariant
// Σ flows == flow on every touched edge.
package flow

import (
	"math"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/pathbundle"
)

// PlacementMeta reports how much of a requested flow volume PlaceFlow
// actually placed, and which nodes/edges carried it.
type PlacementMeta struct {
	Placed    float64
	Remaining float64
	Nodes     map[core.NodeID]struct{}
	Edges     map[core.EdgeKey]struct{}
}

// PlaceFlow distributes up to volume units of flow from bundle.Src to
// bundle.Dst across the bundle's edges, crediting flowIndex's contribution
// on every touched edge, and returns how much was actually placed.
//
// volume may be math.Inf(1) to mean "place as much as the bundle's residual
// capacity allows". PlaceFlow is a no-op (zero placed, volume unchanged) when
// the amount it could place is at most MinFlow, e.g. when the bundle's
// residual capacity for the chosen placement is exhausted.
func PlaceFlow(g *core.Graph, bundle *pathbundle.PathBundle, volume float64, flowIndex core.FlowIndex, placement FlowPlacement, acc core.Accessor) (PlacementMeta, error) {
	if g == nil {
		return PlacementMeta{}, ErrNilGraph
	}

	_, nodeCaps := CalcCapacity(g, bundle, acc)

	var maxFlow float64
	switch placement {
	case Proportional:
		if src, ok := nodeCaps[bundle.Src]; ok {
			maxFlow = src.MaxTotalFlow
		}
	case EqualBalanced:
		maxFlow = srcBalancedFlow(nodeCaps)
	default:
		return PlacementMeta{}, ErrUnknownPlacement
	}

	placed := math.Min(maxFlow, volume)
	remaining := volume
	if !math.IsInf(volume, 1) {
		remaining = math.Max(volume-maxFlow, 0)
	}

	if placed <= MinFlow {
		return PlacementMeta{Placed: 0, Remaining: volume}, nil
	}

	meta := PlacementMeta{
		Placed:    placed,
		Remaining: remaining,
		Nodes:     map[core.NodeID]struct{}{bundle.Dst: {}},
		Edges:     map[core.EdgeKey]struct{}{},
	}

	switch placement {
	case Proportional:
		placeProportional(g, nodeCaps, placed, flowIndex, acc, &meta)
	case EqualBalanced:
		placeEqualBalanced(g, nodeCaps, placed, flowIndex, acc, &meta)
	}

	return meta, nil
}

func placeProportional(g *core.Graph, nodeCaps map[core.NodeID]*NodeCapacity, placed float64, flowIndex core.FlowIndex, acc core.Accessor, meta *PlacementMeta) {
	for nodeID, nc := range nodeCaps {
		if nc.FlowFractionTotal <= 0 {
			continue
		}
		meta.Nodes[nodeID] = struct{}{}

		var totalRemCap float64
		for key := range nc.Edges {
			e, err := g.GetEdge(key)
			if err != nil {
				continue
			}
			totalRemCap += acc.Residual(e)
		}
		if totalRemCap <= 0 {
			continue
		}

		for key := range nc.Edges {
			e, err := g.GetEdge(key)
			if err != nil {
				continue
			}
			edgeSubflow := nc.FlowFractionTotal * placed / totalRemCap * acc.Residual(e)
			if edgeSubflow == 0 {
				continue
			}
			meta.Edges[key] = struct{}{}
			acc.AddFlowContribution(e, flowIndex, edgeSubflow)
		}
	}
}

func placeEqualBalanced(g *core.Graph, nodeCaps map[core.NodeID]*NodeCapacity, placed float64, flowIndex core.FlowIndex, acc core.Accessor, meta *PlacementMeta) {
	for nodeID, nc := range nodeCaps {
		meta.Nodes[nodeID] = struct{}{}
		if len(nc.Edges) == 0 {
			continue
		}
		edgeSubflow := nc.FlowFractionBalanced * placed / float64(len(nc.Edges))

		for key := range nc.Edges {
			e, err := g.GetEdge(key)
			if err != nil {
				continue
			}
			meta.Edges[key] = struct{}{}
			acc.AddFlowContribution(e, flowIndex, edgeSubflow)
		}
	}
}

// RemoveFlow withdraws every contribution flowIndex made across all of g's
// edges, collapsing dust below MinFlow to exactly 0 via round12.
func RemoveFlow(g *core.Graph, flowIndex core.FlowIndex, acc core.Accessor) error {
	if g == nil {
		return ErrNilGraph
	}

	for _, e := range g.Edges() {
		if delta := acc.ClearFlowContribution(e, flowIndex); delta != 0 {
			acc.SetFlow(e, round12(acc.Flow(e)))
		}
	}

	return nil
}
