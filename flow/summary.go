// File: summary.go
// Role: FlowSummary construction and the SaturatedEdges helper, grounded on
// the reference implementation's FlowSummary usage in max_flow.py's
// return_summary path and tests/algorithms/test_max_flow.py.
package flow

import "github.com/katalvlaran/netgraph/core"

// FlowSummary describes the state of a graph after a max-flow computation:
// per-edge flow and residual capacity, the set of nodes reachable from src
// in the residual graph, the min-cut edges separating src from dst, and how
// total flow decomposes across the distinct path costs it traveled.
type FlowSummary struct {
	EdgeFlow         map[core.EdgeKey]float64
	ResidualCap      map[core.EdgeKey]float64
	Reachable        map[core.NodeID]struct{}
	MinCut           []core.EdgeKey
	CostDistribution map[float64]float64
	TotalFlow        float64
}

// BuildSummary computes a FlowSummary for g after flow has been placed from
// src towards dst, using costDist as the already-accumulated cost ->
// placed-flow decomposition (see augmentOnce/augmentToMax).
func BuildSummary(g *core.Graph, src, _ core.NodeID, acc core.Accessor, totalFlow float64, costDist map[float64]float64) *FlowSummary {
	edgeFlow := make(map[core.EdgeKey]float64)
	residualCap := make(map[core.EdgeKey]float64)
	for _, e := range g.Edges() {
		edgeFlow[e.Key] = acc.Flow(e)
		residualCap[e.Key] = acc.Residual(e)
	}

	reachable := residualReachable(g, src, acc)

	var minCut []core.EdgeKey
	for _, e := range g.Edges() {
		_, fromReachable := reachable[e.From]
		_, toReachable := reachable[e.To]
		if fromReachable && !toReachable && acc.Residual(e) <= MinFlow {
			minCut = append(minCut, e.Key)
		}
	}

	dist := make(map[float64]float64, len(costDist))
	for k, v := range costDist {
		dist[k] = v
	}

	return &FlowSummary{
		EdgeFlow:         edgeFlow,
		ResidualCap:      residualCap,
		Reachable:        reachable,
		MinCut:           minCut,
		CostDistribution: dist,
		TotalFlow:        totalFlow,
	}
}

// residualReachable returns the set of nodes reachable from src in the
// residual graph: forward along edges with residual capacity, and backward
// along edges already carrying flow (since that flow could be canceled).
func residualReachable(g *core.Graph, src core.NodeID, acc core.Accessor) map[core.NodeID]struct{} {
	visited := map[core.NodeID]struct{}{src: {}}
	queue := []core.NodeID{src}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, e := range g.OutEdges(u) {
			if acc.Residual(e) > MinFlow {
				if _, seen := visited[e.To]; !seen {
					visited[e.To] = struct{}{}
					queue = append(queue, e.To)
				}
			}
		}
		for _, e := range g.InEdges(u) {
			if acc.Flow(e) > MinFlow {
				if _, seen := visited[e.From]; !seen {
					visited[e.From] = struct{}{}
					queue = append(queue, e.From)
				}
			}
		}
	}

	return visited
}

// SaturatedEdges runs CalcMaxFlow from src to dst and returns the min-cut
// edges separating src's residual-reachable partition from dst: the edges
// whose saturation is what actually bounds the flow, not every edge that
// happens to sit at zero residual capacity elsewhere in the graph.
func SaturatedEdges(g *core.Graph, src, dst core.NodeID, opts ...Option) ([]core.EdgeKey, error) {
	res, err := CalcMaxFlow(g, src, dst, opts...)
	if err != nil {
		return nil, err
	}

	return res.Summary.MinCut, nil
}
