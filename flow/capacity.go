// File: capacity.go
// Role: C5 CapacityCalculator, ported from calc_graph_cap (calc_cap.py):
// a backward BFS from dst over a PathBundle's predecessor DAG to compute
// per-node residual-capacity aggregates, followed by a forward BFS from src
// that splits a unit of flow to derive flow_fraction_total/balanced at
// every node.
package flow

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/pathbundle"
)

// tupleFlow pairs a specific parallel-edge tuple with its own max-flow
// triple, so a node with multiple downstream tuples (one per successor) can
// aggregate across them.
type tupleFlow struct {
	keys []core.EdgeKey
	flow MaxFlowTriple
}

// NodeCapacity is the per-node residual-capacity bookkeeping record built
// by CalcCapacity, one per node appearing as a predecessor in the bundle.
type NodeCapacity struct {
	NodeID core.NodeID

	// Edges is the set of edge keys this node forwards flow across (the
	// union of every downstream tuple's keys).
	Edges map[core.EdgeKey]struct{}

	// edgesMaxFlow maps a tuple key to its max-flow triple; tupleOrder
	// preserves first-discovered order for deterministic aggregation.
	edgesMaxFlow map[string]tupleFlow
	tupleOrder   []string

	MaxBalancedFlow float64
	MaxSingleFlow   float64
	MaxTotalFlow    float64

	FlowFractionTotal    float64
	FlowFractionBalanced float64
}

func tupleKey(keys []core.EdgeKey) string {
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(k), 10))
	}

	return sb.String()
}

func minFloat(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}

	return m
}

func maxFloat(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}

	return m
}

func sumFloat(vals []float64) float64 {
	var s float64
	for _, v := range vals {
		s += v
	}

	return s
}

// CalcCapacity computes the scalar MaxFlowTriple for bundle.Src and the
// per-node NodeCapacity records used by FlowPlacer, from the residual
// capacities (accessor.Capacity - accessor.Flow) on every edge in the
// bundle's predecessor DAG.
//
// Complexity: O(|DAG|).
func CalcCapacity(g *core.Graph, bundle *pathbundle.PathBundle, acc core.Accessor) (MaxFlowTriple, map[core.NodeID]*NodeCapacity) {
	nodeCaps := make(map[core.NodeID]*NodeCapacity)
	succ := make(map[core.NodeID]map[core.NodeID][]core.EdgeKey)

	// Phase 1: backward BFS from dst over pred, aggregating residual
	// capacity at each node.
	queue := []core.NodeID{bundle.Dst}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		for _, prevHop := range bundle.PredOrder[node] {
			edgeList := bundle.Pred[node][prevHop]
			tk := tupleKey(edgeList)

			if succ[prevHop] == nil {
				succ[prevHop] = make(map[core.NodeID][]core.EdgeKey)
			}
			succ[prevHop][node] = edgeList

			prevCap, ok := nodeCaps[prevHop]
			if !ok {
				prevCap = &NodeCapacity{
					NodeID:       prevHop,
					Edges:        make(map[core.EdgeKey]struct{}),
					edgesMaxFlow: make(map[string]tupleFlow),
				}
				nodeCaps[prevHop] = prevCap
			}
			for _, k := range edgeList {
				prevCap.Edges[k] = struct{}{}
			}

			residuals := make([]float64, len(edgeList))
			for i, k := range edgeList {
				e, err := g.GetEdge(k)
				if err != nil {
					continue
				}
				residuals[i] = acc.Residual(e)
			}

			maxTotal := sumFloat(residuals)
			maxSingle := maxFloat(residuals)
			maxBalanced := minFloat(residuals) * float64(len(residuals))

			if downstream, known := nodeCaps[node]; known {
				maxTotal = minOf(maxTotal, downstream.MaxTotalFlow)
				maxSingle = minOf(maxSingle, downstream.MaxSingleFlow)
				maxBalanced = minOf(maxBalanced, downstream.MaxBalancedFlow)
			}

			if _, exists := prevCap.edgesMaxFlow[tk]; !exists {
				prevCap.tupleOrder = append(prevCap.tupleOrder, tk)
			}
			prevCap.edgesMaxFlow[tk] = tupleFlow{keys: edgeList, flow: MaxFlowTriple{
				Total: maxTotal, Single: maxSingle, Balanced: maxBalanced,
			}}

			recomputeAggregates(prevCap)

			if prevHop != bundle.Src {
				queue = append(queue, prevHop)
			}
		}
	}

	// Phase 2: forward BFS from src over succ, splitting a unit of flow.
	type frame struct {
		node             core.NodeID
		fractionTotal    float64
		fractionBalanced float64
	}
	fqueue := []frame{{node: bundle.Src, fractionTotal: 1, fractionBalanced: 1}}
	for len(fqueue) > 0 {
		f := fqueue[0]
		fqueue = fqueue[1:]

		nc, ok := nodeCaps[f.node]
		if !ok {
			continue
		}
		nc.FlowFractionTotal += f.fractionTotal
		nc.FlowFractionBalanced += f.fractionBalanced

		for nextHop, tuple := range succ[f.node] {
			if nextHop == bundle.Dst {
				continue
			}
			tk := tupleKey(tuple)
			tup := nc.edgesMaxFlow[tk]

			var nextTotal float64
			if nc.MaxTotalFlow > 0 {
				nextTotal = f.fractionTotal * (tup.flow.Total / nc.MaxTotalFlow)
			}
			nextBalanced := f.fractionBalanced / float64(len(nc.Edges)) * float64(len(tuple))

			fqueue = append(fqueue, frame{node: nextHop, fractionTotal: nextTotal, fractionBalanced: nextBalanced})
		}
	}

	src, ok := nodeCaps[bundle.Src]
	if !ok {
		return MaxFlowTriple{}, nodeCaps
	}

	balanced := srcBalancedFlow(nodeCaps)
	result := MaxFlowTriple{Total: src.MaxTotalFlow, Single: src.MaxSingleFlow, Balanced: balanced}

	return result, nodeCaps
}

// recomputeAggregates recalls MaxBalancedFlow/MaxSingleFlow/MaxTotalFlow
// from prevCap's per-tuple triples, iterating tupleOrder for determinism.
func recomputeAggregates(prevCap *NodeCapacity) {
	ratios := make([]float64, 0, len(prevCap.tupleOrder))
	var totalAgg, maxSingleAgg float64
	for i, tk := range prevCap.tupleOrder {
		tup := prevCap.edgesMaxFlow[tk]
		ratios = append(ratios, tup.flow.Balanced/float64(len(tup.keys)))
		totalAgg += tup.flow.Total
		if i == 0 || tup.flow.Single > maxSingleAgg {
			maxSingleAgg = tup.flow.Single
		}
	}
	prevCap.MaxBalancedFlow = minFloat(ratios) * float64(len(prevCap.Edges))
	prevCap.MaxSingleFlow = maxSingleAgg
	prevCap.MaxTotalFlow = totalAgg
}

// srcBalancedFlow is min over every node of (MaxBalancedFlow /
// FlowFractionBalanced), the balanced discipline's global bottleneck.
func srcBalancedFlow(nodeCaps map[core.NodeID]*NodeCapacity) float64 {
	first := true
	var best float64
	for _, nc := range nodeCaps {
		if nc.FlowFractionBalanced == 0 {
			continue
		}
		ratio := nc.MaxBalancedFlow / nc.FlowFractionBalanced
		if first || ratio < best {
			best = ratio
			first = false
		}
	}
	if first {
		return 0
	}

	return best
}

func minOf(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}
