// File: select.go
// Role: the four selection disciplines, plus the shared admissibility filter.
package edgeselect

import "github.com/katalvlaran/netgraph/core"

// admissible reports whether e may participate in selection at all, before
// any cost/capacity comparison: not excluded by key or endpoint, and
// matching the configured attribute filter if one is set.
func (o Options) admissible(e *core.Edge) bool {
	if _, excluded := o.ExcludedEdges[e.Key]; excluded {
		return false
	}
	if _, excluded := o.ExcludedNodes[e.From]; excluded {
		return false
	}
	if _, excluded := o.ExcludedNodes[e.To]; excluded {
		return false
	}
	if o.Filter != "" {
		v, ok := e.Attrs[o.Filter]
		if !ok || v != o.FilterValue {
			return false
		}
	}

	return true
}

// allMinCost selects every admissible edge at the minimum cost.
func (o Options) allMinCost(_, _ core.NodeID, edges []*core.Edge) (int64, []core.EdgeKey) {
	var minCost int64
	found := false
	var selected []core.EdgeKey

	for _, e := range edges {
		if !o.admissible(e) {
			continue
		}
		if !found || e.Cost < minCost {
			minCost = e.Cost
			found = true
			selected = []core.EdgeKey{e.Key}
		} else if e.Cost == minCost {
			selected = append(selected, e.Key)
		}
	}
	if !found {
		return 0, nil
	}

	return minCost, selected
}

// singleMinCost selects one minimum-cost edge, the smallest key among ties.
func (o Options) singleMinCost(src, dst core.NodeID, edges []*core.Edge) (int64, []core.EdgeKey) {
	minCost, all := o.allMinCost(src, dst, edges)
	if len(all) == 0 {
		return 0, nil
	}

	best := all[0]
	for _, k := range all[1:] {
		if k < best {
			best = k
		}
	}

	return minCost, []core.EdgeKey{best}
}

// allMinCostWithCapRemaining selects minimum-cost edges among those whose
// residual capacity exceeds MinResidual. Minimum cost is computed over the
// capacity-eligible subset, matching the original's two-stage filter order:
// first drop saturated edges, then take the min among what remains.
func (o Options) allMinCostWithCapRemaining(_, _ core.NodeID, edges []*core.Edge) (int64, []core.EdgeKey) {
	var minCost int64
	found := false
	var selected []core.EdgeKey

	for _, e := range edges {
		if !o.admissible(e) {
			continue
		}
		if o.Accessor.Residual(e) <= o.MinResidual {
			continue
		}
		if !found || e.Cost < minCost {
			minCost = e.Cost
			found = true
			selected = []core.EdgeKey{e.Key}
		} else if e.Cost == minCost {
			selected = append(selected, e.Key)
		}
	}
	if !found {
		return 0, nil
	}

	return minCost, selected
}

// allAnyCostWithCapRemaining selects every edge with residual capacity above
// MinResidual, regardless of cost. minCost reported is the minimum cost
// among the selected edges (for SPF's relaxation bookkeeping).
func (o Options) allAnyCostWithCapRemaining(_, _ core.NodeID, edges []*core.Edge) (int64, []core.EdgeKey) {
	var minCost int64
	found := false
	var selected []core.EdgeKey

	for _, e := range edges {
		if !o.admissible(e) {
			continue
		}
		if o.Accessor.Residual(e) <= o.MinResidual {
			continue
		}
		selected = append(selected, e.Key)
		if !found || e.Cost < minCost {
			minCost = e.Cost
			found = true
		}
	}
	if !found {
		return 0, nil
	}

	return minCost, selected
}
