// File: sensitivity.go
// Role: RunSensitivity, grounded on run_sensitivity (max_flow.py module
// referenced by tests/algorithms/test_max_flow.py): perturb each min-cut
// edge's capacity by a fixed delta in isolation and report the resulting change in
// total max flow, clamping capacity at zero.
package flow

import "github.com/katalvlaran/netgraph/core"

// RunSensitivity returns, for every saturated (min-cut) edge between src and
// dst, the change in max flow that results from adjusting that edge's
// capacity alone by changeAmount (clamped so capacity never goes negative).
// Positive changeAmount probes headroom; negative probes bottleneck removal.
// Edges outside the min-cut are not perturbed and have no entry in the
// result.
func RunSensitivity(g *core.Graph, src, dst core.NodeID, changeAmount float64, opts ...Option) (map[core.EdgeKey]float64, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	baseline, err := CalcMaxFlow(g, src, dst, opts...)
	if err != nil {
		return nil, err
	}

	result := make(map[core.EdgeKey]float64)
	for _, key := range baseline.Summary.MinCut {
		clone := g.Clone()
		ce, err := clone.GetEdge(key)
		if err != nil {
			continue
		}

		newCap := o.Accessor.Capacity(ce) + changeAmount
		if newCap < 0 {
			newCap = 0
		}
		o.Accessor.SetCapacity(ce, newCap)

		perturbed, err := CalcMaxFlow(clone, src, dst, append(append([]Option{}, opts...), WithCopyGraph(false))...)
		if err != nil {
			continue
		}
		result[key] = perturbed.TotalFlow - baseline.TotalFlow
	}

	return result, nil
}
