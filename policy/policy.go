// File: policy.go
// Role: FlowPolicy's state machine, grounded on the reference
// implementation's FlowPolicy (ngraph/flow.py): path search
// (_get_path_bundle), flow creation, the place_demand round-robin loop,
// reoptimization, rebalancing, and teardown.
package policy

import (
	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/edgeselect"
	"github.com/katalvlaran/netgraph/flow"
	"github.com/katalvlaran/netgraph/pathbundle"
	"github.com/katalvlaran/netgraph/spf"
)

// FlowPolicy realizes a demand through one or more Flows, per Config.
type FlowPolicy struct {
	cfg Config

	flows     map[core.FlowIndex]*Flow
	flowOrder []core.FlowIndex

	bestPathCost    int64
	bestPathCostSet bool
	nextFlowID      uint64
}

// New builds a FlowPolicy from opts, validating the static-path/MaxFlowCount
// and EqualBalanced/MaxFlowCount constraints the reference implementation
// enforces at construction time.
func New(opts ...Option) (*FlowPolicy, error) {
	cfg := Config{MinFlowCount: 1, Accessor: core.DefaultAccessor()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Accessor == (core.Accessor{}) {
		cfg.Accessor = core.DefaultAccessor()
	}

	if len(cfg.StaticPaths) > 0 {
		if cfg.MaxFlowCount != 0 && cfg.MaxFlowCount != len(cfg.StaticPaths) {
			return nil, ErrMaxFlowCountMismatch
		}
		cfg.MaxFlowCount = len(cfg.StaticPaths)
	}
	if cfg.FlowPlacement == flow.EqualBalanced && cfg.MaxFlowCount == 0 {
		return nil, ErrMaxFlowCountRequired
	}

	return &FlowPolicy{cfg: cfg, flows: make(map[core.FlowIndex]*Flow)}, nil
}

// FlowCount returns the number of flows currently held.
func (p *FlowPolicy) FlowCount() int { return len(p.flows) }

// PlacedDemand returns the sum of every flow's placed volume.
func (p *FlowPolicy) PlacedDemand() float64 {
	var total float64
	for _, f := range p.flows {
		total += f.PlacedFlow
	}

	return total
}

// Flows returns the policy's flows in creation order.
func (p *FlowPolicy) Flows() []*Flow {
	out := make([]*Flow, 0, len(p.flowOrder))
	for _, idx := range p.flowOrder {
		if f, ok := p.flows[idx]; ok {
			out = append(out, f)
		}
	}

	return out
}

func (p *FlowPolicy) nextFlowIndex(src, dst core.NodeID, class core.FlowClass) core.FlowIndex {
	id := p.nextFlowID
	p.nextFlowID++

	return core.FlowIndex{Src: src, Dst: dst, Class: class, ID: id}
}

// getPathBundle searches for a path bundle from src to dst admitting at
// least minFlow residual capacity per edge, honoring excludedEdges/Nodes and
// the policy's cost-cap configuration. Returns a nil bundle (no error) when
// no admissible path exists, or when the cheapest admissible path exceeds
// the configured cost cap. Returns core.ErrUnknownNode when dst is not a
// node of g.
func (p *FlowPolicy) getPathBundle(g *core.Graph, src, dst core.NodeID, minFlow float64, excludedEdges map[core.EdgeKey]struct{}, excludedNodes map[core.NodeID]struct{}) (*pathbundle.PathBundle, error) {
	if !g.HasNode(dst) {
		return nil, core.ErrUnknownNode
	}

	selOpts := []edgeselect.Option{edgeselect.WithAccessor(p.cfg.Accessor)}
	if minFlow > 0 {
		selOpts = append(selOpts, edgeselect.WithMinResidual(minFlow))
	}
	if len(excludedEdges) > 0 {
		selOpts = append(selOpts, edgeselect.WithExcludedEdges(excludedEdges))
	}
	if len(excludedNodes) > 0 {
		selOpts = append(selOpts, edgeselect.WithExcludedNodes(excludedNodes))
	}
	if p.cfg.Filter != "" {
		selOpts = append(selOpts, edgeselect.WithFilter(p.cfg.Filter, p.cfg.FilterValue))
	}
	sel := edgeselect.NewSelector(p.cfg.EdgeSelectPolicy, selOpts...)

	res, err := spf.Run(g, src, sel, p.cfg.Multipath)
	if err != nil {
		return nil, err
	}

	dstCost, reachable := res.Cost[dst]
	if !reachable {
		return nil, nil
	}

	if !p.bestPathCostSet {
		p.bestPathCost = dstCost
		p.bestPathCostSet = true
	}
	if p.cfg.MaxPathCost != 0 || p.cfg.MaxPathCostFactor != 0 {
		factor := p.cfg.MaxPathCostFactor
		if factor == 0 {
			factor = 1
		}
		costCap := p.cfg.MaxPathCost
		relative := int64(float64(p.bestPathCost) * factor)
		if costCap == 0 || relative < costCap {
			costCap = relative
		}
		if dstCost > costCap {
			return nil, nil
		}
	}

	return pathbundle.New(src, dst, res.Pred, res.PredOrder, dstCost), nil
}

func (p *FlowPolicy) createFlow(g *core.Graph, src, dst core.NodeID, class core.FlowClass, minFlow float64, bundle *pathbundle.PathBundle, excludedEdges map[core.EdgeKey]struct{}, excludedNodes map[core.NodeID]struct{}) (*Flow, error) {
	if bundle == nil {
		var err error
		bundle, err = p.getPathBundle(g, src, dst, minFlow, excludedEdges, excludedNodes)
		if err != nil {
			return nil, err
		}
	}
	if bundle == nil || bundle.IsEmpty() {
		return nil, nil
	}

	idx := p.nextFlowIndex(src, dst, class)
	f := newFlow(bundle, idx, excludedEdges, excludedNodes)
	p.flows[idx] = f
	p.flowOrder = append(p.flowOrder, idx)

	return f, nil
}

func (p *FlowPolicy) createFlows(g *core.Graph, src, dst core.NodeID, class core.FlowClass, minFlow float64) error {
	if len(p.cfg.StaticPaths) > 0 {
		for _, bundle := range p.cfg.StaticPaths {
			if bundle.Src != src || bundle.Dst != dst {
				return ErrStaticPathEndpointMismatch
			}
			if _, err := p.createFlow(g, src, dst, class, minFlow, bundle, nil, nil); err != nil {
				return err
			}
		}

		return nil
	}

	for i := 0; i < p.cfg.MinFlowCount; i++ {
		if _, err := p.createFlow(g, src, dst, class, minFlow, nil, nil, nil); err != nil {
			return err
		}
	}

	return nil
}

func (p *FlowPolicy) deleteFlow(g *core.Graph, idx core.FlowIndex) error {
	f, ok := p.flows[idx]
	if !ok {
		return ErrUnknownFlow
	}
	if err := f.RemoveFlow(g, p.cfg.Accessor); err != nil {
		return err
	}
	delete(p.flows, idx)
	for i, id := range p.flowOrder {
		if id == idx {
			p.flowOrder = append(p.flowOrder[:i], p.flowOrder[i+1:]...)
			break
		}
	}

	return nil
}

// reoptimizeFlow removes idx's flow, searches for a bundle admitting at
// least its placed volume plus headroom, and re-places it there. If no
// better bundle is found, the original placement is restored unchanged.
func (p *FlowPolicy) reoptimizeFlow(g *core.Graph, idx core.FlowIndex, headroom float64) (*Flow, error) {
	f, ok := p.flows[idx]
	if !ok {
		return nil, ErrUnknownFlow
	}

	volume := f.PlacedFlow
	newMinVolume := volume + headroom
	if err := f.RemoveFlow(g, p.cfg.Accessor); err != nil {
		return nil, err
	}

	bundle, err := p.getPathBundle(g, f.Src, f.Dst, newMinVolume, f.ExcludedEdges, f.ExcludedNodes)
	if err != nil {
		return nil, err
	}
	if bundle == nil || sameBundle(bundle, f.PathBundle) {
		if _, _, err := f.PlaceFlow(g, volume, p.cfg.FlowPlacement, p.cfg.Accessor); err != nil {
			return nil, err
		}

		return nil, nil
	}

	newFlow := newFlow(bundle, idx, f.ExcludedEdges, f.ExcludedNodes)
	if _, _, err := newFlow.PlaceFlow(g, volume, p.cfg.FlowPlacement, p.cfg.Accessor); err != nil {
		return nil, err
	}
	p.flows[idx] = newFlow

	return newFlow, nil
}

func sameBundle(a, b *pathbundle.PathBundle) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	return a.Src == b.Src && a.Dst == b.Dst && a.Cost == b.Cost
}

// PlaceDemand places up to volume units of flow from src to dst, creating
// flows as needed (up to MaxFlowCount) or reoptimizing existing ones once
// the limit is reached, and rebalancing under EqualBalanced placement.
// Returns the amount placed and the amount of volume left unplaced.
func (p *FlowPolicy) PlaceDemand(g *core.Graph, src, dst core.NodeID, class core.FlowClass, volume float64, targetFlowVolume, minFlow float64) (float64, float64, error) {
	if len(p.flows) == 0 {
		if err := p.createFlows(g, src, dst, class, minFlow); err != nil {
			return 0, volume, err
		}
	}

	queue := append([]core.FlowIndex(nil), p.flowOrder...)
	if targetFlowVolume == 0 {
		targetFlowVolume = volume
	}

	var totalPlaced float64
	iterations := 0
	for volume >= flow.MinFlow && len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]

		f, ok := p.flows[idx]
		if !ok {
			continue
		}

		toPlace := targetFlowVolume
		if volume < toPlace {
			toPlace = volume
		}
		placed, _, err := f.PlaceFlow(g, toPlace, p.cfg.FlowPlacement, p.cfg.Accessor)
		if err != nil {
			return totalPlaced, volume, err
		}
		volume -= placed
		totalPlaced += placed

		if targetFlowVolume-f.PlacedFlow >= flow.MinFlow && len(p.cfg.StaticPaths) == 0 {
			var nextFlow *Flow
			if p.cfg.MaxFlowCount == 0 || len(p.flows) < p.cfg.MaxFlowCount {
				nextFlow, err = p.createFlow(g, src, dst, class, 0, nil, nil, nil)
			} else {
				nextFlow, err = p.reoptimizeFlow(g, idx, flow.MinFlow)
			}
			if err != nil {
				return totalPlaced, volume, err
			}
			if nextFlow != nil {
				queue = append(queue, nextFlow.Index)
			}
		}

		iterations++
		if iterations > maxIterations {
			return totalPlaced, volume, ErrNonConvergent
		}
	}

	if p.cfg.FlowPlacement == flow.EqualBalanced && len(p.flows) > 0 {
		target := p.PlacedDemand() / float64(len(p.flows))
		needsRebalance := false
		for _, f := range p.flows {
			if absFloat(target-f.PlacedFlow) >= flow.MinFlow {
				needsRebalance = true
				break
			}
		}
		if needsRebalance {
			placed, excess, err := p.RebalanceDemand(g, src, dst, class, target)
			if err != nil {
				return totalPlaced, volume, err
			}
			totalPlaced = placed
			volume += excess
		}
	}

	return totalPlaced, volume, nil
}

// RebalanceDemand tears down all current flows and re-places the same total
// volume at a uniform per-flow target.
func (p *FlowPolicy) RebalanceDemand(g *core.Graph, src, dst core.NodeID, class core.FlowClass, targetFlowVolume float64) (float64, float64, error) {
	volume := p.PlacedDemand()
	if err := p.RemoveDemand(g); err != nil {
		return 0, volume, err
	}

	return p.PlaceDemand(g, src, dst, class, volume, targetFlowVolume, 0)
}

// RemoveDemand tears down every flow the policy currently holds.
func (p *FlowPolicy) RemoveDemand(g *core.Graph) error {
	for _, idx := range append([]core.FlowIndex(nil), p.flowOrder...) {
		if err := p.deleteFlow(g, idx); err != nil {
			return err
		}
	}

	return nil
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
