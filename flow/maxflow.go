// File: maxflow.go
// Role: C7 MaxFlow solver, ported from calc_max_flow (max_flow.py): either a
// single shortest-path augmentation, or full iterative augmenting-path max
// flow over successive ALL_MIN_COST_WITH_CAP_REMAINING SPF bundles.
package flow

import (
	"errors"
	"math"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/edgeselect"
	"github.com/katalvlaran/netgraph/spf"
)

// maxIterations bounds the augmenting-path loop; a well-formed graph with
// finitely many distinct costs and non-degenerate capacities converges in
// far fewer iterations than this, so hitting it indicates a non-terminating
// accessor or a pathological zero-progress loop rather than a slow but
// legitimate computation.
const maxIterations = 10000

// ErrNonConvergent indicates the augmenting-path loop exceeded maxIterations
// without exhausting residual capacity between src and dst.
var ErrNonConvergent = errors.New("flow: max-flow augmentation did not converge")

// Options configures CalcMaxFlow.
type Options struct {
	ShortestPath   bool
	ResetFlowGraph bool
	CopyGraph      bool
	FlowPlacement  FlowPlacement
	Accessor       core.Accessor
}

// Option configures Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{CopyGraph: true, FlowPlacement: Proportional, Accessor: core.DefaultAccessor()}
}

// WithShortestPath restricts the solver to a single augmentation along one
// ALL_MIN_COST shortest-path bundle, instead of iterating to true max flow.
func WithShortestPath(v bool) Option { return func(o *Options) { o.ShortestPath = v } }

// WithResetFlowGraph zeroes all existing flow on the graph before solving.
func WithResetFlowGraph(v bool) Option { return func(o *Options) { o.ResetFlowGraph = v } }

// WithCopyGraph controls whether CalcMaxFlow solves on a Clone() (default
// true) or mutates the caller's graph directly.
func WithCopyGraph(v bool) Option { return func(o *Options) { o.CopyGraph = v } }

// WithFlowPlacementMode selects the Proportional/EqualBalanced discipline
// used for every augmentation.
func WithFlowPlacementMode(p FlowPlacement) Option {
	return func(o *Options) { o.FlowPlacement = p }
}

// WithMaxFlowAccessor overrides the capacity/flow attribute accessor.
func WithMaxFlowAccessor(a core.Accessor) Option { return func(o *Options) { o.Accessor = a } }

// Result is CalcMaxFlow's return value: the flow value, the graph the flow
// was actually placed on (a clone unless WithCopyGraph(false)), and a
// descriptive summary.
type Result struct {
	TotalFlow float64
	Graph     *core.Graph
	Summary   *FlowSummary
}

// CalcMaxFlow computes max flow from src to dst, placing flow on a clone of
// g (or g itself under WithCopyGraph(false)).
//
// src == dst always yields zero flow (a self-loop carries no net flow out of
// its own node), matching the reference implementation's short-circuit.
func CalcMaxFlow(g *core.Graph, src, dst core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(src) {
		return nil, core.ErrUnknownNode
	}
	if !g.HasNode(dst) {
		return nil, core.ErrUnknownNode
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	workGraph := g
	if o.CopyGraph {
		workGraph = g.Clone()
	}
	if o.ResetFlowGraph {
		workGraph.ResetFlows()
	}

	result := &Result{Graph: workGraph}
	costDist := map[float64]float64{}

	if src != dst {
		var err error
		if o.ShortestPath {
			result.TotalFlow, err = augmentOnce(workGraph, src, dst, o, costDist)
		} else {
			result.TotalFlow, err = augmentToMax(workGraph, src, dst, o, costDist)
		}
		if err != nil {
			return nil, err
		}
	}

	result.Summary = BuildSummary(workGraph, src, dst, o.Accessor, result.TotalFlow, costDist)

	return result, nil
}

func augmentOnce(g *core.Graph, src, dst core.NodeID, o Options, costDist map[float64]float64) (float64, error) {
	sel := edgeselect.NewSelector(edgeselect.AllMinCost, edgeselect.WithAccessor(o.Accessor))
	bundle, err := spf.BuildBundle(g, src, dst, sel, true)
	if err != nil {
		return 0, err
	}
	if bundle.IsEmpty() {
		return 0, nil
	}

	idx := core.FlowIndex{Src: src, Dst: dst, ID: 0}
	meta, err := PlaceFlow(g, bundle, math.Inf(1), idx, o.FlowPlacement, o.Accessor)
	if err != nil {
		return 0, err
	}
	if meta.Placed > 0 {
		costDist[float64(bundle.Cost)] += meta.Placed
	}

	return meta.Placed, nil
}

func augmentToMax(g *core.Graph, src, dst core.NodeID, o Options, costDist map[float64]float64) (float64, error) {
	var total float64
	var id uint64
	for iter := 0; iter < maxIterations; iter++ {
		sel := edgeselect.NewSelector(
			edgeselect.AllMinCostWithCapRemaining,
			edgeselect.WithAccessor(o.Accessor),
			edgeselect.WithMinResidual(MinFlow),
		)
		bundle, err := spf.BuildBundle(g, src, dst, sel, true)
		if err != nil {
			return total, err
		}
		if bundle.IsEmpty() {
			return total, nil
		}

		idx := core.FlowIndex{Src: src, Dst: dst, ID: id}
		id++
		meta, err := PlaceFlow(g, bundle, math.Inf(1), idx, o.FlowPlacement, o.Accessor)
		if err != nil {
			return total, err
		}
		if meta.Placed <= 0 {
			return total, nil
		}
		total += meta.Placed
		costDist[float64(bundle.Cost)] += meta.Placed
	}

	return total, ErrNonConvergent
}
