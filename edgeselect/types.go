// Package edgeselect provides the pure function family the SPF kernel uses
// to pick, among the parallel edges between two adjacent nodes, which ones
// are admissible for a given search.
//
// Policy (enumerated):
//
//	– AllMinCost                 – all parallel edges with the minimum cost.
//	– SingleMinCost              – one arbitrary min-cost edge (stable
//	                                tie-break by EdgeKey ascending).
//	– AllMinCostWithCapRemaining – min-cost edges restricted to those with
//	                                residual capacity > MinResidual.
//	– AllAnyCostWithCapRemaining – all edges with residual capacity >
//	                                MinResidual, regardless of cost.
//
// Every selector honors Options.ExcludedEdges/ExcludedNodes (edges touching
// an excluded node, or an excluded key directly, are never selected) and an
// optional Filter/FilterValue pair matched against Edge.Attrs, using the
// same option-functor idiom as the rest of this module.
package edgeselect

import (
	"github.com/katalvlaran/netgraph/core"
)

// Policy identifies one edge-selection discipline.
type Policy int

const (
	// AllMinCost selects every parallel edge at the minimum cost.
	AllMinCost Policy = iota

	// SingleMinCost selects exactly one minimum-cost edge, the one with the
	// smallest EdgeKey among ties.
	SingleMinCost

	// AllMinCostWithCapRemaining selects minimum-cost edges whose residual
	// capacity exceeds Options.MinResidual.
	AllMinCostWithCapRemaining

	// AllAnyCostWithCapRemaining selects every edge (any cost) whose residual
	// capacity exceeds Options.MinResidual.
	AllAnyCostWithCapRemaining
)

// Options configures a Selector.
//
// ExcludedEdges  – edge keys never selectable, regardless of policy.
// ExcludedNodes  – nodes whose incident edges are never selectable.
// MinResidual    – residual-capacity threshold for the *WithCapRemaining
//
//	policies; edges at or below this value are treated as saturated.
//	Defaults to 0 when left unset via NewSelector.
//
// Filter/FilterValue – when Filter is non-empty, only edges whose
//
//	Attrs[Filter] == FilterValue participate in selection.
//
// Accessor – resolves capacity/flow attribute names; DefaultAccessor if unset.
type Options struct {
	ExcludedEdges map[core.EdgeKey]struct{}
	ExcludedNodes map[core.NodeID]struct{}
	MinResidual   float64
	Filter        string
	FilterValue   interface{}
	Accessor      core.Accessor
}

// Option configures Options.
type Option func(*Options)

// WithExcludedEdges marks the given edge keys as never selectable.
func WithExcludedEdges(keys map[core.EdgeKey]struct{}) Option {
	return func(o *Options) { o.ExcludedEdges = keys }
}

// WithExcludedNodes marks the given nodes' incident edges as never selectable.
func WithExcludedNodes(nodes map[core.NodeID]struct{}) Option {
	return func(o *Options) { o.ExcludedNodes = nodes }
}

// WithMinResidual sets the residual-capacity threshold for the
// *WithCapRemaining policies. Must be >= 0; negative values are clamped to 0.
func WithMinResidual(min float64) Option {
	return func(o *Options) {
		if min < 0 {
			min = 0
		}
		o.MinResidual = min
	}
}

// WithFilter restricts selection to edges whose Attrs[attr] == value.
func WithFilter(attr string, value interface{}) Option {
	return func(o *Options) {
		o.Filter = attr
		o.FilterValue = value
	}
}

// WithAccessor overrides the capacity/flow attribute accessor.
func WithAccessor(a core.Accessor) Option {
	return func(o *Options) { o.Accessor = a }
}

// SelectorFunc returns (minCost, selectedKeys) for the edges between src and
// dst. selectedKeys is nil (not just empty) when nothing is admissible.
type SelectorFunc func(src, dst core.NodeID, edges []*core.Edge) (minCost int64, selected []core.EdgeKey)

// NewSelector builds a SelectorFunc for the given Policy and Options.
func NewSelector(policy Policy, opts ...Option) SelectorFunc {
	o := Options{Accessor: core.DefaultAccessor()}
	for _, opt := range opts {
		opt(&o)
	}

	switch policy {
	case SingleMinCost:
		return o.singleMinCost
	case AllMinCostWithCapRemaining:
		return o.allMinCostWithCapRemaining
	case AllAnyCostWithCapRemaining:
		return o.allAnyCostWithCapRemaining
	default:
		return o.allMinCost
	}
}
