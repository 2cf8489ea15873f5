// File: presets.go
// Role: the five named FlowPolicy configurations, transcribed from
// get_flow_policy (ngraph/flow.py).
package policy

import (
	"github.com/katalvlaran/netgraph/edgeselect"
	"github.com/katalvlaran/netgraph/flow"
)

// NewShortestPathsECMP builds a policy modeling hop-by-hop equal-cost
// balanced forwarding, e.g. IP forwarding with ECMP: a single flow
// following every shortest path, splitting volume evenly across them.
func NewShortestPathsECMP() (*FlowPolicy, error) {
	return New(
		WithEdgeSelect(edgeselect.AllMinCost),
		WithFlowPlacement(flow.EqualBalanced),
		WithMultipath(true),
		WithMaxFlowCount(1),
	)
}

// NewShortestPathsUCMP builds a policy modeling hop-by-hop forwarding with
// proportional flow placement, e.g. IP forwarding with per-hop UCMP.
func NewShortestPathsUCMP() (*FlowPolicy, error) {
	return New(
		WithEdgeSelect(edgeselect.AllMinCost),
		WithFlowPlacement(flow.Proportional),
		WithMultipath(true),
		WithMaxFlowCount(1),
	)
}

// NewTEUCMPUnlim builds an "ideal" traffic-engineering policy: an unbounded
// number of single-path flows placed proportionally, e.g. multiple MPLS
// LSPs with UCMP flow placement.
func NewTEUCMPUnlim() (*FlowPolicy, error) {
	return New(
		WithEdgeSelect(edgeselect.AllMinCostWithCapRemaining),
		WithFlowPlacement(flow.Proportional),
		WithMultipath(false),
	)
}

// NewTEECMPUpTo256LSP builds a traffic-engineering policy capped at 256
// equal-cost-balanced single-path flows, e.g. up to 256 parallel MPLS LSPs
// with ECMP flow placement.
func NewTEECMPUpTo256LSP() (*FlowPolicy, error) {
	return New(
		WithEdgeSelect(edgeselect.AllMinCostWithCapRemaining),
		WithFlowPlacement(flow.EqualBalanced),
		WithMultipath(false),
		WithMaxFlowCount(256),
	)
}

// NewTEECMP16LSP builds a traffic-engineering policy holding exactly 16
// equal-cost-balanced single-path flows, e.g. 16 parallel MPLS LSPs with
// ECMP flow placement.
func NewTEECMP16LSP() (*FlowPolicy, error) {
	return New(
		WithEdgeSelect(edgeselect.AllMinCostWithCapRemaining),
		WithFlowPlacement(flow.EqualBalanced),
		WithMultipath(false),
		WithMinFlowCount(16),
		WithMaxFlowCount(16),
	)
}
