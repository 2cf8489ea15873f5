// File: flow.go
// Role: Flow, one path bundle's worth of placed volume within a FlowPolicy,
// grounded on the reference implementation's Flow (ngraph/flow.py).
package policy

import (
	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/flow"
	"github.com/katalvlaran/netgraph/pathbundle"
)

// Flow is a fraction of a demand placed along one PathBundle.
type Flow struct {
	PathBundle *pathbundle.PathBundle
	Index      core.FlowIndex

	// ExcludedEdges/ExcludedNodes are carried through reoptimization so a
	// reoptimized flow still avoids whatever its creator originally excluded.
	ExcludedEdges map[core.EdgeKey]struct{}
	ExcludedNodes map[core.NodeID]struct{}

	Src, Dst   core.NodeID
	PlacedFlow float64
}

func newFlow(bundle *pathbundle.PathBundle, idx core.FlowIndex, excludedEdges map[core.EdgeKey]struct{}, excludedNodes map[core.NodeID]struct{}) *Flow {
	return &Flow{
		PathBundle:    bundle,
		Index:         idx,
		ExcludedEdges: excludedEdges,
		ExcludedNodes: excludedNodes,
		Src:           bundle.Src,
		Dst:           bundle.Dst,
	}
}

// PlaceFlow places up to toPlace units of volume along f's path bundle,
// returning how much was actually placed and how much remains. A request
// below flow.MinFlow places nothing.
func (f *Flow) PlaceFlow(g *core.Graph, toPlace float64, placement flow.FlowPlacement, acc core.Accessor) (placed float64, remaining float64, err error) {
	remaining = toPlace
	if toPlace < flow.MinFlow {
		return 0, remaining, nil
	}

	meta, err := flow.PlaceFlow(g, f.PathBundle, toPlace, f.Index, placement, acc)
	if err != nil {
		return 0, remaining, err
	}
	f.PlacedFlow += meta.Placed

	return meta.Placed, meta.Remaining, nil
}

// RemoveFlow withdraws every unit f has placed, resetting PlacedFlow to 0.
func (f *Flow) RemoveFlow(g *core.Graph, acc core.Accessor) error {
	if err := flow.RemoveFlow(g, f.Index, acc); err != nil {
		return err
	}
	f.PlacedFlow = 0

	return nil
}
