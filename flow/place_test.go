package flow_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/edgeselect"
	"github.com/katalvlaran/netgraph/flow"
	"github.com/katalvlaran/netgraph/spf"
)

func TestPlaceFlow_ProportionalSaturatesShortestPathBundle(t *testing.T) {
	g := buildParallelGraph(t)
	acc := core.DefaultAccessor()
	sel := edgeselect.NewSelector(edgeselect.AllMinCost)
	bundle, err := spf.BuildBundle(g, "A", "C", sel, true)
	require.NoError(t, err)

	idx := core.FlowIndex{Src: "A", Dst: "C", ID: 1}
	meta, err := flow.PlaceFlow(g, bundle, math.Inf(1), idx, flow.Proportional, acc)
	require.NoError(t, err)
	require.Equal(t, 3.0, meta.Placed)

	var totalFlow float64
	for _, e := range g.Edges() {
		if e.From == "A" && e.To == "B" {
			totalFlow += acc.Flow(e)
		}
	}
	require.Equal(t, 3.0, totalFlow, "A->B total flow")
}

func TestPlaceFlow_EqualBalanced(t *testing.T) {
	g := buildParallelGraph(t)
	acc := core.DefaultAccessor()
	sel := edgeselect.NewSelector(edgeselect.AllMinCost)
	bundle, err := spf.BuildBundle(g, "A", "C", sel, true)
	require.NoError(t, err)

	idx := core.FlowIndex{Src: "A", Dst: "C", ID: 1}
	meta, err := flow.PlaceFlow(g, bundle, math.Inf(1), idx, flow.EqualBalanced, acc)
	require.NoError(t, err)
	require.Equal(t, 2.0, meta.Placed)
}

func TestPlaceFlow_ThenRemoveFlowRestoresZero(t *testing.T) {
	g := buildParallelGraph(t)
	acc := core.DefaultAccessor()
	sel := edgeselect.NewSelector(edgeselect.AllMinCost)
	bundle, err := spf.BuildBundle(g, "A", "C", sel, true)
	require.NoError(t, err)

	idx := core.FlowIndex{Src: "A", Dst: "C", ID: 7}
	_, err = flow.PlaceFlow(g, bundle, math.Inf(1), idx, flow.Proportional, acc)
	require.NoError(t, err)

	require.NoError(t, flow.RemoveFlow(g, idx, acc))

	for _, e := range g.Edges() {
		require.Zerof(t, acc.Flow(e), "edge %v still carries flow after RemoveFlow", e.Key)
		require.Emptyf(t, acc.Flows(e), "edge %v still has flow contributions after RemoveFlow", e.Key)
	}
}

func TestPlaceFlow_VolumeCapsBelowResidual(t *testing.T) {
	g := buildParallelGraph(t)
	acc := core.DefaultAccessor()
	sel := edgeselect.NewSelector(edgeselect.AllMinCost)
	bundle, err := spf.BuildBundle(g, "A", "C", sel, true)
	require.NoError(t, err)

	idx := core.FlowIndex{Src: "A", Dst: "C", ID: 1}
	meta, err := flow.PlaceFlow(g, bundle, 1, idx, flow.Proportional, acc)
	require.NoError(t, err)
	require.Equal(t, 1.0, meta.Placed)
	require.Equal(t, 0.0, meta.Remaining)
}

func TestPlaceFlow_UnknownPlacementErrors(t *testing.T) {
	g := buildParallelGraph(t)
	sel := edgeselect.NewSelector(edgeselect.AllMinCost)
	bundle, err := spf.BuildBundle(g, "A", "C", sel, true)
	require.NoError(t, err)

	_, err = flow.PlaceFlow(g, bundle, 1, core.FlowIndex{}, flow.FlowPlacement(99), core.DefaultAccessor())
	require.ErrorIs(t, err, flow.ErrUnknownPlacement)
}
