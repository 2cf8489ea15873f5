// Preset smoke tests: each constructor must build without error and place
// demand sensibly over the square fixture, grounded on get_flow_policy's
// five named configurations (ngraph/flow.py).
package policy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgraph/policy"
)

func TestPresets_ConstructWithoutError(t *testing.T) {
	ctors := map[string]func() (*policy.FlowPolicy, error){
		"ShortestPathsECMP": policy.NewShortestPathsECMP,
		"ShortestPathsUCMP": policy.NewShortestPathsUCMP,
		"TEUCMPUnlim":       policy.NewTEUCMPUnlim,
		"TEECMPUpTo256LSP":  policy.NewTEECMPUpTo256LSP,
		"TEECMP16LSP":       policy.NewTEECMP16LSP,
	}
	for name, ctor := range ctors {
		_, err := ctor()
		require.NoErrorf(t, err, "%s", name)
	}
}

func TestPresets_ShortestPathsECMPUsesOnlyTheShortestPath(t *testing.T) {
	g := buildSquareGraph(t)
	p, err := policy.NewShortestPathsECMP()
	require.NoError(t, err)

	// Only the A->B->C path (cost 2) is shortest; A->D->C costs 4.
	placed, remaining, err := p.PlaceDemand(g, "A", "C", nil, 1, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, placed)
	require.Equal(t, 0.0, remaining)
	require.Equalf(t, 0.0, edgeFlow(t, g, "A", "D"), "not on the shortest path")
}

func TestPresets_TEECMP16LSPRequiresSixteenFlows(t *testing.T) {
	p, err := policy.NewTEECMP16LSP()
	require.NoError(t, err)

	g := buildSquareGraph(t)
	_, _, err = p.PlaceDemand(g, "A", "C", nil, 1, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 16, p.FlowCount(), "min/max flow count both pinned to 16")
}
