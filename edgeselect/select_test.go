// Package edgeselect_test mirrors the TestEdgeSelect fixtures: parallel
// A->B edges at mixed costs and capacities, exercising every policy.
package edgeselect_test

import (
	"testing"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/edgeselect"
)

// buildGraph1 mirrors graph_1: three parallel A->B edges all at cost 1.
func buildGraph1(t *testing.T) (*core.Graph, []*core.Edge) {
	t.Helper()
	g := core.NewGraph()
	_ = g.AddNode("A", nil)
	_ = g.AddNode("B", nil)
	var edges []*core.Edge
	for _, cap := range []float64{2, 4, 6} {
		key, err := g.AddEdge("A", "B", cap, 1)
		if err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
		e, _ := g.GetEdge(key)
		edges = append(edges, e)
	}

	return g, edges
}

// buildSquare3 mirrors square_3: two parallel A->B edges at cost 1 and 2.
func buildSquare3(t *testing.T) (*core.Graph, []*core.Edge) {
	t.Helper()
	g := core.NewGraph()
	_ = g.AddNode("A", nil)
	_ = g.AddNode("B", nil)
	var edges []*core.Edge
	for _, tc := range []struct {
		cost int64
		cap  float64
	}{{1, 1}, {2, 1}} {
		key, err := g.AddEdge("A", "B", tc.cap, tc.cost)
		if err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
		e, _ := g.GetEdge(key)
		edges = append(edges, e)
	}

	return g, edges
}

func TestAllMinCost_SelectsAllTiedEdges(t *testing.T) {
	_, edges := buildGraph1(t)
	sel := edgeselect.NewSelector(edgeselect.AllMinCost)

	minCost, keys := sel("A", "B", edges)
	if minCost != 1 {
		t.Fatalf("expected minCost 1, got %d", minCost)
	}
	if len(keys) != 3 {
		t.Fatalf("expected all 3 tied edges selected, got %v", keys)
	}
}

func TestAllMinCost_OnlyMinimumSurvives(t *testing.T) {
	_, edges := buildSquare3(t)
	sel := edgeselect.NewSelector(edgeselect.AllMinCost)

	minCost, keys := sel("A", "B", edges)
	if minCost != 1 {
		t.Fatalf("expected minCost 1, got %d", minCost)
	}
	if len(keys) != 1 || keys[0] != edges[0].Key {
		t.Fatalf("expected only the cost-1 edge selected, got %v", keys)
	}
}

func TestSingleMinCost_PicksOneStableEdge(t *testing.T) {
	_, edges := buildGraph1(t)
	sel := edgeselect.NewSelector(edgeselect.SingleMinCost)

	minCost, keys := sel("A", "B", edges)
	if minCost != 1 {
		t.Fatalf("expected minCost 1, got %d", minCost)
	}
	if len(keys) != 1 || keys[0] != edges[0].Key {
		t.Fatalf("expected the smallest key among ties, got %v", keys)
	}
}

func TestAllMinCostWithCapRemaining_SkipsSaturated(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddNode("B", nil)
	_ = g.AddNode("C", nil)
	k1, _ := g.AddEdge("B", "C", 1, 1) // will be saturated
	k2, _ := g.AddEdge("B", "C", 3, 1) // has residual
	k3, _ := g.AddEdge("B", "C", 7, 2) // higher cost, has residual

	e1, _ := g.GetEdge(k1)
	e1.Flow = 1
	e2, _ := g.GetEdge(k2)
	e3, _ := g.GetEdge(k3)

	sel := edgeselect.NewSelector(edgeselect.AllMinCostWithCapRemaining)
	minCost, keys := sel("B", "C", []*core.Edge{e1, e2, e3})
	if minCost != 1 {
		t.Fatalf("expected minCost 1, got %d", minCost)
	}
	if len(keys) != 1 || keys[0] != k2 {
		t.Fatalf("expected only the residual cost-1 edge selected, got %v", keys)
	}
}

func TestAllAnyCostWithCapRemaining_IgnoresCost(t *testing.T) {
	g, edges := buildSquare3(t)
	_ = g

	sel := edgeselect.NewSelector(edgeselect.AllAnyCostWithCapRemaining)
	_, keys := sel("A", "B", edges)
	if len(keys) != 2 {
		t.Fatalf("expected both edges selected regardless of cost, got %v", keys)
	}
}

func TestExcludedEdgesAndNodes(t *testing.T) {
	_, edges := buildGraph1(t)
	excluded := map[core.EdgeKey]struct{}{edges[0].Key: {}}
	sel := edgeselect.NewSelector(edgeselect.AllMinCost, edgeselect.WithExcludedEdges(excluded))

	_, keys := sel("A", "B", edges)
	for _, k := range keys {
		if k == edges[0].Key {
			t.Fatalf("expected excluded edge to be absent from selection, got %v", keys)
		}
	}
	if len(keys) != 2 {
		t.Fatalf("expected 2 remaining edges, got %d", len(keys))
	}
}

func TestNoAdmissibleEdges_ReturnsNil(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddNode("A", nil)
	_ = g.AddNode("B", nil)
	sel := edgeselect.NewSelector(edgeselect.AllMinCost)

	_, keys := sel("A", "B", nil)
	if keys != nil {
		t.Fatalf("expected nil selection for empty edge set, got %v", keys)
	}
}
