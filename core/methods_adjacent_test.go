package core_test

import (
	"testing"

	"github.com/katalvlaran/netgraph/core"
)

func TestOutInEdges(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []core.NodeID{"A", "B", "C"} {
		_ = g.AddNode(id, nil)
	}
	_, _ = g.AddEdge("A", "B", 1, 1)
	_, _ = g.AddEdge("A", "C", 1, 1)
	_, _ = g.AddEdge("C", "B", 1, 1)

	out := g.OutEdges("A")
	if len(out) != 2 {
		t.Fatalf("expected 2 out-edges for A, got %d", len(out))
	}

	in := g.InEdges("B")
	if len(in) != 2 {
		t.Fatalf("expected 2 in-edges for B, got %d", len(in))
	}
}

func TestOutNeighbors_UniqueSorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []core.NodeID{"A", "B", "C"} {
		_ = g.AddNode(id, nil)
	}
	_, _ = g.AddEdge("A", "C", 1, 1)
	_, _ = g.AddEdge("A", "B", 1, 1)
	_, _ = g.AddEdge("A", "B", 2, 1) // parallel, must not duplicate neighbor

	neighbors := g.OutNeighbors("A")
	want := []core.NodeID{"B", "C"}
	if len(neighbors) != len(want) {
		t.Fatalf("expected %v, got %v", want, neighbors)
	}
	for i := range want {
		if neighbors[i] != want[i] {
			t.Fatalf("expected sorted unique neighbors %v, got %v", want, neighbors)
		}
	}
}

func TestAdjacency_CleanedUpAfterRemoval(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddNode("A", nil)
	_ = g.AddNode("B", nil)
	_, _ = g.AddEdge("A", "B", 1, 1)

	g.RemoveEdge("A", "B", nil)

	if neighbors := g.OutNeighbors("A"); len(neighbors) != 0 {
		t.Fatalf("expected no neighbors after removal, got %v", neighbors)
	}
	if in := g.InEdges("B"); len(in) != 0 {
		t.Fatalf("expected no in-edges after removal, got %v", in)
	}
}
