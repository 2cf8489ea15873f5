// Package core_test exercises node lifecycle and query behavior.
package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/netgraph/core"
)

func TestAddNode_NewAndIdempotent(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddNode("A", map[string]interface{}{"region": "eu"}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.AddNode("A", map[string]interface{}{"tier": "gold"}); err != nil {
		t.Fatalf("AddNode (merge): %v", err)
	}

	n, err := g.GetNode("A")
	if err != nil {
		t.Fatalf("GetNode: %v", err)
	}
	if n.Attrs["region"] != "eu" || n.Attrs["tier"] != "gold" {
		t.Fatalf("expected merged attrs, got %v", n.Attrs)
	}
}

func TestAddNode_EmptyID(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddNode("", nil); !errors.Is(err, core.ErrEmptyNodeID) {
		t.Fatalf("expected ErrEmptyNodeID, got %v", err)
	}
}

func TestGetNode_Unknown(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.GetNode("X"); !errors.Is(err, core.ErrUnknownNode) {
		t.Fatalf("expected ErrUnknownNode, got %v", err)
	}
}

func TestRemoveNode_RemovesIncidentEdges(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddNode("A", nil)
	_ = g.AddNode("B", nil)
	_ = g.AddNode("C", nil)
	if _, err := g.AddEdge("A", "B", 10, 1); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, err := g.AddEdge("B", "C", 10, 1); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	if err := g.RemoveNode("B"); err != nil {
		t.Fatalf("RemoveNode: %v", err)
	}
	if g.HasNode("B") {
		t.Fatalf("expected B to be removed")
	}
	if g.EdgeCount() != 0 {
		t.Fatalf("expected both incident edges removed, got %d edges", g.EdgeCount())
	}
}

func TestRemoveNode_MissingIsNoop(t *testing.T) {
	g := core.NewGraph()
	if err := g.RemoveNode("ghost"); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
}

func TestNodes_SortedAscending(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []core.NodeID{"C", "A", "B"} {
		_ = g.AddNode(id, nil)
	}
	got := g.Nodes()
	want := []core.NodeID{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("expected %d nodes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Nodes() = %v, want %v", got, want)
		}
	}
	if g.NodeCount() != 3 {
		t.Fatalf("expected NodeCount 3, got %d", g.NodeCount())
	}
}
