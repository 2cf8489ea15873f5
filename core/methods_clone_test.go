package core_test

import (
	"testing"

	"github.com/katalvlaran/netgraph/core"
)

func TestClone_IsDeepAndIndependent(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddNode("A", map[string]interface{}{"region": "eu"})
	_ = g.AddNode("B", nil)
	key, _ := g.AddEdge("A", "B", 10, 1)
	e, _ := g.GetEdge(key)
	e.Flow = 4
	e.Flows[core.FlowIndex{Src: "A", Dst: "B", ID: 1}] = 4

	clone := g.Clone()

	// Mutate the source after cloning; the clone must be unaffected.
	e.Flow = 999
	n, _ := g.GetNode("A")
	n.Attrs["region"] = "us"

	ce, err := clone.GetEdge(key)
	if err != nil {
		t.Fatalf("GetEdge on clone: %v", err)
	}
	if ce.Flow != 4 {
		t.Fatalf("expected clone's edge Flow to stay 4, got %v", ce.Flow)
	}

	cn, _ := clone.GetNode("A")
	if cn.Attrs["region"] != "eu" {
		t.Fatalf("expected clone's node attrs to stay eu, got %v", cn.Attrs["region"])
	}
}

func TestClone_ContinuesEdgeKeySequence(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddNode("A", nil)
	_ = g.AddNode("B", nil)
	k1, _ := g.AddEdge("A", "B", 1, 1)

	clone := g.Clone()
	k2, err := clone.AddEdge("A", "B", 2, 1)
	if err != nil {
		t.Fatalf("AddEdge on clone: %v", err)
	}
	if k2 <= k1 {
		t.Fatalf("expected clone to continue the key sequence, got k1=%d k2=%d", k1, k2)
	}

	if g.EdgeCount() != 1 {
		t.Fatalf("expected source graph unaffected by clone mutation, got %d edges", g.EdgeCount())
	}
}
