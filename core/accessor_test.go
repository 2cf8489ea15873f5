package core_test

import (
	"testing"

	"github.com/katalvlaran/netgraph/core"
)

func TestAccessor_DefaultUsesTypedFields(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddNode("A", nil)
	_ = g.AddNode("B", nil)
	key, _ := g.AddEdge("A", "B", 10, 1)
	e, _ := g.GetEdge(key)

	a := core.DefaultAccessor()
	if a.Capacity(e) != 10 {
		t.Fatalf("expected Capacity 10, got %v", a.Capacity(e))
	}

	idx := core.FlowIndex{Src: "A", Dst: "B", ID: 1}
	a.AddFlowContribution(e, idx, 3)
	if a.Flow(e) != 3 || e.Flow != 3 {
		t.Fatalf("expected typed Flow field updated to 3, got %v", e.Flow)
	}
	if a.Residual(e) != 7 {
		t.Fatalf("expected residual 7, got %v", a.Residual(e))
	}

	removed := a.ClearFlowContribution(e, idx)
	if removed != 3 || a.Flow(e) != 0 {
		t.Fatalf("expected contribution cleared back to 0, got removed=%v flow=%v", removed, a.Flow(e))
	}
}

func TestAccessor_CustomAttrNameMatchesDefaultBehavior(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddNode("A", nil)
	_ = g.AddNode("B", nil)
	keyDefault, _ := g.AddEdge("A", "B", 10, 1)
	keyCustom, _ := g.AddEdge("A", "B", 10, 1, core.WithEdgeAttrs(map[string]interface{}{"cap": 10.0}))

	eDefault, _ := g.GetEdge(keyDefault)
	eCustom, _ := g.GetEdge(keyCustom)

	defaultAcc := core.DefaultAccessor()
	customAcc := core.NewAccessor("cap", "flowX", "flowsX")

	idx := core.FlowIndex{Src: "A", Dst: "B", ID: 1}
	defaultAcc.AddFlowContribution(eDefault, idx, 4)
	customAcc.AddFlowContribution(eCustom, idx, 4)

	if defaultAcc.Capacity(eDefault) != customAcc.Capacity(eCustom) {
		t.Fatalf("expected identical capacity reads, got %v vs %v",
			defaultAcc.Capacity(eDefault), customAcc.Capacity(eCustom))
	}
	if defaultAcc.Flow(eDefault) != customAcc.Flow(eCustom) {
		t.Fatalf("expected identical flow reads, got %v vs %v",
			defaultAcc.Flow(eDefault), customAcc.Flow(eCustom))
	}
	if eCustom.Flow != 0 {
		t.Fatalf("expected typed Flow field left untouched for custom attr, got %v", eCustom.Flow)
	}
}
