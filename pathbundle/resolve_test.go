// Package pathbundle_test mirrors the reference PathBundle fixtures: a
// diamond DAG with parallel edges on each leg.
package pathbundle_test

import (
	"testing"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/pathbundle"
)

func TestNew_CachesNodesAndEdges(t *testing.T) {
	pred := map[core.NodeID]map[core.NodeID][]core.EdgeKey{
		"A": {},
		"B": {"A": {0}},
		"C": {"B": {1}},
	}
	order := map[core.NodeID][]core.NodeID{
		"B": {"A"},
		"C": {"B"},
	}
	pb := pathbundle.New("A", "C", pred, order, 2)

	if len(pb.Nodes()) != 3 {
		t.Fatalf("expected 3 nodes, got %v", pb.Nodes())
	}
	if len(pb.Edges()) != 2 {
		t.Fatalf("expected 2 edges, got %v", pb.Edges())
	}
	if pb.IsEmpty() {
		t.Fatalf("expected non-empty bundle")
	}
}

func TestIsEmpty_UnreachableDst(t *testing.T) {
	pb := pathbundle.New("A", "Z", map[core.NodeID]map[core.NodeID][]core.EdgeKey{}, nil, 0)
	if !pb.IsEmpty() {
		t.Fatalf("expected empty bundle for unreachable dst")
	}
	if paths := pb.ResolveToPaths(true); paths != nil {
		t.Fatalf("expected nil paths for unreachable dst, got %v", paths)
	}
}

// diamond mirrors the reference fixture: A -> {B with keys 0,8} -> C and
// A -> {D with key 2} -> C, where B->C carries keys 1,5 and D->C carries 3,6,7.
func diamond() (*pathbundle.PathBundle, core.NodeID, core.NodeID) {
	pred := map[core.NodeID]map[core.NodeID][]core.EdgeKey{
		"A": {},
		"B": {"A": {0, 8}},
		"D": {"A": {2}},
		"C": {"B": {1, 5}, "D": {3, 6, 7}},
	}
	order := map[core.NodeID][]core.NodeID{
		"B": {"A"},
		"D": {"A"},
		"C": {"B", "D"},
	}

	return pathbundle.New("A", "C", pred, order, 2), "A", "C"
}

func TestResolveToPaths_KeepParallelGroupsPerHop(t *testing.T) {
	pb, _, _ := diamond()
	paths := pb.ResolveToPaths(true)
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths (via B, via D), got %d", len(paths))
	}

	viaB := paths[0]
	if viaB.Steps[0].Node != "A" || len(viaB.Steps[0].EdgeKeys) != 2 {
		t.Fatalf("expected A's hop to carry both parallel A->B edges, got %v", viaB.Steps[0])
	}
	if viaB.Steps[len(viaB.Steps)-1].Node != "C" || len(viaB.Steps[len(viaB.Steps)-1].EdgeKeys) != 0 {
		t.Fatalf("expected final hop at C with no outgoing edges, got %v", viaB.Steps[len(viaB.Steps)-1])
	}
}

func TestResolveToPaths_ExpandParallelEdges(t *testing.T) {
	pb, _, _ := diamond()
	paths := pb.ResolveToPaths(false)

	// via B: 2 (A->B) * 2 (B->C) = 4; via D: 1 (A->D) * 3 (D->C) = 3.
	if len(paths) != 7 {
		t.Fatalf("expected 7 expanded paths, got %d", len(paths))
	}
	for _, p := range paths {
		for _, step := range p.Steps[:len(p.Steps)-1] {
			if len(step.EdgeKeys) != 1 {
				t.Fatalf("expected exactly one edge key per non-final hop, got %v", step)
			}
		}
	}
}

func TestResolveToPaths_SinglePathEdgeUnion(t *testing.T) {
	pred := map[core.NodeID]map[core.NodeID][]core.EdgeKey{
		"A": {},
		"B": {"A": {0, 1}},
		"C": {"B": {2, 3}},
	}
	order := map[core.NodeID][]core.NodeID{
		"B": {"A"},
		"C": {"B"},
	}
	pb := pathbundle.New("A", "C", pred, order, 2)

	paths := pb.ResolveToPaths(true)
	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(paths))
	}
	if len(paths[0].Edges()) != 4 {
		t.Fatalf("expected union of 4 edges, got %v", paths[0].Edges())
	}
}
