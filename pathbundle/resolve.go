// File: resolve.go
// Role: deterministic DFS enumeration of the s->t paths encoded by a
// PathBundle's predecessor DAG, grounded on the reference implementation's
// iterative stack-based traversal (insertion-order DFS over pred, yielding
// when the walk reaches Src).
package pathbundle

import "github.com/katalvlaran/netgraph/core"

// Step is one hop of an enumerated path: the node, and the edge keys
// carrying flow from this node to the next one toward Dst. The final step
// (at Dst) always carries an empty EdgeKeys.
type Step struct {
	Node     core.NodeID
	EdgeKeys []core.EdgeKey
}

// Path is one concrete s->t path resolved from a PathBundle.
type Path struct {
	Steps []Step
	Cost  int64
}

// Nodes returns the path's nodes in src->dst order.
func (p Path) Nodes() []core.NodeID {
	out := make([]core.NodeID, len(p.Steps))
	for i, s := range p.Steps {
		out[i] = s.Node
	}

	return out
}

// Edges returns the union of edge keys used along the path.
func (p Path) Edges() []core.EdgeKey {
	var out []core.EdgeKey
	for _, s := range p.Steps {
		out = append(out, s.EdgeKeys...)
	}

	return out
}

type frame struct {
	node   core.NodeID
	edges  []core.EdgeKey
	nbrIdx int
}

// rawPaths enumerates paths with parallel edges still grouped per hop (one
// Step.EdgeKeys may list more than one key), in depth-first insertion order.
func (pb *PathBundle) rawPaths() []Path {
	if _, ok := pb.Pred[pb.Dst]; !ok {
		return nil
	}

	seen := map[core.NodeID]struct{}{pb.Dst: {}}
	stack := []frame{{node: pb.Dst}}
	var out []Path

	for len(stack) > 0 {
		top := len(stack) - 1
		node := stack[top].node

		if node == pb.Src {
			steps := make([]Step, len(stack))
			for i, fr := range stack {
				steps[len(stack)-1-i] = Step{Node: fr.node, EdgeKeys: fr.edges}
			}
			out = append(out, Path{Steps: steps, Cost: pb.Cost})
		}

		order := pb.PredOrder[node]
		nbrIdx := stack[top].nbrIdx
		if nbrIdx < len(order) {
			stack[top].nbrIdx = nbrIdx + 1
			prev := order[nbrIdx]
			if _, dup := seen[prev]; dup {
				continue
			}
			seen[prev] = struct{}{}
			stack = append(stack, frame{node: prev, edges: pb.Pred[node][prev]})
			continue
		}

		delete(seen, node)
		stack = stack[:top]
	}

	return out
}

// ResolveToPaths enumerates every s->t path represented by this bundle.
//
// keepParallelEdges=true (the common case) keeps each hop's parallel edges
// grouped into a single Step, one Path per distinct node sequence.
// keepParallelEdges=false instead expands every combination of parallel
// edges into its own Path (the cartesian product across hops), which is
// useful when a caller must reason about per-physical-link flow rather than
// per-node-pair flow.
func (pb *PathBundle) ResolveToPaths(keepParallelEdges bool) []Path {
	raw := pb.rawPaths()
	if keepParallelEdges {
		return raw
	}

	var out []Path
	for _, p := range raw {
		out = append(out, expandParallelEdges(p)...)
	}

	return out
}

func expandParallelEdges(p Path) []Path {
	var result []Path
	var rec func(i int, cur []Step)
	rec = func(i int, cur []Step) {
		if i == len(p.Steps) {
			steps := make([]Step, len(cur))
			copy(steps, cur)
			result = append(result, Path{Steps: steps, Cost: p.Cost})
			return
		}

		step := p.Steps[i]
		if len(step.EdgeKeys) == 0 {
			next := make([]Step, len(cur), len(cur)+1)
			copy(next, cur)
			rec(i+1, append(next, Step{Node: step.Node}))
			return
		}
		for _, k := range step.EdgeKeys {
			next := make([]Step, len(cur), len(cur)+1)
			copy(next, cur)
			rec(i+1, append(next, Step{Node: step.Node, EdgeKeys: []core.EdgeKey{k}}))
		}
	}
	rec(0, nil)

	return result
}
