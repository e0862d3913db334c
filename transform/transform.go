package transform

import "github.com/jacobchen01/madjustment/dag"

// ProperBackdoor returns a clone of g with the first edge of every
// path in paths removed. Removal is idempotent (dag.RemoveEdge is a
// no-op on an already-absent edge), so multiple proper causal paths
// sharing the same first edge cost nothing extra.
func ProperBackdoor(g *dag.DAG, paths [][]string) *dag.DAG {
	clone := g.Clone()
	for _, path := range paths {
		if len(path) < 2 {
			continue
		}
		clone.RemoveEdge(path[0], path[1])
	}

	return clone
}

// IncomingPruned returns a clone of g with every edge whose sink is x
// removed — spec.md's G_X̄ above.
func IncomingPruned(g *dag.DAG, x string) *dag.DAG {
	clone := g.Clone()
	for _, parent := range g.Predecessors(x) {
		clone.RemoveEdge(parent, x)
	}

	return clone
}

// OutgoingPruned returns a clone of g with every edge whose source is
// x removed — spec.md's G_X̄ below.
func OutgoingPruned(g *dag.DAG, x string) *dag.DAG {
	clone := g.Clone()
	for _, child := range g.Successors(x) {
		clone.RemoveEdge(x, child)
	}

	return clone
}
