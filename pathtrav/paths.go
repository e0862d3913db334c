package pathtrav

import "github.com/jacobchen01/madjustment/dag"

// frame is one explicit-DFS-stack entry: a node paired with the node
// that pushed it onto the stack (its parent within the partial path
// currently under construction). The root frame's parent is the empty
// string, which can never equal a real node id (dag.AddNode rejects
// empty ids), so it safely acts as a "no parent" sentinel.
type frame struct {
	node, parent string
}

// ProperCausalPaths enumerates every directed path from x to y whose
// only occurrence of x is at its origin. Acyclicity of g guarantees x
// cannot recur mid-path, so no extra filtering is needed beyond the
// traversal itself (this mirrors the reasoning in the original
// findProperCausalPath: "we don't need to worry about intersecting
// with X again, since G is acyclic").
//
// The traversal is an explicit-stack DFS: each stack entry remembers
// the node that pushed it, so on pop the partial path is first
// truncated back to that parent, then extended with the popped node.
// Reaching y appends a copy of the current partial path to the result.
//
// If there is no directed path from x to y, the result is an empty,
// non-nil slice — every subset trivially satisfies C1 in that case.
func ProperCausalPaths(g *dag.DAG, x, y string) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(x) || !g.HasNode(y) {
		return nil, ErrUnknownNode
	}
	if x == y {
		return nil, ErrSameTreatmentOutcome
	}

	paths := make([][]string, 0)
	pathSoFar := make([]string, 0, 8)
	stack := []frame{{node: x, parent: ""}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Truncate pathSoFar back to the frame that pushed cur.
		for len(pathSoFar) > 0 && pathSoFar[len(pathSoFar)-1] != cur.parent {
			pathSoFar = pathSoFar[:len(pathSoFar)-1]
		}
		pathSoFar = append(pathSoFar, cur.node)

		if cur.node == y {
			found := make([]string, len(pathSoFar))
			copy(found, pathSoFar)
			paths = append(paths, found)
		}

		for _, child := range g.Successors(cur.node) {
			stack = append(stack, frame{node: child, parent: cur.node})
		}
	}

	return paths, nil
}
