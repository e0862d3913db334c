package pathtrav

import "github.com/jacobchen01/madjustment/dag"

// Descendants returns v together with every node reachable from v by
// following forward edges, as a set. Ported from findDescendants:
// a plain explicit-stack forward reachability scan.
func Descendants(g *dag.DAG, v string) map[string]struct{} {
	out := make(map[string]struct{})
	if g == nil || !g.HasNode(v) {
		return out
	}

	stack := []string{v}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := out[cur]; seen {
			continue
		}
		out[cur] = struct{}{}
		stack = append(stack, g.Successors(cur)...)
	}

	return out
}

// IsAncestor reports whether x is reachable via backward edges from
// any member of vs — equivalently, whether x is in the ancestor
// closure of vs. Ported from isAncestor: a plain explicit-stack
// backward reachability scan, short-circuiting the moment x is found.
//
// Round-trip with Descendants: for a single-element target set {w},
// IsAncestor(g, v, {w}) == true iff w is in Descendants(g, v).
func IsAncestor(g *dag.DAG, x string, vs map[string]struct{}) bool {
	if g == nil || len(vs) == 0 {
		return false
	}

	visited := make(map[string]struct{})
	for v := range vs {
		stack := []string{v}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if cur == x {
				return true
			}
			if _, seen := visited[cur]; seen {
				continue
			}
			visited[cur] = struct{}{}
			stack = append(stack, g.Predecessors(cur)...)
		}
	}

	return false
}
