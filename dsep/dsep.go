package dsep

import "github.com/jacobchen01/madjustment/dag"

// DSeparated reports whether every path between any node in a and any
// node in b is blocked by z, on the DAG g. a, b, and z must be
// pairwise disjoint; overlap is a usage error (ErrOverlappingSets).
// z may be empty. DSeparated(g, a, b, z) == DSeparated(g, b, a, z)
// because d-separation is symmetric, even though the worklist search
// below always starts from a.
func DSeparated(g *dag.DAG, a, b, z map[string]struct{}) (bool, error) {
	if overlaps(a, b) || overlaps(a, z) || overlaps(b, z) {
		return false, ErrOverlappingSets
	}

	anc := ancestorClosure(g, z)

	visited := make(map[visit]struct{})
	stack := make([]visit, 0, len(a))
	for n := range a {
		stack = append(stack, visit{node: n, dir: up})
	}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := visited[cur]; seen {
			continue
		}
		visited[cur] = struct{}{}

		if _, reachedB := b[cur.node]; reachedB {
			return false, nil
		}

		_, conditioned := z[cur.node]
		switch cur.dir {
		case up:
			// Arrived from below: a non-collider (chain or fork) is
			// passable in both directions iff it is not conditioned.
			if !conditioned {
				for _, p := range g.Predecessors(cur.node) {
					stack = append(stack, visit{node: p, dir: up})
				}
				for _, c := range g.Successors(cur.node) {
					stack = append(stack, visit{node: c, dir: down})
				}
			}
		case down:
			// Arrived from above: the chain continues downward iff
			// this node is not conditioned...
			if !conditioned {
				for _, c := range g.Successors(cur.node) {
					stack = append(stack, visit{node: c, dir: down})
				}
			}
			// ...and a collider here opens upward iff this node (or a
			// descendant of it) is in z, i.e. it is an ancestor of z.
			if _, isAncestorOfZ := anc[cur.node]; isAncestorOfZ {
				for _, p := range g.Predecessors(cur.node) {
					stack = append(stack, visit{node: p, dir: up})
				}
			}
		}
	}

	return true, nil
}

// ancestorClosure returns z together with every ancestor of any
// member of z.
func ancestorClosure(g *dag.DAG, z map[string]struct{}) map[string]struct{} {
	anc := make(map[string]struct{}, len(z))
	stack := make([]string, 0, len(z))
	for n := range z {
		stack = append(stack, n)
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := anc[cur]; seen {
			continue
		}
		anc[cur] = struct{}{}
		stack = append(stack, g.Predecessors(cur)...)
	}

	return anc
}

func overlaps(x, y map[string]struct{}) bool {
	small, big := x, y
	if len(big) < len(small) {
		small, big = big, small
	}
	for k := range small {
		if _, ok := big[k]; ok {
			return true
		}
	}

	return false
}
