// File: clone.go
// Role: structural copy, the basis for every derived graph (proper
// backdoor, incoming-pruned, outgoing-pruned) in package transform.
// A clone shares no mutable state with its source: mutating the clone
// (via RemoveEdge) never leaks back, and the source may keep serving
// other derived graphs concurrently.

package dag

// Clone returns a deep, independent copy of g: same nodes, same
// insertion order, same edges. Complexity: O(V + E).
func (g *DAG) Clone() *DAG {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &DAG{
		order: make([]string, len(g.order)),
		nodes: make(map[string]struct{}, len(g.nodes)),
		succ:  make(map[string]map[string]struct{}, len(g.succ)),
		pred:  make(map[string]map[string]struct{}, len(g.pred)),
	}
	copy(clone.order, g.order)
	for id := range g.nodes {
		clone.nodes[id] = struct{}{}
	}
	for from, tos := range g.succ {
		m := make(map[string]struct{}, len(tos))
		for to := range tos {
			m[to] = struct{}{}
		}
		clone.succ[from] = m
	}
	for to, froms := range g.pred {
		m := make(map[string]struct{}, len(froms))
		for from := range froms {
			m[from] = struct{}{}
		}
		clone.pred[to] = m
	}

	return clone
}
