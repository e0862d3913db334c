// File: methods.go
// Role: construction and query primitives for DAG.
// Locking: a single RWMutex guards nodes, succ, and pred together —
// unlike the teacher's core.Graph (separate muVert/muEdgeAdj locks),
// this graph never sees the lock-ordering hazards that split locking
// guards against, because edges can only be added between already-
// declared nodes and removal never needs to touch the node set.

package dag

// AddNode inserts a node with the given id. Re-adding an existing id
// is a no-op. Complexity: O(1) amortised.
func (g *DAG) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; ok {
		return nil
	}
	g.nodes[id] = struct{}{}
	g.order = append(g.order, id)
	g.succ[id] = make(map[string]struct{})
	g.pred[id] = make(map[string]struct{})

	return nil
}

// HasNode reports whether id was declared via AddNode.
func (g *DAG) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// AddEdge adds a directed edge from -> to. Both endpoints must already
// exist (ErrUnknownNode otherwise); self-loops are rejected
// (ErrSelfLoop); a second call for the same ordered pair is rejected
// (ErrDuplicateEdge) since this graph is simple, not a multigraph.
// Complexity: O(1) amortised.
func (g *DAG) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if from == to {
		return ErrSelfLoop
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return ErrUnknownNode
	}
	if _, ok := g.nodes[to]; !ok {
		return ErrUnknownNode
	}
	if _, ok := g.succ[from][to]; ok {
		return ErrDuplicateEdge
	}

	g.succ[from][to] = struct{}{}
	g.pred[to][from] = struct{}{}

	return nil
}

// HasEdge reports whether the directed edge from -> to exists.
// Complexity: O(1).
func (g *DAG) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.succ[from][to]

	return ok
}

// RemoveEdge deletes the directed edge from -> to if present. It is
// idempotent: removing an edge that is already absent (or never
// existed) is a silent no-op, matching spec.md's requirement that
// proper-backdoor-graph construction may attempt the same removal
// more than once when multiple proper causal paths share a first edge.
// Complexity: O(1).
func (g *DAG) RemoveEdge(from, to string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if m, ok := g.succ[from]; ok {
		delete(m, to)
	}
	if m, ok := g.pred[to]; ok {
		delete(m, from)
	}
}

// Successors returns the node ids reachable by a single outgoing edge
// from id, in insertion order. Complexity: O(V), since the whole
// insertion order is scanned.
func (g *DAG) Successors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.orderedKeys(g.succ[id])
}

// Predecessors returns the node ids reachable by a single incoming
// edge into id, in insertion order. Complexity: O(V), since the whole
// insertion order is scanned.
func (g *DAG) Predecessors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.orderedKeys(g.pred[id])
}

// Nodes returns every declared node id, in insertion order.
// Complexity: O(V).
func (g *DAG) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// orderedKeys filters g.order down to the members of set, preserving
// insertion order. Caller must hold g.mu.
func (g *DAG) orderedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for _, id := range g.order {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}

	return out
}
