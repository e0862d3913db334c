package dag

import (
	"errors"
	"sync"
)

// Sentinel errors for dag operations. Callers branch with errors.Is,
// never by matching the message text.
var (
	// ErrEmptyNodeID indicates a node ID (or edge endpoint) was the empty string.
	ErrEmptyNodeID = errors.New("dag: node ID is empty")

	// ErrUnknownNode indicates an edge referenced an endpoint that was
	// never declared via AddNode.
	ErrUnknownNode = errors.New("dag: node not declared")

	// ErrSelfLoop indicates AddEdge was called with identical endpoints;
	// self-loops have no place in a causal DAG.
	ErrSelfLoop = errors.New("dag: self-loop not allowed")

	// ErrDuplicateEdge indicates AddEdge was called twice for the same
	// ordered pair of endpoints; this graph is simple, not a multigraph.
	ErrDuplicateEdge = errors.New("dag: parallel edge not allowed")

	// ErrCyclic indicates Validate found a directed cycle.
	ErrCyclic = errors.New("dag: graph contains a cycle")
)

// Option configures a DAG at construction time.
//
// The DAG mode is fixed today (directed, simple, acyclic); Option
// exists so the constructor can grow without an API break, the same
// way the teacher's core.GraphOption grew incrementally from a single
// mode to several.
type Option func(*DAG)

// DAG is an in-memory directed acyclic graph over string-identified
// nodes. It is safe for concurrent readers; concurrent writers must
// coordinate externally (construction is expected to happen on a
// single goroutine before the graph is handed to the read-only query
// packages).
type DAG struct {
	mu sync.RWMutex

	order []string            // insertion order, for deterministic iteration
	nodes map[string]struct{} // node existence set

	succ map[string]map[string]struct{} // succ[u][v] exists iff edge u->v
	pred map[string]map[string]struct{} // pred[v][u] exists iff edge u->v
}

// New constructs an empty DAG.
func New(opts ...Option) *DAG {
	g := &DAG{
		nodes: make(map[string]struct{}),
		succ:  make(map[string]map[string]struct{}),
		pred:  make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
