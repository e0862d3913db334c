// Package dag provides an in-memory, value-typed directed acyclic graph
// container: the single mode this module needs (directed, simple,
// no self-loops, no parallel edges), stripped down from the teacher
// library's multi-mode core.Graph to exactly what the M-adjustment
// engine requires.
//
// What:
//
//   - DAG: adjacency-map container (mirrored forward and backward maps)
//     with O(1) HasEdge; Successors/Predecessors list neighbors in
//     insertion order by scanning the node order, O(V) per call.
//   - AddNode / AddEdge: construction primitives. AddNode is
//     idempotent; a repeated AddEdge returns ErrDuplicateEdge.
//   - RemoveEdge: idempotent deletion, intended for use on a Clone
//     (derived graphs never mutate the graph they were cloned from).
//   - Clone: deep, independent copy; no shared mutable state with the
//     source.
//   - Validate: a one-time, lazy cycle check (topological sort) so
//     callers may either trust the precondition or fail fast.
//
// Why:
//
//   - The d-separation oracle and the proper-causal-path traversal
//     each revisit neighbor sets many times per candidate subset; edge
//     membership lives in hash maps, and Successors/Predecessors scan
//     the node order so their results come back in insertion order.
//   - Derived graphs (proper backdoor, incoming-pruned, outgoing-pruned)
//     are produced by cloning and deleting edges; Clone must therefore
//     be a true structural copy, not an overlay that could leak
//     mutation back to the source.
//
// Complexity:
//
//   - AddNode, AddEdge, HasEdge, RemoveEdge: O(1) amortised.
//   - Successors, Predecessors: O(V) (a scan of the insertion order).
//   - Clone: O(V + E).
//   - Validate: O(V²) (one O(V) successor listing per node).
//
// Errors:
//
//   - ErrEmptyNodeID    a node/edge endpoint was the empty string.
//   - ErrUnknownNode    an edge referenced a node never added via AddNode.
//   - ErrSelfLoop       an edge's endpoints were identical.
//   - ErrDuplicateEdge  AddEdge was called twice for the same (from, to) pair.
//   - ErrCyclic         Validate found a cycle.
package dag
