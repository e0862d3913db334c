// Package pathtrav implements the forward path-traversal primitives
// the M-adjustment engine needs: proper-causal-path enumeration,
// descendant closures, and the ancestor predicate.
//
// What:
//
//   - ProperCausalPaths(g, x, y): every directed path from x to y whose
//     only occurrence of x is at position 0, found via an explicit-
//     stack DFS that mirrors (node, parent-in-current-partial-path)
//     stack entries — the same shape as the original Python
//     findProperCausalPath this engine is ported from.
//   - Descendants(g, v): v plus everything reachable by following
//     forward edges from v.
//   - IsAncestor(g, x, vs): whether x is reached from any member of vs
//     by following backward edges (equivalently, x is in their ancestor
//     closure).
//
// Why:
//
//   - The proper-backdoor-graph transform (package transform) needs
//     the literal list of proper causal paths, not just their
//     existence, because it deletes each path's first edge.
//   - The enumerator (package madj) computes D_pcp — the descendant
//     closure of every node on any proper causal path — once per call,
//     and re-uses IsAncestor for condition C4.
//
// Complexity: O(paths × path length) for ProperCausalPaths in the
// worst case (the path count may be super-polynomial in principle;
// spec.md bounds the target domain to ≤ ~20 nodes, where exhaustive
// enumeration is acceptable). Descendants and IsAncestor expand each
// node at most once; with dag's O(V) neighbor listing that is O(V²).
//
// Errors:
//
//   - ErrGraphNil           g was nil.
//   - ErrUnknownNode        x or y is not a node of g.
//   - ErrSameTreatmentOutcome x == y (no causal effect to identify).
package pathtrav
