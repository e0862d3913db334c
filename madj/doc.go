// Package madj implements the adjustment-set enumerator: the top-level
// entry point of this module. ListMAdjustment ties components A-D
// (dag, pathtrav, transform, dsep) together to enumerate every subset
// of a variable list that satisfies the four-part M-adjustment
// criterion of Saadati & Tian, plus a minimum-cardinality witness.
//
// Algorithm (spec.md §4.E):
//
//  1. Enumerate proper causal paths P from X to Y (pathtrav).
//  2. Compute D_pcp, the union of descendants of every node on any
//     path in P.
//  3. Precompute the three derived graphs: proper backdoor, incoming-
//     pruned, outgoing-pruned (transform).
//  4. For each of the 2^n subsets of the variable list, form the
//     candidate Z and its induced missingness set R_W, then test:
//     C1 (Z disjoint from D_pcp), C2 (Y _||_ X | Z,R_W in the proper
//     backdoor graph), C3 (Y _||_ R_W | X in the incoming-pruned
//     graph), and C4 (if X is an ancestor of R_W, X _||_ Y | {} in the
//     outgoing-pruned graph). Conditions short-circuit in that order.
//  5. Return every subset that passed all four, plus the first subset
//     of minimum cardinality encountered in bitmask order.
//
// Determinism: ListMAdjustment is a pure function of its inputs.
// Subsets are iterated in increasing bitmask order over the caller's
// Variable slice; if WithConcurrency shards that range across
// goroutines, results are re-sorted back into the same canonical
// order before returning, so a concurrent run is observationally
// identical to a serial one.
//
// Errors:
//
//   - ErrGraphNil                graph is nil.
//   - ErrSameTreatmentOutcome    X == Y.
//   - ErrNodeNotInGraph          X, Y, a Variable name, or an
//     indicator name is not a declared node of the graph.
//   - ErrDuplicateVariable       two Variable entries share a name.
//   - ErrTreatmentOrOutcomeIsIndicator  X or Y names a missingness
//     indicator rather than a substantive variable.
//   - ErrCyclic                  the graph contains a cycle (surfaced
//     from dag.Validate, called once up front).
package madj
