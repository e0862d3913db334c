// Package transform builds the three derived graphs the M-adjustment
// enumerator needs, each a fresh dag.DAG.Clone with a deterministic
// set of edges removed. None of the three mutate their source graph.
//
// What:
//
//   - ProperBackdoor(g, paths): deletes the first edge of every proper
//     causal path from X to Y, severing causal routes while leaving
//     backdoor routes intact.
//   - IncomingPruned(g, x): deletes every edge whose sink is x.
//   - OutgoingPruned(g, x): deletes every edge whose source is x.
//
// Why: the four M-adjustment conditions (package madj) each test
// d-separation on one of these derived graphs rather than on g
// directly — conditioning tested on the derived graph isolates
// confounding (C2), missingness leakage (C3), or residual causal
// effect (C4) from the rest of the causal structure.
//
// Complexity: O(V + E) for the clone plus O(paths) or O(degree(x))
// edge removals.
package transform
