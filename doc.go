// Package madjustment enumerates M-adjustment sets for causal queries on
// graphs with missing data, per Saadati & Tian's generalization of
// backdoor adjustment to m-graphs (DAGs augmented with missingness
// indicator nodes).
//
// Subpackages:
//
//	dag/       — thread-safe directed-acyclic-graph container: nodes,
//	             edges, cycle validation, cloning.
//	pathtrav/  — proper causal path enumeration, descendant closures,
//	             the ancestor predicate.
//	transform/ — derived-graph construction: proper backdoor graph,
//	             incoming-pruned graph, outgoing-pruned graph.
//	dsep/      — d-separation oracle (Koller & Friedman's Reachable
//	             procedure).
//	madj/      — ListMAdjustment, the top-level entry point tying the
//	             above together into the four-condition enumerator.
//
// A minimal program:
//
//	g := dag.New()
//	// ... populate g with AddNode/AddEdge ...
//	res, err := madj.ListMAdjustment(g, "X", "Y", vars)
//
// See madj's package doc for the full algorithm and the error contract.
package madjustment
