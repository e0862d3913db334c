package pathtrav

import "errors"

// Sentinel errors for pathtrav operations.
var (
	// ErrGraphNil indicates a nil *dag.DAG was passed in.
	ErrGraphNil = errors.New("pathtrav: graph is nil")

	// ErrUnknownNode indicates x or y is not a declared node of g.
	ErrUnknownNode = errors.New("pathtrav: node not declared")

	// ErrSameTreatmentOutcome indicates x == y: spec.md §4.B rejects
	// this as ill-formed, since there is no causal effect to identify.
	ErrSameTreatmentOutcome = errors.New("pathtrav: treatment and outcome are the same node")
)
