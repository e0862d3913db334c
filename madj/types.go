package madj

import (
	"context"
	"errors"
)

// Sentinel errors for ListMAdjustment. Callers branch with errors.Is.
var (
	// ErrGraphNil indicates a nil *dag.DAG was passed in.
	ErrGraphNil = errors.New("madj: graph is nil")

	// ErrSameTreatmentOutcome indicates X == Y.
	ErrSameTreatmentOutcome = errors.New("madj: treatment and outcome are the same node")

	// ErrNodeNotInGraph indicates X, Y, a Variable.Name, or a
	// Variable.Indicator names a node absent from the graph.
	ErrNodeNotInGraph = errors.New("madj: node not present in graph")

	// ErrDuplicateVariable indicates two entries of the Variable slice
	// share the same Name.
	ErrDuplicateVariable = errors.New("madj: duplicate variable name")

	// ErrTreatmentOrOutcomeIsIndicator indicates X or Y names some
	// Variable's Indicator rather than a substantive variable — the
	// treatment and outcome must themselves be substantive variables.
	ErrTreatmentOrOutcomeIsIndicator = errors.New("madj: treatment or outcome names a missingness indicator")
)

// Variable pairs a substantive variable's name with the name of its
// missingness indicator, or the empty string if the variable is
// always fully observed.
type Variable struct {
	Name      string
	Indicator string
}

// Set is a candidate (or valid) adjustment set: the names selected
// from the caller's Variable slice, in the slice's original order.
type Set []string

// Result is the return value of ListMAdjustment.
type Result struct {
	// ValidSets holds every candidate that satisfied all four
	// M-adjustment conditions, ordered by increasing bitmask value
	// over the input Variable slice.
	ValidSets []Set

	// Best is the first-encountered (in bitmask order) valid set of
	// minimum cardinality, or nil if ValidSets is empty.
	Best *Set
}

// Option configures ListMAdjustment.
type Option func(*options)

type options struct {
	ctx         context.Context
	concurrency int
	onCandidate func(candidate Set, valid bool)
}

func defaultOptions() options {
	return options{
		ctx:         context.Background(),
		concurrency: 1,
	}
}

// WithContext allows cancellation of a long enumeration, mirroring the
// teacher's dfs.WithContext. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithConcurrency shards the 2^n subset space across up to n
// goroutines (spec.md §5's "implementations MAY shard the subset
// space across worker threads"). n <= 1 runs serially. Regardless of
// n, ValidSets is re-sorted into canonical bitmask order before
// return, so the result is observationally identical to a serial run.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 1 {
			o.concurrency = n
		}
	}
}

// WithOnCandidate installs a hook invoked once per evaluated subset
// with its pass/fail verdict — the teacher's functional-option
// observability idiom (dfs.WithOnVisit/WithOnExit), applied here in
// place of a logging dependency. The hook MUST be safe to call from
// multiple goroutines when WithConcurrency(n) with n > 1 is also set.
func WithOnCandidate(fn func(candidate Set, valid bool)) Option {
	return func(o *options) {
		o.onCandidate = fn
	}
}
