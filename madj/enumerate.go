package madj

import (
	"sort"

	"github.com/jacobchen01/madjustment/dag"
	"github.com/jacobchen01/madjustment/dsep"
	"github.com/jacobchen01/madjustment/pathtrav"
	"github.com/jacobchen01/madjustment/transform"
)

// ListMAdjustment enumerates every subset of vars that satisfies the
// four-part M-adjustment criterion for the causal query "effect of x
// on y" in g, plus the first-encountered minimum-cardinality witness.
// See the package doc for the algorithm and error semantics.
func ListMAdjustment(g *dag.DAG, x, y string, vars []Variable, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if x == y {
		return nil, ErrSameTreatmentOutcome
	}
	if !g.HasNode(x) || !g.HasNode(y) {
		return nil, ErrNodeNotInGraph
	}
	if err := validateVariables(g, x, y, vars); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	paths, err := pathtrav.ProperCausalPaths(g, x, y)
	if err != nil {
		return nil, err
	}

	dPCP := make(map[string]struct{})
	for _, path := range paths {
		for _, v := range path {
			for d := range pathtrav.Descendants(g, v) {
				dPCP[d] = struct{}{}
			}
		}
	}

	ctx := evalContext{
		g:      g,
		x:      x,
		y:      y,
		vars:   vars,
		dPCP:   dPCP,
		gPBD:   transform.ProperBackdoor(g, paths),
		gAbove: transform.IncomingPruned(g, x),
		gBelow: transform.OutgoingPruned(g, x),
		onHit:  o.onCandidate,
	}

	n := len(vars)
	total := int64(1) << uint(n)

	var valid []candidate
	if o.concurrency > 1 {
		valid, err = enumerateConcurrently(o.ctx, &ctx, total, o.concurrency)
	} else {
		valid, err = enumerateSerially(o.ctx, &ctx, total)
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(valid, func(i, j int) bool { return valid[i].mask < valid[j].mask })

	res := &Result{ValidSets: make([]Set, len(valid))}
	var best *Set
	for i, c := range valid {
		res.ValidSets[i] = c.set
		if best == nil || len(c.set) < len(*best) {
			s := c.set
			best = &s
		}
	}
	res.Best = best

	return res, nil
}

// candidate is one subset that passed all four conditions, tagged
// with its bitmask so concurrent shards can be re-sorted back into
// canonical order.
type candidate struct {
	mask int64
	set  Set
}

// evalContext holds everything a single subset evaluation needs, all
// of it read-only once constructed — safe to share across goroutines
// when concurrency is enabled.
type evalContext struct {
	g      *dag.DAG
	x, y   string
	vars   []Variable
	dPCP   map[string]struct{}
	gPBD   *dag.DAG
	gAbove *dag.DAG
	gBelow *dag.DAG
	onHit  func(candidate Set, valid bool)
}

// evaluate tests mask against C1-C4 in order, short-circuiting on the
// first failure, and reports whether it was a valid M-adjustment set
// along with the Z it built.
func (c *evalContext) evaluate(mask int64) (Set, bool, error) {
	z, zSet, rw := c.buildCandidate(mask)

	valid, err := c.passesAllConditions(z, zSet, rw)
	if err != nil {
		return nil, false, err
	}
	if c.onHit != nil {
		c.onHit(z, valid)
	}

	return z, valid, nil
}

// buildCandidate decodes mask into the ordered set Z, its membership
// set, and the induced missingness set R_W, per spec.md §4.E step 4.
func (c *evalContext) buildCandidate(mask int64) (Set, map[string]struct{}, map[string]struct{}) {
	z := make(Set, 0, len(c.vars))
	zSet := make(map[string]struct{})
	rw := make(map[string]struct{})

	for j, v := range c.vars {
		selected := mask&(1<<uint(j)) != 0
		if selected {
			z = append(z, v.Name)
			zSet[v.Name] = struct{}{}
			if v.Name != c.x && v.Name != c.y && v.Indicator != "" {
				rw[v.Indicator] = struct{}{}
			}
		}
		if v.Name == c.x || v.Name == c.y {
			if v.Indicator != "" {
				rw[v.Indicator] = struct{}{}
			}
		}
	}

	return z, zSet, rw
}

// passesAllConditions evaluates C1-C4 in spec-mandated order.
func (c *evalContext) passesAllConditions(z Set, zSet, rw map[string]struct{}) (bool, error) {
	// C1: no element of Z lies on, or descends from, a proper causal path node.
	for _, name := range z {
		if _, onPath := c.dPCP[name]; onPath {
			return false, nil
		}
	}

	// C2: Y _||_ X | (Z ∪ R_W) in the proper backdoor graph.
	zrw := make(map[string]struct{}, len(zSet)+len(rw))
	for k := range zSet {
		zrw[k] = struct{}{}
	}
	for k := range rw {
		zrw[k] = struct{}{}
	}
	sep, err := dsep.DSeparated(c.gPBD, set1(c.y), set1(c.x), zrw)
	if err != nil {
		return false, err
	}
	if !sep {
		return false, nil
	}

	// C3: Y _||_ R_W | {X} in the incoming-pruned graph.
	sep, err = dsep.DSeparated(c.gAbove, set1(c.y), rw, set1(c.x))
	if err != nil {
		return false, err
	}
	if !sep {
		return false, nil
	}

	// C4: if X ancestor of R_W in G, then X _||_ Y | ∅ in the outgoing-pruned graph.
	if pathtrav.IsAncestor(c.g, c.x, rw) {
		sep, err = dsep.DSeparated(c.gBelow, set1(c.x), set1(c.y), map[string]struct{}{})
		if err != nil {
			return false, err
		}
		if !sep {
			return false, nil
		}
	}

	return true, nil
}

func set1(v string) map[string]struct{} { return map[string]struct{}{v: {}} }

// validateVariables enforces spec.md §4.E's InvalidArguments family for
// the Variable slice: no duplicate names, indicator names (when
// present) must be declared nodes of g, and neither x nor y may name
// some variable's missingness indicator.
func validateVariables(g *dag.DAG, x, y string, vars []Variable) error {
	seen := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		if !g.HasNode(v.Name) {
			return ErrNodeNotInGraph
		}
		if _, dup := seen[v.Name]; dup {
			return ErrDuplicateVariable
		}
		seen[v.Name] = struct{}{}
		if v.Indicator != "" {
			if !g.HasNode(v.Indicator) {
				return ErrNodeNotInGraph
			}
			if v.Indicator == x || v.Indicator == y {
				return ErrTreatmentOrOutcomeIsIndicator
			}
		}
	}

	return nil
}
