package pathtrav_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/jacobchen01/madjustment/dag"
	"github.com/jacobchen01/madjustment/internal/dagfixtures"
	"github.com/jacobchen01/madjustment/pathtrav"
)

// sortPaths normalizes order for comparisons that do not care which
// order the traversal discovered same-length paths in.
var sortPaths = cmpopts.SortSlices(func(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
})

func TestProperCausalPaths_S1(t *testing.T) {
	g := dagfixtures.Graph1()
	paths, err := pathtrav.ProperCausalPaths(g, "A", "Y")
	assert.NoError(t, err)

	want := [][]string{
		{"A", "M1", "Y"},
		{"A", "M2", "Y"},
		{"A", "M1", "M2", "Y"},
	}
	if diff := cmp.Diff(want, paths, sortPaths); diff != "" {
		t.Errorf("proper causal paths mismatch (-want +got):\n%s", diff)
	}
}

func TestProperCausalPaths_S2(t *testing.T) {
	g := dagfixtures.Graph2()
	paths, err := pathtrav.ProperCausalPaths(g, "U", "Y")
	assert.NoError(t, err)

	want := [][]string{
		{"U", "W", "Y"},
		{"U", "W", "B", "Y"},
		{"U", "A", "Y"},
		{"U", "A", "B", "Y"},
	}
	if diff := cmp.Diff(want, paths, sortPaths); diff != "" {
		t.Errorf("proper causal paths mismatch (-want +got):\n%s", diff)
	}
}

func TestProperCausalPaths_NoPath(t *testing.T) {
	g := dag.New()
	for _, id := range []string{"A", "B"} {
		_ = g.AddNode(id)
	}
	paths, err := pathtrav.ProperCausalPaths(g, "A", "B")
	assert.NoError(t, err)
	assert.Empty(t, paths)
}

func TestProperCausalPaths_SameTreatmentOutcome(t *testing.T) {
	g := dag.New()
	_ = g.AddNode("A")
	_, err := pathtrav.ProperCausalPaths(g, "A", "A")
	assert.ErrorIs(t, err, pathtrav.ErrSameTreatmentOutcome)
}

func TestProperCausalPaths_UnknownNode(t *testing.T) {
	g := dag.New()
	_ = g.AddNode("A")
	_, err := pathtrav.ProperCausalPaths(g, "A", "Y")
	assert.ErrorIs(t, err, pathtrav.ErrUnknownNode)
}

func TestProperCausalPaths_NilGraph(t *testing.T) {
	_, err := pathtrav.ProperCausalPaths(nil, "A", "Y")
	assert.ErrorIs(t, err, pathtrav.ErrGraphNil)
}
