// Package dagfixtures builds the canonical test graphs used across this
// module's package tests. It supplements spec.md's concrete scenarios
// (S1-S6) with a single shared fixture per scenario instead of each
// _test.go file rebuilding the same DAG ad hoc, mirroring the role the
// teacher's builder package plays for declarative graph construction.
//
// dagfixtures is test-only: it is never imported by non-test code.
package dagfixtures

import (
	"github.com/jacobchen01/madjustment/dag"
	"github.com/jacobchen01/madjustment/madj"
)

func mustGraph(nodes []string, edges [][2]string) *dag.DAG {
	g := dag.New()
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			panic(err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			panic(err)
		}
	}

	return g
}

// Graph1 is spec.md S1: {A, M1, M2, Y, C1..C5}, used to exercise
// proper-causal-path enumeration. Ported from the original source's
// createTestGraph.
func Graph1() *dag.DAG {
	return mustGraph(
		[]string{"A", "M1", "M2", "Y", "C1", "C2", "C3", "C4", "C5"},
		[][2]string{
			{"A", "M1"}, {"A", "M2"}, {"M1", "Y"}, {"M2", "Y"},
			{"C1", "C3"}, {"C1", "C4"}, {"C2", "C4"}, {"C2", "C5"},
			{"C3", "A"}, {"C4", "A"}, {"C4", "M1"}, {"C4", "Y"},
			{"C5", "Y"}, {"M1", "M2"},
		},
	)
}

// Graph2 is spec.md S2: {U,V,A,W,X,T,C,B,Y,Z}, multiple backdoor paths.
// Ported from the original source's createTestGraph1.
func Graph2() *dag.DAG {
	return mustGraph(
		[]string{"U", "V", "A", "W", "X", "T", "C", "B", "Y", "Z"},
		[][2]string{
			{"U", "W"}, {"U", "A"}, {"V", "W"}, {"V", "X"}, {"V", "T"},
			{"A", "C"}, {"A", "B"}, {"A", "Y"}, {"W", "B"}, {"W", "Y"},
			{"X", "Y"}, {"T", "Z"}, {"B", "Y"},
		},
	)
}

// Graph3 is spec.md S3: a valid m-adjustment is present. Ported from
// the original source's createTestGraph2, with the ('Z','R_Z1') typo
// (spec.md §9's first Open Question) corrected to ('Z1','R_Z1').
func Graph3() (*dag.DAG, []madj.Variable) {
	g := mustGraph(
		[]string{"X", "Y", "Z1", "Z2", "R_Z1", "R_Z2"},
		[][2]string{
			{"Z2", "R_Z2"}, {"Z2", "X"}, {"Z1", "X"}, {"Z1", "Y"}, {"Z1", "R_Z1"}, {"X", "Y"},
		},
	)
	vars := []madj.Variable{
		{Name: "X"},
		{Name: "Y"},
		{Name: "Z1", Indicator: "R_Z1"},
		{Name: "Z2", Indicator: "R_Z2"},
	}

	return g, vars
}

// Graph4 is spec.md S4: no valid m-adjustment set exists because the
// only candidate's missingness indicator depends on a collider
// descendant. Ported from the original source's createTestGraph3.
func Graph4() (*dag.DAG, []madj.Variable) {
	g := mustGraph(
		[]string{"X", "Y", "Z1", "Z2", "R_Z1"},
		[][2]string{
			{"X", "Y"}, {"Z1", "X"}, {"Z1", "Y"}, {"X", "Z2"}, {"Y", "Z2"}, {"Z2", "R_Z1"},
		},
	)
	vars := []madj.Variable{
		{Name: "X"},
		{Name: "Y"},
		{Name: "Z1", Indicator: "R_Z1"},
		{Name: "Z2"},
	}

	return g, vars
}

// Graph5 is spec.md S5: self-pointing missingness on Y. No subset
// satisfies all four conditions.
func Graph5() (*dag.DAG, []madj.Variable) {
	g := mustGraph(
		[]string{"X", "Y", "Z1", "Z2", "Z3", "R_Y"},
		[][2]string{
			{"X", "Y"}, {"Z1", "X"}, {"Z1", "Y"}, {"Z2", "Z1"}, {"Z2", "Z3"}, {"Z3", "Y"}, {"Z3", "R_Y"},
		},
	)
	vars := []madj.Variable{
		{Name: "X"},
		{Name: "Y", Indicator: "R_Y"},
		{Name: "Z1"},
		{Name: "Z2"},
		{Name: "Z3"},
	}

	return g, vars
}
