package dsep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacobchen01/madjustment/dag"
	"github.com/jacobchen01/madjustment/dsep"
)

func nodes(ids ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

func buildChainGraph(t *testing.T) *dag.DAG {
	t.Helper()
	g := dag.New()
	for _, id := range []string{"A", "M", "B"} {
		require.NoError(t, g.AddNode(id))
	}
	require.NoError(t, g.AddEdge("A", "M"))
	require.NoError(t, g.AddEdge("M", "B"))

	return g
}

func buildForkGraph(t *testing.T) *dag.DAG {
	t.Helper()
	g := dag.New()
	for _, id := range []string{"A", "M", "B"} {
		require.NoError(t, g.AddNode(id))
	}
	require.NoError(t, g.AddEdge("M", "A"))
	require.NoError(t, g.AddEdge("M", "B"))

	return g
}

func buildColliderGraph(t *testing.T) *dag.DAG {
	t.Helper()
	g := dag.New()
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddNode(id))
	}
	require.NoError(t, g.AddEdge("A", "C"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("C", "D"))

	return g
}

func TestDSeparated_Chain(t *testing.T) {
	g := buildChainGraph(t)

	sep, err := dsep.DSeparated(g, nodes("A"), nodes("B"), nodes())
	require.NoError(t, err)
	assert.False(t, sep, "an unconditioned chain is an active path")

	sep, err = dsep.DSeparated(g, nodes("A"), nodes("B"), nodes("M"))
	require.NoError(t, err)
	assert.True(t, sep, "conditioning on the chain's middle node blocks it")
}

func TestDSeparated_Fork(t *testing.T) {
	g := buildForkGraph(t)

	sep, err := dsep.DSeparated(g, nodes("A"), nodes("B"), nodes())
	require.NoError(t, err)
	assert.False(t, sep, "an unconditioned fork is an active path")

	sep, err = dsep.DSeparated(g, nodes("A"), nodes("B"), nodes("M"))
	require.NoError(t, err)
	assert.True(t, sep, "conditioning on the fork's common cause blocks it")
}

func TestDSeparated_Collider(t *testing.T) {
	g := buildColliderGraph(t)

	sep, err := dsep.DSeparated(g, nodes("A"), nodes("B"), nodes())
	require.NoError(t, err)
	assert.True(t, sep, "an unconditioned collider blocks the path")

	sep, err = dsep.DSeparated(g, nodes("A"), nodes("B"), nodes("C"))
	require.NoError(t, err)
	assert.False(t, sep, "conditioning on the collider opens the path")
}

func TestDSeparated_ColliderWithObservedDescendant(t *testing.T) {
	g := buildColliderGraph(t)

	sep, err := dsep.DSeparated(g, nodes("A"), nodes("B"), nodes("D"))
	require.NoError(t, err)
	assert.False(t, sep, "conditioning on a collider's descendant also opens the path")
}

func TestDSeparated_Symmetry(t *testing.T) {
	for _, g := range []*dag.DAG{buildChainGraph(t), buildForkGraph(t)} {
		for _, z := range []map[string]struct{}{nodes(), nodes("M")} {
			ab, err := dsep.DSeparated(g, nodes("A"), nodes("B"), z)
			require.NoError(t, err)
			ba, err := dsep.DSeparated(g, nodes("B"), nodes("A"), z)
			require.NoError(t, err)
			assert.Equal(t, ab, ba)
		}
	}
}

func TestDSeparated_MonotoneThroughNonColliderOnly(t *testing.T) {
	g := dag.New()
	for _, id := range []string{"A", "M1", "M2", "B"} {
		require.NoError(t, g.AddNode(id))
	}
	require.NoError(t, g.AddEdge("A", "M1"))
	require.NoError(t, g.AddEdge("M1", "M2"))
	require.NoError(t, g.AddEdge("M2", "B"))

	sep, err := dsep.DSeparated(g, nodes("A"), nodes("B"), nodes("M1"))
	require.NoError(t, err)
	assert.True(t, sep)

	// Growing Z to a superset keeps the non-collider chain blocked.
	sep, err = dsep.DSeparated(g, nodes("A"), nodes("B"), nodes("M1", "M2"))
	require.NoError(t, err)
	assert.True(t, sep)
}

func TestDSeparated_NotGloballyMonotone(t *testing.T) {
	g := buildColliderGraph(t)

	// Blocked with the empty set...
	sep, err := dsep.DSeparated(g, nodes("A"), nodes("B"), nodes())
	require.NoError(t, err)
	assert.True(t, sep)

	// ...but growing Z to include the collider unblocks it: not
	// monotone in general, only through non-colliders.
	sep, err = dsep.DSeparated(g, nodes("A"), nodes("B"), nodes("C"))
	require.NoError(t, err)
	assert.False(t, sep)
}

func TestDSeparated_EmptyZ(t *testing.T) {
	g := buildChainGraph(t)
	_, err := dsep.DSeparated(g, nodes("A"), nodes("B"), nodes())
	assert.NoError(t, err)
}

func TestDSeparated_OverlappingSets(t *testing.T) {
	g := buildChainGraph(t)

	_, err := dsep.DSeparated(g, nodes("A", "M"), nodes("B"), nodes("M"))
	assert.ErrorIs(t, err, dsep.ErrOverlappingSets)

	_, err = dsep.DSeparated(g, nodes("A"), nodes("B", "M"), nodes("M"))
	assert.ErrorIs(t, err, dsep.ErrOverlappingSets)

	_, err = dsep.DSeparated(g, nodes("A"), nodes("A"), nodes())
	assert.ErrorIs(t, err, dsep.ErrOverlappingSets)
}

func TestDSeparated_DisconnectedSetsAreSeparated(t *testing.T) {
	g := buildChainGraph(t)
	require.NoError(t, g.AddNode("Z"))

	sep, err := dsep.DSeparated(g, nodes("A"), nodes("Z"), nodes())
	require.NoError(t, err)
	assert.True(t, sep)
}
