package planarity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eduardo-zampirolli/planfilt/planarity"
)

// TestOracle_DegenerateOrders verifies that oracles over 0, 1 or 2 nodes
// work without special-casing: nothing to insert, or a single trivial edge.
func TestOracle_DegenerateOrders(t *testing.T) {
	o0 := planarity.NewOracle(0)
	assert.Zero(t, o0.Order())
	assert.Zero(t, o0.EdgeCount())

	o1 := planarity.NewOracle(1)
	assert.False(t, o1.TryInsert(0, 0)) // self-loop backstop
	assert.Zero(t, o1.EdgeCount())

	o2 := planarity.NewOracle(2)
	assert.True(t, o2.TryInsert(0, 1))
	assert.False(t, o2.TryInsert(1, 0)) // duplicate backstop
	assert.Equal(t, 1, o2.EdgeCount())
}

// TestOracle_K4AllAccepted inserts every edge of K_4; all must commit.
func TestOracle_K4AllAccepted(t *testing.T) {
	o := planarity.NewOracle(4)
	for _, e := range completeGraph(4) {
		assert.True(t, o.TryInsert(e[0], e[1]), "edge %v", e)
	}
	assert.Equal(t, 6, o.EdgeCount())
	assert.Equal(t, 1, o.Components())
}

// TestOracle_K5LastEdgeRejected inserts the edges of K_5 in order: the first
// nine commit, the tenth would complete K_5 and must be rejected, leaving
// the oracle untouched.
func TestOracle_K5LastEdgeRejected(t *testing.T) {
	o := planarity.NewOracle(5)
	edges := completeGraph(5)
	require.Len(t, edges, 10)

	accepted := 0
	for _, e := range edges {
		if o.TryInsert(e[0], e[1]) {
			accepted++
		}
	}
	assert.Equal(t, 9, accepted)
	assert.Equal(t, 9, o.EdgeCount())

	// Rejection must be permanent: the same pair stays rejected.
	last := edges[len(edges)-1]
	assert.False(t, o.TryInsert(last[0], last[1]))
	assert.Equal(t, 9, o.EdgeCount())
}

// TestOracle_RejectLeavesStateIntact verifies the rollback contract: after a
// rejection, degrees, edge count and future answers are unchanged.
func TestOracle_RejectLeavesStateIntact(t *testing.T) {
	o := planarity.NewOracle(6)
	matching := map[[2]int]bool{{0, 5}: true, {1, 4}: true, {2, 3}: true}
	for _, e := range completeGraph(6) {
		if !matching[e] {
			require.True(t, o.TryInsert(e[0], e[1]), "octahedron edge %v", e)
		}
	}
	require.Equal(t, 12, o.EdgeCount()) // maximal planar on 6 nodes

	degrees := make([]int, 6)
	for v := range degrees {
		degrees[v] = o.Degree(v)
	}

	// Every remaining matching edge must be rejected, repeatedly, without
	// disturbing the committed graph.
	for round := 0; round < 2; round++ {
		for m := range matching {
			assert.False(t, o.TryInsert(m[0], m[1]))
		}
	}
	assert.Equal(t, 12, o.EdgeCount())
	for v := range degrees {
		assert.Equal(t, degrees[v], o.Degree(v))
	}
}

// TestOracle_CrossComponentAlwaysAccepts links many isolated pieces; since
// joining components can never create a crossing, every insert commits.
func TestOracle_CrossComponentAlwaysAccepts(t *testing.T) {
	o := planarity.NewOracle(8)
	assert.Equal(t, 8, o.Components())

	// Build two K_4s on {0..3} and {4..7}.
	for _, e := range completeGraph(4) {
		require.True(t, o.TryInsert(e[0], e[1]))
		require.True(t, o.TryInsert(e[0]+4, e[1]+4))
	}
	assert.Equal(t, 2, o.Components())

	// A bridge between the two planar pieces is always planar.
	assert.True(t, o.TryInsert(0, 4))
	assert.Equal(t, 1, o.Components())
	assert.Equal(t, 13, o.EdgeCount())
}

// TestOracle_BridgedBlocksStayIndependent builds two K_4 blocks sharing a
// cut vertex, then verifies that an edge spanning the blocks is still judged
// correctly (the merged region is tested, not just one block).
func TestOracle_BridgedBlocksStayIndependent(t *testing.T) {
	// Block A on {0,1,2,3}, block B on {3,4,5,6}; 3 is the cut vertex.
	o := planarity.NewOracle(7)
	for _, e := range completeGraph(4) {
		require.True(t, o.TryInsert(e[0], e[1]))
		require.True(t, o.TryInsert(e[0]+3, e[1]+3))
	}
	require.Equal(t, 12, o.EdgeCount())

	// 0 and 4 sit in different blocks of the same component. The merged
	// region (both K_4s plus the new edge) is still planar.
	assert.True(t, o.TryInsert(0, 4))
	assert.Equal(t, 13, o.EdgeCount())
}

// TestOracle_GreedyMaximality fills a complete candidate set greedily; the
// result must always reach the planar bound 3n-6 (a greedily-maximal planar
// subgraph of K_n is a triangulation).
func TestOracle_GreedyMaximality(t *testing.T) {
	for _, n := range []int{4, 5, 6, 8, 10} {
		o := planarity.NewOracle(n)
		for _, e := range completeGraph(n) {
			o.TryInsert(e[0], e[1])
		}
		assert.Equal(t, 3*n-6, o.EdgeCount(), "n=%d", n)
	}
}

// TestOracle_AppendEdges verifies the snapshot accessor preserves commit
// order and does not alias oracle state.
func TestOracle_AppendEdges(t *testing.T) {
	o := planarity.NewOracle(3)
	require.True(t, o.TryInsert(1, 2))
	require.True(t, o.TryInsert(0, 2))

	got := o.AppendEdges(nil)
	assert.Equal(t, [][2]int{{1, 2}, {0, 2}}, got)

	got[0] = [2]int{9, 9} // mutating the snapshot must not touch the oracle
	assert.Equal(t, [][2]int{{1, 2}, {0, 2}}, o.AppendEdges(nil))
}

// TestOracle_IndexContract verifies fail-fast behavior for bad indexes.
func TestOracle_IndexContract(t *testing.T) {
	o := planarity.NewOracle(3)
	require.Panics(t, func() { o.TryInsert(0, 3) })
	require.Panics(t, func() { o.TryInsert(-1, 1) })
	require.Panics(t, func() { o.Degree(5) })
	require.Panics(t, func() { planarity.NewOracle(-2) })
}
